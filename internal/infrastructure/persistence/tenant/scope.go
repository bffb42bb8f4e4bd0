// Package tenant scopes gorm statements to one societe.
//
// Every tenant-owned table carries an id_societe column. Repositories apply
// SocieteScope on reads, updates and deletes so a societe never sees rows
// belonging to another one:
//
//	db.WithContext(ctx).Scopes(tenant.SocieteScope(societeID)).Find(&clients)
package tenant

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column is the tenant discriminator shared by all tenant-owned tables
const Column = "id_societe"

// ErrSocieteRequired is added to the statement when the scope is built without a societe
var ErrSocieteRequired = errors.New("id_societe is required")

// SocieteScope filters the current table on id_societe. A non-positive id
// poisons the statement instead of silently widening it to every societe.
func SocieteScope(societeID int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if societeID <= 0 {
			_ = db.AddError(ErrSocieteRequired)
			return db
		}
		return db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: Column},
			Value:  societeID,
		})
	}
}

// QualifiedScope filters on table.id_societe, for statements where the
// tenant column lives on a joined table rather than the current one.
func QualifiedScope(table string, societeID int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if societeID <= 0 {
			_ = db.AddError(ErrSocieteRequired)
			return db
		}
		return db.Where(clause.Eq{
			Column: clause.Column{Table: table, Name: Column},
			Value:  societeID,
		})
	}
}
