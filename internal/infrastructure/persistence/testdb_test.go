package persistence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	cfg := GormConfig(gormlogger.Discard)
	cfg.DisableForeignKeyConstraintWhenMigrating = true

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, (&Database{DB: db}).AutoMigrate())
	return db
}

func seedSociete(t *testing.T, db *gorm.DB, nom string) *identity.Societe {
	t.Helper()
	s, err := identity.NewSociete(nom, identity.SocieteDetails{})
	require.NoError(t, err)
	require.NoError(t, NewGormSocieteRepository(db).Save(t.Context(), s))
	return s
}

func seedCategorie(t *testing.T, db *gorm.DB, societeID int, nom string) *catalog.Categorie {
	t.Helper()
	c, err := catalog.NewCategorie(societeID, nom, nil, nil)
	require.NoError(t, err)
	require.NoError(t, NewGormCategorieRepository(db).Save(t.Context(), c))
	return c
}

func seedClient(t *testing.T, db *gorm.DB, societeID int, telephone string) *partner.Client {
	t.Helper()
	c, err := partner.NewClient(societeID, partner.ClientFields{
		NomClient:    "Alaoui",
		PrenomClient: "Sara",
		Telephone:    telephone,
	})
	require.NoError(t, err)
	require.NoError(t, NewGormClientRepository(db).Save(t.Context(), c))
	return c
}
