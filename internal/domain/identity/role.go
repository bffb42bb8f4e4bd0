package identity

import "github.com/mkboutique/backend/internal/domain/shared"

// Default role names seeded on first start
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

// Role is a named permission group owned by a societe
type Role struct {
	ID          int     `gorm:"column:id_role;primaryKey;autoIncrement"`
	NomRole     string  `gorm:"column:nom_role;type:varchar(100);not null;uniqueIndex:ux_roles_nom_societe,priority:1"`
	Description *string `gorm:"column:description;type:varchar(500)"`
	Actif       bool    `gorm:"column:actif;not null"`
	SocieteID   int     `gorm:"column:id_societe;not null;index;uniqueIndex:ux_roles_nom_societe,priority:2"`
}

// TableName returns the table name for GORM
func (Role) TableName() string {
	return "roles"
}

// NewRole creates an active role in a societe
func NewRole(societeID int, nom string, description *string) (*Role, error) {
	r := &Role{
		NomRole:     shared.NormalizeText(nom),
		Description: shared.NormalizeOptional(description),
		Actif:       true,
		SocieteID:   societeID,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks field-level invariants
func (r *Role) Validate() error {
	if err := shared.RequireText("Le nom du rôle", r.NomRole, 100); err != nil {
		return err
	}
	return shared.MaxLengthPtr("La description du rôle", r.Description, 500)
}

// ToggleActive flips the active flag
func (r *Role) ToggleActive() {
	r.Actif = !r.Actif
}

// DefaultRoles lists the roles seeded into the first societe
func DefaultRoles() []struct{ Nom, Description string } {
	return []struct{ Nom, Description string }{
		{RoleAdmin, "Administrateur avec tous les droits"},
		{RoleManager, "Gestionnaire avec droits de gestion"},
		{RoleStaff, "Employé avec droits de base"},
	}
}
