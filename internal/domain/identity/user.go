package identity

import (
	"strings"
	"time"

	"github.com/mkboutique/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

const minPasswordLength = 6

// User is a back-office account. Its societe is its role's societe.
type User struct {
	ID                 int       `gorm:"column:id_utilisateur;primaryKey;autoIncrement"`
	NomComplet         string    `gorm:"column:nom_complet;type:varchar(200);not null"`
	Login              string    `gorm:"column:login;type:varchar(100);not null;uniqueIndex:ux_users_login"`
	PasswordHash       string    `gorm:"column:password_hash;type:varchar(255);not null"`
	Email              *string   `gorm:"column:email;type:varchar(200)"`
	Telephone          *string   `gorm:"column:telephone;type:varchar(50)"`
	RoleID             int       `gorm:"column:id_role;not null;index"`
	Role               *Role     `gorm:"foreignKey:RoleID;references:ID"`
	Actif              bool      `gorm:"column:actif;not null"`
	DateCreationCompte time.Time `gorm:"column:date_creation_compte;not null"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates an active user with a hashed password
func NewUser(roleID int, login, password, nomComplet string) (*User, error) {
	u := &User{
		NomComplet:         shared.NormalizeText(nomComplet),
		Login:              normalizeLogin(login),
		RoleID:             roleID,
		Actif:              true,
		DateCreationCompte: time.Now().UTC(),
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

func normalizeLogin(login string) string {
	return strings.ToLower(shared.NormalizeText(login))
}

// NormalizeLogin applies the same normalization used on storage
func NormalizeLogin(login string) string {
	return normalizeLogin(login)
}

// Validate checks field-level invariants
func (u *User) Validate() error {
	if err := shared.RequireText("Le nom complet", u.NomComplet, 200); err != nil {
		return err
	}
	if err := shared.RequireText("Le login", u.Login, 100); err != nil {
		return err
	}
	if u.RoleID <= 0 {
		return shared.NewValidationError("Le rôle est obligatoire.")
	}
	if err := shared.MaxLengthPtr("Le téléphone", u.Telephone, 50); err != nil {
		return err
	}
	return shared.ValidateEmail("L'email", u.Email, 200)
}

// SetPassword validates and hashes a new password
func (u *User) SetPassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewValidationError("Le mot de passe doit contenir au moins %d caractères.", minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SocieteID returns the societe of the user's role, zero if the role is not loaded
func (u *User) SocieteID() int {
	if u.Role == nil {
		return 0
	}
	return u.Role.SocieteID
}

// ToggleActive flips the active flag
func (u *User) ToggleActive() {
	u.Actif = !u.Actif
}
