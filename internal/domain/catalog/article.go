package catalog

import (
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Article is a rentable garment
type Article struct {
	ID               int             `gorm:"column:id_article;primaryKey;autoIncrement"`
	NomArticle       string          `gorm:"column:nom_article;type:varchar(200);not null"`
	Description      *string         `gorm:"column:description;type:text"`
	PrixLocationBase decimal.Decimal `gorm:"column:prix_location_base;type:decimal(18,2);not null"`
	PrixAvanceBase   decimal.Decimal `gorm:"column:prix_avance_base;type:decimal(18,2);not null"`
	TailleID         *int            `gorm:"column:id_taille;index"`
	Couleur          *string         `gorm:"column:couleur;type:varchar(50)"`
	Photo            *string         `gorm:"column:photo;type:text"`
	CategorieID      int             `gorm:"column:id_categorie;not null;index"`
	Actif            bool            `gorm:"column:actif;not null"`
	SocieteID        int             `gorm:"column:id_societe;not null;index"`

	Taille    *Taille    `gorm:"foreignKey:TailleID;references:ID"`
	Categorie *Categorie `gorm:"foreignKey:CategorieID;references:ID"`
}

// TableName returns the table name for GORM
func (Article) TableName() string {
	return "articles"
}

// ArticleFields carries the mutable fields of an article
type ArticleFields struct {
	NomArticle       string
	Description      *string
	PrixLocationBase decimal.Decimal
	PrixAvanceBase   decimal.Decimal
	TailleID         *int
	Couleur          *string
	Photo            *string
	CategorieID      int
}

// NewArticle creates an active article in a societe
func NewArticle(societeID int, f ArticleFields) (*Article, error) {
	a := &Article{
		NomArticle:       shared.NormalizeText(f.NomArticle),
		Description:      shared.NormalizeOptional(f.Description),
		PrixLocationBase: f.PrixLocationBase,
		PrixAvanceBase:   f.PrixAvanceBase,
		TailleID:         f.TailleID,
		Couleur:          shared.NormalizeOptional(f.Couleur),
		Photo:            shared.NormalizeOptional(f.Photo),
		CategorieID:      f.CategorieID,
		Actif:            true,
		SocieteID:        societeID,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks field-level invariants
func (a *Article) Validate() error {
	if err := shared.RequireText("Le nom de l'article", a.NomArticle, 200); err != nil {
		return err
	}
	if a.PrixLocationBase.IsNegative() {
		return shared.NewValidationError("Le prix de location ne peut pas être négatif.")
	}
	if a.PrixAvanceBase.IsNegative() {
		return shared.NewValidationError("Le prix d'avance ne peut pas être négatif.")
	}
	if a.CategorieID <= 0 {
		return shared.NewValidationError("La catégorie est obligatoire.")
	}
	return shared.MaxLengthPtr("La couleur", a.Couleur, 50)
}

// ToggleActive flips the active flag
func (a *Article) ToggleActive() {
	a.Actif = !a.Actif
}
