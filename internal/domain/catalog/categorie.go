package catalog

import "github.com/mkboutique/backend/internal/domain/shared"

// Categorie groups articles for display
type Categorie struct {
	ID             int     `gorm:"column:id_categorie;primaryKey;autoIncrement"`
	NomCategorie   string  `gorm:"column:nom_categorie;type:varchar(50);not null;uniqueIndex:ux_categories_nom_societe,priority:1"`
	Description    *string `gorm:"column:description;type:text"`
	OrdreAffichage *int    `gorm:"column:ordre_affichage"`
	SocieteID      int     `gorm:"column:id_societe;not null;index;uniqueIndex:ux_categories_nom_societe,priority:2"`
}

// TableName returns the table name for GORM
func (Categorie) TableName() string {
	return "categories"
}

// NewCategorie creates a categorie in a societe
func NewCategorie(societeID int, nom string, description *string, ordre *int) (*Categorie, error) {
	c := &Categorie{
		NomCategorie:   shared.NormalizeText(nom),
		Description:    shared.NormalizeOptional(description),
		OrdreAffichage: ordre,
		SocieteID:      societeID,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks field-level invariants
func (c *Categorie) Validate() error {
	return shared.RequireText("Le nom de la catégorie", c.NomCategorie, 50)
}
