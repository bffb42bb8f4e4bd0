package catalog

import "github.com/mkboutique/backend/internal/domain/shared"

// Taille is a size label assignable to articles
type Taille struct {
	ID        int    `gorm:"column:id_taille;primaryKey;autoIncrement"`
	Libelle   string `gorm:"column:taille;type:varchar(50);not null;uniqueIndex:ux_tailles_taille_societe,priority:1"`
	SocieteID int    `gorm:"column:id_societe;not null;index;uniqueIndex:ux_tailles_taille_societe,priority:2"`
}

// TableName returns the table name for GORM
func (Taille) TableName() string {
	return "tailles"
}

// NewTaille creates a taille in a societe
func NewTaille(societeID int, libelle string) (*Taille, error) {
	t := &Taille{
		Libelle:   shared.NormalizeText(libelle),
		SocieteID: societeID,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks field-level invariants
func (t *Taille) Validate() error {
	return shared.RequireText("Le libellé de la taille", t.Libelle, 50)
}
