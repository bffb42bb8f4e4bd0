package settings

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mkboutique/backend/internal/domain/shared"
)

const emptyDocument = "{}"

// Configuration is a per-societe JSON document addressed by key
type Configuration struct {
	ID               int        `gorm:"column:id_configuration;primaryKey;autoIncrement"`
	Cle              string     `gorm:"column:cle;type:varchar(100);not null;uniqueIndex:ux_configurations_cle_societe,priority:1"`
	Data             string     `gorm:"column:data;type:text;not null"`
	DateCreation     time.Time  `gorm:"column:date_creation;not null"`
	DateModification *time.Time `gorm:"column:date_modification"`
	SocieteID        int        `gorm:"column:id_societe;not null;index;uniqueIndex:ux_configurations_cle_societe,priority:2"`
}

// TableName returns the table name for GORM
func (Configuration) TableName() string {
	return "configurations"
}

// IsValidJSON reports whether data is a syntactically valid, non-blank JSON document
func IsValidJSON(data string) bool {
	if strings.TrimSpace(data) == "" {
		return false
	}
	return json.Valid([]byte(data))
}

// ValidateData rejects anything that is not valid JSON; blank means "{}"
func ValidateData(data *string) (string, error) {
	if data == nil || strings.TrimSpace(*data) == "" {
		return emptyDocument, nil
	}
	if !json.Valid([]byte(*data)) {
		return "", shared.NewValidationError("Le champ Data doit contenir un JSON valide.")
	}
	return *data, nil
}

// NewConfiguration creates a configuration after checking its document
func NewConfiguration(societeID int, cle string, data *string) (*Configuration, error) {
	doc, err := ValidateData(data)
	if err != nil {
		return nil, err
	}
	c := &Configuration{
		Cle:          shared.NormalizeText(cle),
		Data:         doc,
		DateCreation: time.Now().UTC(),
		SocieteID:    societeID,
	}
	if err := shared.RequireText("La clé", c.Cle, 100); err != nil {
		return nil, err
	}
	return c, nil
}

// Touch records a modification
func (c *Configuration) Touch() {
	now := time.Now().UTC()
	c.DateModification = &now
}

// ConfigurationRepository defines persistence for configurations
type ConfigurationRepository interface {
	// FindAllForSociete orders by key
	FindAllForSociete(ctx context.Context, societeID int) ([]Configuration, error)
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Configuration, error)
	FindByCle(ctx context.Context, societeID int, cle string) (*Configuration, error)
	ExistsByCle(ctx context.Context, societeID int, cle string, excludeID int) (bool, error)
	Save(ctx context.Context, configuration *Configuration) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
}
