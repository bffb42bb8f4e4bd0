package settings

import (
	"time"

	"github.com/mkboutique/backend/internal/domain/settings"
)

// CreateConfigurationRequest represents a request to create a configuration
type CreateConfigurationRequest struct {
	Cle  string  `json:"cle" binding:"required,max=100"`
	Data *string `json:"data"`
}

// UpdateConfigurationRequest represents a partial configuration update
type UpdateConfigurationRequest struct {
	Cle  *string `json:"cle" binding:"omitempty,max=100"`
	Data *string `json:"data"`
}

// ValidateJSONRequest carries a document to check
type ValidateJSONRequest struct {
	Data string `json:"data" binding:"required"`
}

// ValidateJSONResponse reports whether the document parsed
type ValidateJSONResponse struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}

// ConfigurationResponse represents a configuration in API responses
type ConfigurationResponse struct {
	IdConfiguration  int        `json:"idConfiguration"`
	IdSociete        int        `json:"idSociete"`
	Cle              string     `json:"cle"`
	Data             string     `json:"data"`
	DateCreation     time.Time  `json:"dateCreation"`
	DateModification *time.Time `json:"dateModification"`
}

// ToConfigurationResponse converts a domain configuration to a response DTO
func ToConfigurationResponse(c *settings.Configuration) ConfigurationResponse {
	return ConfigurationResponse{
		IdConfiguration:  c.ID,
		IdSociete:        c.SocieteID,
		Cle:              c.Cle,
		Data:             c.Data,
		DateCreation:     c.DateCreation,
		DateModification: c.DateModification,
	}
}
