package settings

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/settings"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ConfigurationService handles per-societe configuration documents
type ConfigurationService struct {
	repo   settings.ConfigurationRepository
	logger *zap.Logger
}

// NewConfigurationService creates a new ConfigurationService
func NewConfigurationService(repo settings.ConfigurationRepository, logger *zap.Logger) *ConfigurationService {
	return &ConfigurationService{repo: repo, logger: logger}
}

// List returns the societe's configurations ordered by key
func (s *ConfigurationService) List(ctx context.Context, tenantID int) ([]ConfigurationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	configurations, err := s.repo.FindAllForSociete(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]ConfigurationResponse, len(configurations))
	for i := range configurations {
		out[i] = ToConfigurationResponse(&configurations[i])
	}
	return out, nil
}

// GetByID retrieves a configuration of the societe
func (s *ConfigurationService) GetByID(ctx context.Context, tenantID, id int) (*ConfigurationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToConfigurationResponse(c)
	return &resp, nil
}

// GetByCle retrieves a configuration by its key, case-insensitively
func (s *ConfigurationService) GetByCle(ctx context.Context, tenantID int, cle string) (*ConfigurationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	key := shared.NormalizeText(cle)
	c, err := s.repo.FindByCle(ctx, tenantID, key)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Configuration avec la clé '%s' introuvable.", key)
		}
		return nil, err
	}
	resp := ToConfigurationResponse(c)
	return &resp, nil
}

// Create stores a new document. Data is checked before the key is.
func (s *ConfigurationService) Create(ctx context.Context, tenantID int, req CreateConfigurationRequest) (*ConfigurationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := settings.NewConfiguration(tenantID, req.Cle, req.Data)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueCle(ctx, tenantID, c.Cle, 0); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Configuration created",
		zap.String("cle", c.Cle),
		zap.Int("id_configuration", c.ID),
		zap.Int("id_societe", tenantID),
	)
	resp := ToConfigurationResponse(c)
	return &resp, nil
}

// Update applies the present fields of req
func (s *ConfigurationService) Update(ctx context.Context, tenantID, id int, req UpdateConfigurationRequest) (*ConfigurationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	var doc string
	if req.Data != nil {
		var err error
		if doc, err = settings.ValidateData(req.Data); err != nil {
			return nil, err
		}
	}

	c, err := s.repo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Cle != nil {
		cle := shared.NormalizeText(*req.Cle)
		if err := shared.RequireText("La clé", cle, 100); err != nil {
			return nil, err
		}
		if cle != c.Cle {
			if err := s.ensureUniqueCle(ctx, tenantID, cle, c.ID); err != nil {
				return nil, err
			}
		}
		c.Cle = cle
	}
	if req.Data != nil {
		c.Data = doc
	}
	c.Touch()

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToConfigurationResponse(c)
	return &resp, nil
}

// Delete removes a configuration
func (s *ConfigurationService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	if err := s.repo.DeleteForSociete(ctx, tenantID, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("Configuration deleted", zap.Int("id_configuration", id), zap.Int("id_societe", tenantID))
	return true, nil
}

// ValidateJSON reports whether data is a non-empty, well-formed JSON document
func (s *ConfigurationService) ValidateJSON(data string) bool {
	return settings.IsValidJSON(data)
}

func (s *ConfigurationService) ensureUniqueCle(ctx context.Context, tenantID int, cle string, excludeID int) error {
	exists, err := s.repo.ExistsByCle(ctx, tenantID, cle, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Une configuration avec la clé '%s' existe déjà pour cette société.", cle)
	}
	return nil
}
