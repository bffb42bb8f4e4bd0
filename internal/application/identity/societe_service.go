package identity

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SocieteService handles societe operations.
// Any authenticated caller can read and create societes; only the caller's
// own societe can be modified, toggled or deleted.
type SocieteService struct {
	societeRepo identity.SocieteRepository
	logger      *zap.Logger
}

// NewSocieteService creates a new SocieteService
func NewSocieteService(societeRepo identity.SocieteRepository, logger *zap.Logger) *SocieteService {
	return &SocieteService{
		societeRepo: societeRepo,
		logger:      logger,
	}
}

// List returns societes ordered by name
func (s *SocieteService) List(ctx context.Context, tenantID int, filter ActiveFilter) ([]SocieteResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	societes, err := s.societeRepo.FindAll(ctx, filter.IncludeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]SocieteResponse, len(societes))
	for i := range societes {
		out[i] = ToSocieteResponse(&societes[i])
	}
	return out, nil
}

// GetByID retrieves a societe
func (s *SocieteService) GetByID(ctx context.Context, tenantID, id int) (*SocieteResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	societe, err := s.societeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSocieteResponse(societe)
	return &resp, nil
}

// Create creates a societe with a unique name and email
func (s *SocieteService) Create(ctx context.Context, tenantID int, req CreateSocieteRequest) (*SocieteResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	societe, err := identity.NewSociete(req.NomSociete, identity.SocieteDetails{
		Description: req.Description,
		Adresse:     req.Adresse,
		Telephone:   req.Telephone,
		Email:       req.Email,
		SiteWeb:     req.SiteWeb,
		Logo:        req.Logo,
	})
	if err != nil {
		return nil, err
	}
	if err := s.ensureUnique(ctx, societe.NomSociete, societe.Email, 0); err != nil {
		return nil, err
	}
	if err := s.societeRepo.Save(ctx, societe); err != nil {
		return nil, err
	}

	s.logger.Info("Societe created",
		zap.Int("id_societe", societe.ID),
		zap.String("nom_societe", societe.NomSociete),
		zap.Int("created_by_societe", tenantID),
	)
	resp := ToSocieteResponse(societe)
	return &resp, nil
}

// Update applies the present fields of req to the caller's societe
func (s *SocieteService) Update(ctx context.Context, tenantID, id int, req UpdateSocieteRequest) (*SocieteResponse, error) {
	societe, err := s.loadOwn(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.NomSociete != nil {
		societe.NomSociete = shared.NormalizeText(*req.NomSociete)
	}
	if req.Email != nil {
		societe.Email = shared.NormalizeOptional(req.Email)
	}
	if req.Description != nil {
		societe.Description = shared.NormalizeOptional(req.Description)
	}
	if req.Adresse != nil {
		societe.Adresse = shared.NormalizeOptional(req.Adresse)
	}
	if req.Telephone != nil {
		societe.Telephone = shared.NormalizeOptional(req.Telephone)
	}
	if req.SiteWeb != nil {
		societe.SiteWeb = shared.NormalizeOptional(req.SiteWeb)
	}
	if req.Logo != nil {
		societe.Logo = shared.NormalizeOptional(req.Logo)
	}
	if req.Actif != nil {
		societe.Actif = *req.Actif
	}
	if err := societe.Validate(); err != nil {
		return nil, err
	}
	if req.NomSociete != nil || req.Email != nil {
		if err := s.ensureUnique(ctx, societe.NomSociete, societe.Email, societe.ID); err != nil {
			return nil, err
		}
	}

	if err := s.societeRepo.Save(ctx, societe); err != nil {
		return nil, err
	}
	resp := ToSocieteResponse(societe)
	return &resp, nil
}

// Delete removes the caller's societe once nothing references it
func (s *SocieteService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	societe, err := s.loadOwn(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	hasDependents, err := s.societeRepo.HasDependents(ctx, societe.ID)
	if err != nil {
		return false, err
	}
	if hasDependents {
		return false, shared.NewConflictError(
			"La société '%s' ne peut pas être supprimée car des données y sont rattachées.", societe.NomSociete)
	}

	if err := s.societeRepo.Delete(ctx, societe.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("Societe deleted", zap.Int("id_societe", societe.ID))
	return true, nil
}

// ToggleActive flips the active flag of the caller's societe
func (s *SocieteService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	societe, err := s.loadOwn(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	societe.ToggleActive()
	if err := s.societeRepo.Save(ctx, societe); err != nil {
		return false, err
	}
	return true, nil
}

// loadOwn loads societe id, refusing any societe but the caller's
func (s *SocieteService) loadOwn(ctx context.Context, tenantID, id int) (*identity.Societe, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	societe, err := s.societeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if societe.ID != tenantID {
		return nil, shared.ErrForbidden
	}
	return societe, nil
}

func (s *SocieteService) ensureUnique(ctx context.Context, nom string, email *string, excludeID int) error {
	exists, err := s.societeRepo.ExistsByName(ctx, nom, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Une société avec le nom '%s' existe déjà.", nom)
	}
	if email == nil {
		return nil
	}
	exists, err = s.societeRepo.ExistsByEmail(ctx, *email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Une société avec l'email '%s' existe déjà.", *email)
	}
	return nil
}
