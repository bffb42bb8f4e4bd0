package catalog

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/domain/shared"
)

// TailleService handles taille operations
type TailleService struct {
	tailleRepo catalog.TailleRepository
}

// NewTailleService creates a new TailleService
func NewTailleService(tailleRepo catalog.TailleRepository) *TailleService {
	return &TailleService{tailleRepo: tailleRepo}
}

// List returns the societe's tailles ordered by label
func (s *TailleService) List(ctx context.Context, tenantID int) ([]TailleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	tailles, err := s.tailleRepo.FindAllForSociete(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toTailleResponses(tailles), nil
}

// GetByID retrieves a taille of the societe
func (s *TailleService) GetByID(ctx context.Context, tenantID, id int) (*TailleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	t, err := s.tailleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToTailleResponse(t)
	return &resp, nil
}

// Create creates a taille with a label unique in the societe
func (s *TailleService) Create(ctx context.Context, tenantID int, req CreateTailleRequest) (*TailleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	t, err := catalog.NewTaille(tenantID, req.Taille)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueLibelle(ctx, tenantID, t.Libelle, 0); err != nil {
		return nil, err
	}
	if err := s.tailleRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTailleResponse(t)
	return &resp, nil
}

// Update renames a taille
func (s *TailleService) Update(ctx context.Context, tenantID, id int, req UpdateTailleRequest) (*TailleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	t, err := s.tailleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Taille != nil {
		libelle := shared.NormalizeText(*req.Taille)
		if libelle != t.Libelle {
			if err := s.ensureUniqueLibelle(ctx, tenantID, libelle, t.ID); err != nil {
				return nil, err
			}
		}
		t.Libelle = libelle
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	if err := s.tailleRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	resp := ToTailleResponse(t)
	return &resp, nil
}

// Delete removes a taille; articles wearing it lose their size
func (s *TailleService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	if err := s.tailleRepo.DeleteForSociete(ctx, tenantID, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *TailleService) ensureUniqueLibelle(ctx context.Context, tenantID int, libelle string, excludeID int) error {
	exists, err := s.tailleRepo.ExistsByLibelle(ctx, tenantID, libelle, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Une taille avec le libellé '%s' existe déjà pour cette société.", libelle)
	}
	return nil
}
