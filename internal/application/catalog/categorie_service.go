package catalog

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/domain/shared"
)

// CategorieService handles categorie operations
type CategorieService struct {
	categorieRepo catalog.CategorieRepository
	articleRepo   catalog.ArticleRepository
}

// NewCategorieService creates a new CategorieService
func NewCategorieService(
	categorieRepo catalog.CategorieRepository,
	articleRepo catalog.ArticleRepository,
) *CategorieService {
	return &CategorieService{
		categorieRepo: categorieRepo,
		articleRepo:   articleRepo,
	}
}

// List returns the societe's categories in display order
func (s *CategorieService) List(ctx context.Context, tenantID int) ([]CategorieResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	categories, err := s.categorieRepo.FindAllForSociete(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toCategorieResponses(categories), nil
}

// GetByID retrieves a categorie of the societe
func (s *CategorieService) GetByID(ctx context.Context, tenantID, id int) (*CategorieResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := s.categorieRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToCategorieResponse(c)
	return &resp, nil
}

// Create creates a categorie with a name unique in the societe
func (s *CategorieService) Create(ctx context.Context, tenantID int, req CreateCategorieRequest) (*CategorieResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := catalog.NewCategorie(tenantID, req.NomCategorie, req.Description, req.OrdreAffichage)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueName(ctx, tenantID, c.NomCategorie, 0); err != nil {
		return nil, err
	}
	if err := s.categorieRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCategorieResponse(c)
	return &resp, nil
}

// Update applies the present fields of req
func (s *CategorieService) Update(ctx context.Context, tenantID, id int, req UpdateCategorieRequest) (*CategorieResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := s.categorieRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.NomCategorie != nil {
		nom := shared.NormalizeText(*req.NomCategorie)
		if nom != c.NomCategorie {
			if err := s.ensureUniqueName(ctx, tenantID, nom, c.ID); err != nil {
				return nil, err
			}
		}
		c.NomCategorie = nom
	}
	if req.Description != nil {
		c.Description = shared.NormalizeOptional(req.Description)
	}
	if req.OrdreAffichage != nil {
		c.OrdreAffichage = req.OrdreAffichage
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.categorieRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToCategorieResponse(c)
	return &resp, nil
}

// Delete removes a categorie no article refers to
func (s *CategorieService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	c, err := s.categorieRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	count, err := s.articleRepo.CountByCategorie(ctx, tenantID, c.ID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, shared.NewConflictError(
			"La catégorie '%s' ne peut pas être supprimée car elle contient %d article(s).", c.NomCategorie, count)
	}

	if err := s.categorieRepo.DeleteForSociete(ctx, tenantID, c.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *CategorieService) ensureUniqueName(ctx context.Context, tenantID int, nom string, excludeID int) error {
	exists, err := s.categorieRepo.ExistsByName(ctx, tenantID, nom, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Une catégorie avec le nom '%s' existe déjà pour cette société.", nom)
	}
	return nil
}
