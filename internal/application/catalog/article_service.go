package catalog

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/domain/shared"
)

// ArticleService handles article operations
type ArticleService struct {
	articleRepo   catalog.ArticleRepository
	categorieRepo catalog.CategorieRepository
	tailleRepo    catalog.TailleRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(
	articleRepo catalog.ArticleRepository,
	categorieRepo catalog.CategorieRepository,
	tailleRepo catalog.TailleRepository,
) *ArticleService {
	return &ArticleService{
		articleRepo:   articleRepo,
		categorieRepo: categorieRepo,
		tailleRepo:    tailleRepo,
	}
}

// List returns the societe's articles ordered by name
func (s *ArticleService) List(ctx context.Context, tenantID int, filter ArticleListFilter) ([]ArticleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	articles, err := s.articleRepo.FindAllForSociete(ctx, tenantID, catalog.ArticleFilter{
		IncludeInactive: filter.IncludeInactive,
		CategorieID:     filter.IdCategorie,
	})
	if err != nil {
		return nil, err
	}
	return toArticleResponses(articles), nil
}

// GetByID retrieves an article with its taille and categorie
func (s *ArticleService) GetByID(ctx context.Context, tenantID, id int) (*ArticleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	a, err := s.articleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToArticleResponse(a)
	return &resp, nil
}

// Create creates an active article
func (s *ArticleService) Create(ctx context.Context, tenantID int, req CreateArticleRequest) (*ArticleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	a, err := catalog.NewArticle(tenantID, catalog.ArticleFields{
		NomArticle:       req.NomArticle,
		Description:      req.Description,
		PrixLocationBase: req.PrixLocationBase,
		PrixAvanceBase:   req.PrixAvanceBase,
		TailleID:         req.IdTaille,
		Couleur:          req.Couleur,
		Photo:            req.Photo,
		CategorieID:      req.IdCategorie,
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, tenantID, a.CategorieID, a.TailleID); err != nil {
		return nil, err
	}
	if err := s.articleRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return s.reload(ctx, tenantID, a.ID)
}

// Update applies the present fields of req. A null idTaille detaches the size.
func (s *ArticleService) Update(ctx context.Context, tenantID, id int, req UpdateArticleRequest) (*ArticleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	a, err := s.articleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.NomArticle != nil {
		a.NomArticle = shared.NormalizeText(*req.NomArticle)
	}
	if req.Description != nil {
		a.Description = shared.NormalizeOptional(req.Description)
	}
	if req.PrixLocationBase != nil {
		a.PrixLocationBase = *req.PrixLocationBase
	}
	if req.PrixAvanceBase != nil {
		a.PrixAvanceBase = *req.PrixAvanceBase
	}
	if req.Couleur != nil {
		a.Couleur = shared.NormalizeOptional(req.Couleur)
	}
	if req.Photo != nil {
		a.Photo = shared.NormalizeOptional(req.Photo)
	}
	if req.Actif != nil {
		a.Actif = *req.Actif
	}

	categorieChanged := req.IdCategorie != nil && *req.IdCategorie != a.CategorieID
	if req.IdCategorie != nil {
		a.CategorieID = *req.IdCategorie
	}
	req.IdTaille.Apply(&a.TailleID)

	if err := a.Validate(); err != nil {
		return nil, err
	}

	var checkCategorie int
	if categorieChanged {
		checkCategorie = a.CategorieID
	}
	var checkTaille *int
	if req.IdTaille.IsSet() {
		checkTaille = a.TailleID
	}
	if err := s.checkReferences(ctx, tenantID, checkCategorie, checkTaille); err != nil {
		return nil, err
	}

	if err := s.articleRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return s.reload(ctx, tenantID, a.ID)
}

// Delete removes an article
func (s *ArticleService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	if err := s.articleRepo.DeleteForSociete(ctx, tenantID, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ToggleActive flips the article's active flag
func (s *ArticleService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	a, err := s.articleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	a.ToggleActive()
	if err := s.articleRepo.Save(ctx, a); err != nil {
		return false, err
	}
	return true, nil
}

// checkReferences verifies the categorie (when non-zero) and the taille
// (when non-nil) exist in the societe.
func (s *ArticleService) checkReferences(ctx context.Context, tenantID, categorieID int, tailleID *int) error {
	if categorieID > 0 {
		if _, err := s.categorieRepo.FindByIDForSociete(ctx, tenantID, categorieID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewValidationError("La catégorie avec l'ID %d n'existe pas.", categorieID)
			}
			return err
		}
	}
	if tailleID != nil {
		if _, err := s.tailleRepo.FindByIDForSociete(ctx, tenantID, *tailleID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewValidationError("La taille avec l'ID %d n'existe pas.", *tailleID)
			}
			return err
		}
	}
	return nil
}

func (s *ArticleService) reload(ctx context.Context, tenantID, id int) (*ArticleResponse, error) {
	a, err := s.articleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToArticleResponse(a)
	return &resp, nil
}
