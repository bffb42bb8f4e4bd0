package persistence

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormArticleRepository implements catalog.ArticleRepository using GORM
type GormArticleRepository struct {
	db *gorm.DB
}

// NewGormArticleRepository creates a new GormArticleRepository
func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

// WithTx returns a new repository instance bound to the given transaction
func (r *GormArticleRepository) WithTx(tx *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: tx}
}

// FindAllForSociete lists articles with their taille and categorie
func (r *GormArticleRepository) FindAllForSociete(ctx context.Context, societeID int, filter catalog.ArticleFilter) ([]catalog.Article, error) {
	var articles []catalog.Article
	query := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Preload("Taille").
		Preload("Categorie").
		Order("nom_article ASC").
		Order("id_article ASC")
	if !filter.IncludeInactive {
		query = query.Where("actif = ?", true)
	}
	if filter.CategorieID != nil {
		query = query.Where("id_categorie = ?", *filter.CategorieID)
	}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// FindByIDForSociete finds an article by ID within a societe
func (r *GormArticleRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*catalog.Article, error) {
	var article catalog.Article
	if err := r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Preload("Taille").
		Preload("Categorie").
		Where("id_article = ?", id).
		First(&article).Error; err != nil {
		return nil, translateFindError(err)
	}
	return &article, nil
}

// CountByCategorie counts the societe's articles in a categorie
func (r *GormArticleRepository) CountByCategorie(ctx context.Context, societeID, categorieID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Article{}).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_categorie = ?", categorieID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an article
func (r *GormArticleRepository) Save(ctx context.Context, article *catalog.Article) error {
	return translateWriteError(r.db.WithContext(ctx).Omit(clause.Associations).Save(article).Error)
}

// DeleteForSociete deletes an article within a societe
func (r *GormArticleRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return deleteResult(r.db.WithContext(ctx).
		Scopes(tenant.SocieteScope(societeID)).
		Where("id_article = ?", id).
		Delete(&catalog.Article{}))
}

var (
	_ catalog.CategorieRepository = (*GormCategorieRepository)(nil)
	_ catalog.TailleRepository    = (*GormTailleRepository)(nil)
	_ catalog.ArticleRepository   = (*GormArticleRepository)(nil)
)
