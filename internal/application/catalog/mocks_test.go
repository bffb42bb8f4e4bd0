package catalog

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/stretchr/testify/mock"
)

type MockCategorieRepository struct {
	mock.Mock
}

func (m *MockCategorieRepository) FindAllForSociete(ctx context.Context, societeID int) ([]catalog.Categorie, error) {
	args := m.Called(ctx, societeID)
	return args.Get(0).([]catalog.Categorie), args.Error(1)
}

func (m *MockCategorieRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*catalog.Categorie, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Categorie), args.Error(1)
}

func (m *MockCategorieRepository) ExistsByName(ctx context.Context, societeID int, nom string, excludeID int) (bool, error) {
	args := m.Called(ctx, societeID, nom, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategorieRepository) Save(ctx context.Context, categorie *catalog.Categorie) error {
	args := m.Called(ctx, categorie)
	return args.Error(0)
}

func (m *MockCategorieRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	args := m.Called(ctx, societeID, id)
	return args.Error(0)
}

type MockTailleRepository struct {
	mock.Mock
}

func (m *MockTailleRepository) FindAllForSociete(ctx context.Context, societeID int) ([]catalog.Taille, error) {
	args := m.Called(ctx, societeID)
	return args.Get(0).([]catalog.Taille), args.Error(1)
}

func (m *MockTailleRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*catalog.Taille, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Taille), args.Error(1)
}

func (m *MockTailleRepository) ExistsByLibelle(ctx context.Context, societeID int, libelle string, excludeID int) (bool, error) {
	args := m.Called(ctx, societeID, libelle, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTailleRepository) Save(ctx context.Context, taille *catalog.Taille) error {
	args := m.Called(ctx, taille)
	return args.Error(0)
}

func (m *MockTailleRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	args := m.Called(ctx, societeID, id)
	return args.Error(0)
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) FindAllForSociete(ctx context.Context, societeID int, filter catalog.ArticleFilter) ([]catalog.Article, error) {
	args := m.Called(ctx, societeID, filter)
	return args.Get(0).([]catalog.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*catalog.Article, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Article), args.Error(1)
}

func (m *MockArticleRepository) CountByCategorie(ctx context.Context, societeID, categorieID int) (int64, error) {
	args := m.Called(ctx, societeID, categorieID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticleRepository) Save(ctx context.Context, article *catalog.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	args := m.Called(ctx, societeID, id)
	return args.Error(0)
}
