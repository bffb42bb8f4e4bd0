package catalog

import "context"

// CategorieRepository defines persistence for categories
type CategorieRepository interface {
	// FindAllForSociete orders by display order (nulls last) then name
	FindAllForSociete(ctx context.Context, societeID int) ([]Categorie, error)
	// FindByIDForSociete returns shared.ErrNotFound when absent or in another societe
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Categorie, error)
	ExistsByName(ctx context.Context, societeID int, nom string, excludeID int) (bool, error)
	Save(ctx context.Context, categorie *Categorie) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
}

// TailleRepository defines persistence for tailles
type TailleRepository interface {
	FindAllForSociete(ctx context.Context, societeID int) ([]Taille, error)
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Taille, error)
	ExistsByLibelle(ctx context.Context, societeID int, libelle string, excludeID int) (bool, error)
	Save(ctx context.Context, taille *Taille) error
	// DeleteForSociete detaches referencing articles then deletes the taille
	DeleteForSociete(ctx context.Context, societeID, id int) error
}

// ArticleFilter narrows article listings
type ArticleFilter struct {
	IncludeInactive bool
	CategorieID     *int
}

// ArticleRepository defines persistence for articles
type ArticleRepository interface {
	// FindAllForSociete returns articles with taille and categorie, ordered by name
	FindAllForSociete(ctx context.Context, societeID int, filter ArticleFilter) ([]Article, error)
	// FindByIDForSociete loads the article with taille and categorie
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Article, error)
	CountByCategorie(ctx context.Context, societeID, categorieID int) (int64, error)
	Save(ctx context.Context, article *Article) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
}
