package catalog

import (
	"github.com/mkboutique/backend/internal/domain/catalog"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CreateCategorieRequest represents a request to create a categorie
type CreateCategorieRequest struct {
	NomCategorie   string  `json:"nomCategorie" binding:"required,max=50"`
	Description    *string `json:"description"`
	OrdreAffichage *int    `json:"ordreAffichage"`
}

// UpdateCategorieRequest represents a partial categorie update
type UpdateCategorieRequest struct {
	NomCategorie   *string `json:"nomCategorie" binding:"omitempty,max=50"`
	Description    *string `json:"description"`
	OrdreAffichage *int    `json:"ordreAffichage"`
}

// CategorieResponse represents a categorie in API responses
type CategorieResponse struct {
	IdCategorie    int     `json:"idCategorie"`
	NomCategorie   string  `json:"nomCategorie"`
	Description    *string `json:"description"`
	OrdreAffichage *int    `json:"ordreAffichage"`
	IdSociete      int     `json:"idSociete"`
}

// CreateTailleRequest represents a request to create a taille
type CreateTailleRequest struct {
	Taille string `json:"taille" binding:"required,max=50"`
}

// UpdateTailleRequest represents a partial taille update
type UpdateTailleRequest struct {
	Taille *string `json:"taille" binding:"omitempty,max=50"`
}

// TailleResponse represents a taille in API responses
type TailleResponse struct {
	IdTaille  int    `json:"idTaille"`
	Taille    string `json:"taille"`
	IdSociete int    `json:"idSociete"`
}

// ArticleListFilter narrows article listings
type ArticleListFilter struct {
	IncludeInactive bool `form:"includeInactive"`
	IdCategorie     *int `form:"idCategorie"`
}

// CreateArticleRequest represents a request to create an article
type CreateArticleRequest struct {
	NomArticle       string          `json:"nomArticle" binding:"required,max=200"`
	Description      *string         `json:"description"`
	PrixLocationBase decimal.Decimal `json:"prixLocationBase"`
	PrixAvanceBase   decimal.Decimal `json:"prixAvanceBase"`
	IdTaille         *int            `json:"idTaille"`
	Couleur          *string         `json:"couleur" binding:"omitempty,max=50"`
	Photo            *string         `json:"photo"`
	IdCategorie      int             `json:"idCategorie" binding:"required,gt=0"`
}

// UpdateArticleRequest represents a partial article update.
// IdTaille distinguishes an absent field from an explicit null.
type UpdateArticleRequest struct {
	NomArticle       *string           `json:"nomArticle" binding:"omitempty,max=200"`
	Description      *string           `json:"description"`
	PrixLocationBase *decimal.Decimal  `json:"prixLocationBase"`
	PrixAvanceBase   *decimal.Decimal  `json:"prixAvanceBase"`
	IdTaille         shared.Patch[int] `json:"idTaille" swaggertype:"integer"`
	Couleur          *string           `json:"couleur" binding:"omitempty,max=50"`
	Photo            *string           `json:"photo"`
	IdCategorie      *int              `json:"idCategorie" binding:"omitempty,gt=0"`
	Actif            *bool             `json:"actif"`
}

// ArticleResponse represents an article with its taille and categorie
type ArticleResponse struct {
	IdArticle        int                `json:"idArticle"`
	NomArticle       string             `json:"nomArticle"`
	Description      *string            `json:"description"`
	PrixLocationBase decimal.Decimal    `json:"prixLocationBase"`
	PrixAvanceBase   decimal.Decimal    `json:"prixAvanceBase"`
	IdTaille         *int               `json:"idTaille"`
	Taille           *TailleResponse    `json:"taille"`
	Couleur          *string            `json:"couleur"`
	Photo            *string            `json:"photo"`
	IdCategorie      int                `json:"idCategorie"`
	Categorie        *CategorieResponse `json:"categorie"`
	Actif            bool               `json:"actif"`
	IdSociete        int                `json:"idSociete"`
}

// ToCategorieResponse converts a domain categorie to a response DTO
func ToCategorieResponse(c *catalog.Categorie) CategorieResponse {
	return CategorieResponse{
		IdCategorie:    c.ID,
		NomCategorie:   c.NomCategorie,
		Description:    c.Description,
		OrdreAffichage: c.OrdreAffichage,
		IdSociete:      c.SocieteID,
	}
}

// ToTailleResponse converts a domain taille to a response DTO
func ToTailleResponse(t *catalog.Taille) TailleResponse {
	return TailleResponse{
		IdTaille:  t.ID,
		Taille:    t.Libelle,
		IdSociete: t.SocieteID,
	}
}

// ToArticleResponse converts a domain article, with loaded relations, to a response DTO
func ToArticleResponse(a *catalog.Article) ArticleResponse {
	resp := ArticleResponse{
		IdArticle:        a.ID,
		NomArticle:       a.NomArticle,
		Description:      a.Description,
		PrixLocationBase: a.PrixLocationBase,
		PrixAvanceBase:   a.PrixAvanceBase,
		IdTaille:         a.TailleID,
		Couleur:          a.Couleur,
		Photo:            a.Photo,
		IdCategorie:      a.CategorieID,
		Actif:            a.Actif,
		IdSociete:        a.SocieteID,
	}
	if a.Taille != nil {
		t := ToTailleResponse(a.Taille)
		resp.Taille = &t
	}
	if a.Categorie != nil {
		c := ToCategorieResponse(a.Categorie)
		resp.Categorie = &c
	}
	return resp
}

func toCategorieResponses(categories []catalog.Categorie) []CategorieResponse {
	out := make([]CategorieResponse, len(categories))
	for i := range categories {
		out[i] = ToCategorieResponse(&categories[i])
	}
	return out
}

func toTailleResponses(tailles []catalog.Taille) []TailleResponse {
	out := make([]TailleResponse, len(tailles))
	for i := range tailles {
		out[i] = ToTailleResponse(&tailles[i])
	}
	return out
}

func toArticleResponses(articles []catalog.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i := range articles {
		out[i] = ToArticleResponse(&articles[i])
	}
	return out
}
