package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
)

// ArticleService is the part of catalogapp.ArticleService the handler needs
type ArticleService interface {
	List(ctx context.Context, tenantID int, filter catalogapp.ArticleListFilter) ([]catalogapp.ArticleResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*catalogapp.ArticleResponse, error)
	Create(ctx context.Context, tenantID int, req catalogapp.CreateArticleRequest) (*catalogapp.ArticleResponse, error)
	Update(ctx context.Context, tenantID, id int, req catalogapp.UpdateArticleRequest) (*catalogapp.ArticleResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	ToggleActive(ctx context.Context, tenantID, id int) (bool, error)
}

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	BaseHandler
	service ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(service ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List godoc
// @Summary      List articles
// @Description  Articles of the caller's societe ordered by name. Inactive articles are hidden unless includeInactive is set.
// @Tags         articles
// @Produce      json
// @Param        includeInactive query bool false "Include inactive articles"
// @Param        idCategorie query int false "Only articles of this categorie"
// @Success      200 {array}  catalogapp.ArticleResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter catalogapp.ArticleListFilter
	if !h.bindQuery(c, &filter) {
		return
	}

	articles, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, articles)
}

// GetByID godoc
// @Summary      Get an article
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} catalogapp.ArticleResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /articles/{id} [get]
func (h *ArticleHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	article, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Article", id))
		return
	}
	h.Success(c, article)
}

// Create godoc
// @Summary      Create an article
// @Description  The categorie and the optional taille must belong to the caller's societe.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateArticleRequest true "Article"
// @Success      201 {object} catalogapp.ArticleResponse
// @Header       201 {string} Location "/api/articles/{id}"
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req catalogapp.CreateArticleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	article, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/articles/%d", article.IdArticle), article)
}

// Update godoc
// @Summary      Update an article
// @Description  Only the fields present in the body change. An explicit null idTaille clears the taille.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        request body catalogapp.UpdateArticleRequest true "Fields to change"
// @Success      200 {object} catalogapp.ArticleResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req catalogapp.UpdateArticleRequest
	if !h.bindJSON(c, &req) {
		return
	}

	article, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Article", id))
		return
	}
	h.Success(c, article)
}

// Delete godoc
// @Summary      Delete an article
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Article", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Article", id))
		return
	}
	h.Message(c, "Article supprimé avec succès.")
}

// ToggleActive godoc
// @Summary      Activate or deactivate an article
// @Tags         articles
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} catalogapp.ArticleResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /articles/{id}/actif [patch]
func (h *ArticleHandler) ToggleActive(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	toggled, err := h.service.ToggleActive(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Article", id))
		return
	}
	if !toggled {
		h.NotFound(c, notFoundMessage("Article", id))
		return
	}

	article, err := h.service.GetByID(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Article", id))
		return
	}
	h.Success(c, article)
}
