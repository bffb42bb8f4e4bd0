package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
)

// CategorieService is the part of catalogapp.CategorieService the handler needs
type CategorieService interface {
	List(ctx context.Context, tenantID int) ([]catalogapp.CategorieResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*catalogapp.CategorieResponse, error)
	Create(ctx context.Context, tenantID int, req catalogapp.CreateCategorieRequest) (*catalogapp.CategorieResponse, error)
	Update(ctx context.Context, tenantID, id int, req catalogapp.UpdateCategorieRequest) (*catalogapp.CategorieResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
}

// CategorieHandler handles categorie endpoints
type CategorieHandler struct {
	BaseHandler
	service CategorieService
}

// NewCategorieHandler creates a new CategorieHandler
func NewCategorieHandler(service CategorieService) *CategorieHandler {
	return &CategorieHandler{service: service}
}

// List godoc
// @Summary      List categories
// @Description  Ordered by ordreAffichage (unset last), then by name.
// @Tags         categories
// @Produce      json
// @Success      200 {array}  catalogapp.CategorieResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /categories [get]
func (h *CategorieHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	categories, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, categories)
}

// GetByID godoc
// @Summary      Get a categorie
// @Tags         categories
// @Produce      json
// @Param        id path int true "Categorie ID"
// @Success      200 {object} catalogapp.CategorieResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [get]
func (h *CategorieHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	categorie, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Catégorie", id))
		return
	}
	h.Success(c, categorie)
}

// Create godoc
// @Summary      Create a categorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateCategorieRequest true "Categorie"
// @Success      201 {object} catalogapp.CategorieResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /categories [post]
func (h *CategorieHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req catalogapp.CreateCategorieRequest
	if !h.bindJSON(c, &req) {
		return
	}
	categorie, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/categories/%d", categorie.IdCategorie), categorie)
}

// Update godoc
// @Summary      Update a categorie
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path int true "Categorie ID"
// @Param        request body catalogapp.UpdateCategorieRequest true "Fields to change"
// @Success      200 {object} catalogapp.CategorieResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [put]
func (h *CategorieHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req catalogapp.UpdateCategorieRequest
	if !h.bindJSON(c, &req) {
		return
	}
	categorie, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Catégorie", id))
		return
	}
	h.Success(c, categorie)
}

// Delete godoc
// @Summary      Delete a categorie
// @Description  Refused while articles reference the categorie.
// @Tags         categories
// @Produce      json
// @Param        id path int true "Categorie ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /categories/{id} [delete]
func (h *CategorieHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Catégorie", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Catégorie", id))
		return
	}
	h.Message(c, "Catégorie supprimée avec succès.")
}
