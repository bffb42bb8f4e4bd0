package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
)

// TailleService is the part of catalogapp.TailleService the handler needs
type TailleService interface {
	List(ctx context.Context, tenantID int) ([]catalogapp.TailleResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*catalogapp.TailleResponse, error)
	Create(ctx context.Context, tenantID int, req catalogapp.CreateTailleRequest) (*catalogapp.TailleResponse, error)
	Update(ctx context.Context, tenantID, id int, req catalogapp.UpdateTailleRequest) (*catalogapp.TailleResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
}

// TailleHandler handles taille endpoints
type TailleHandler struct {
	BaseHandler
	service TailleService
}

// NewTailleHandler creates a new TailleHandler
func NewTailleHandler(service TailleService) *TailleHandler {
	return &TailleHandler{service: service}
}

// List godoc
// @Summary      List tailles
// @Tags         tailles
// @Produce      json
// @Success      200 {array}  catalogapp.TailleResponse
// @Security     BearerAuth
// @Router       /tailles [get]
func (h *TailleHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	tailles, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, tailles)
}

// GetByID godoc
// @Summary      Get a taille
// @Tags         tailles
// @Produce      json
// @Param        id path int true "Taille ID"
// @Success      200 {object} catalogapp.TailleResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /tailles/{id} [get]
func (h *TailleHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	taille, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Taille", id))
		return
	}
	h.Success(c, taille)
}

// Create godoc
// @Summary      Create a taille
// @Tags         tailles
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateTailleRequest true "Taille"
// @Success      201 {object} catalogapp.TailleResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /tailles [post]
func (h *TailleHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req catalogapp.CreateTailleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	taille, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/tailles/%d", taille.IdTaille), taille)
}

// Update godoc
// @Summary      Update a taille
// @Tags         tailles
// @Accept       json
// @Produce      json
// @Param        id path int true "Taille ID"
// @Param        request body catalogapp.UpdateTailleRequest true "Fields to change"
// @Success      200 {object} catalogapp.TailleResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /tailles/{id} [put]
func (h *TailleHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req catalogapp.UpdateTailleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	taille, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Taille", id))
		return
	}
	h.Success(c, taille)
}

// Delete godoc
// @Summary      Delete a taille
// @Description  Articles using the taille keep existing without one.
// @Tags         tailles
// @Produce      json
// @Param        id path int true "Taille ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /tailles/{id} [delete]
func (h *TailleHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Taille", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Taille", id))
		return
	}
	h.Message(c, "Taille supprimée avec succès.")
}
