package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
)

// SocieteService is the part of identityapp.SocieteService the handler needs
type SocieteService interface {
	List(ctx context.Context, tenantID int, filter identityapp.ActiveFilter) ([]identityapp.SocieteResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*identityapp.SocieteResponse, error)
	Create(ctx context.Context, tenantID int, req identityapp.CreateSocieteRequest) (*identityapp.SocieteResponse, error)
	Update(ctx context.Context, tenantID, id int, req identityapp.UpdateSocieteRequest) (*identityapp.SocieteResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	ToggleActive(ctx context.Context, tenantID, id int) (bool, error)
}

// SocieteHandler handles societe endpoints. Societes are not tenant-scoped
// rows but mutations are limited to the caller's own societe.
type SocieteHandler struct {
	BaseHandler
	service SocieteService
}

// NewSocieteHandler creates a new SocieteHandler
func NewSocieteHandler(service SocieteService) *SocieteHandler {
	return &SocieteHandler{service: service}
}

// List godoc
// @Summary      List societes
// @Tags         societes
// @Produce      json
// @Param        includeInactive query bool false "Include inactive societes"
// @Success      200 {array}  identityapp.SocieteResponse
// @Security     BearerAuth
// @Router       /societes [get]
func (h *SocieteHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter identityapp.ActiveFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	societes, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, societes)
}

// GetByID godoc
// @Summary      Get a societe
// @Tags         societes
// @Produce      json
// @Param        id path int true "Societe ID"
// @Success      200 {object} identityapp.SocieteResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /societes/{id} [get]
func (h *SocieteHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	societe, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Société", id))
		return
	}
	h.Success(c, societe)
}

// Create godoc
// @Summary      Create a societe
// @Tags         societes
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateSocieteRequest true "Societe"
// @Success      201 {object} identityapp.SocieteResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /societes [post]
func (h *SocieteHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req identityapp.CreateSocieteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	societe, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/societes/%d", societe.IdSociete), societe)
}

// Update godoc
// @Summary      Update the caller's societe
// @Tags         societes
// @Accept       json
// @Produce      json
// @Param        id path int true "Societe ID"
// @Param        request body identityapp.UpdateSocieteRequest true "Fields to change"
// @Success      200 {object} identityapp.SocieteResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /societes/{id} [put]
func (h *SocieteHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req identityapp.UpdateSocieteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	societe, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Société", id))
		return
	}
	h.Success(c, societe)
}

// Delete godoc
// @Summary      Delete the caller's societe
// @Description  Refused while any row still belongs to the societe.
// @Tags         societes
// @Produce      json
// @Param        id path int true "Societe ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /societes/{id} [delete]
func (h *SocieteHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Société", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Société", id))
		return
	}
	h.Message(c, "Société supprimée avec succès.")
}

// ToggleActive godoc
// @Summary      Activate or deactivate the caller's societe
// @Tags         societes
// @Produce      json
// @Param        id path int true "Societe ID"
// @Success      200 {object} identityapp.SocieteResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /societes/{id}/actif [patch]
func (h *SocieteHandler) ToggleActive(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Société", id))
		return
	}
	if !toggled {
		h.NotFound(c, notFoundMessage("Société", id))
		return
	}
	societe, err := h.service.GetByID(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Société", id))
		return
	}
	h.Success(c, societe)
}
