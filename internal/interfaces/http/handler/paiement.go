package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	rentalapp "github.com/mkboutique/backend/internal/application/rental"
)

// PaiementService is the part of rentalapp.PaiementService the handler needs
type PaiementService interface {
	List(ctx context.Context, tenantID int, filter rentalapp.PaiementListFilter) ([]rentalapp.PaiementResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*rentalapp.PaiementResponse, error)
	Create(ctx context.Context, tenantID int, req rentalapp.CreatePaiementRequest) (*rentalapp.PaiementResponse, error)
	Update(ctx context.Context, tenantID, id int, req rentalapp.UpdatePaiementRequest) (*rentalapp.PaiementResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
}

// PaiementHandler handles paiement endpoints
type PaiementHandler struct {
	BaseHandler
	service PaiementService
}

// NewPaiementHandler creates a new PaiementHandler
func NewPaiementHandler(service PaiementService) *PaiementHandler {
	return &PaiementHandler{service: service}
}

// List godoc
// @Summary      List paiements
// @Description  Most recent first.
// @Tags         paiements
// @Produce      json
// @Param        idReservation query int false "Only paiements of this reservation"
// @Success      200 {array}  rentalapp.PaiementResponse
// @Security     BearerAuth
// @Router       /paiements [get]
func (h *PaiementHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter rentalapp.PaiementListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	paiements, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, paiements)
}

// GetByID godoc
// @Summary      Get a paiement
// @Tags         paiements
// @Produce      json
// @Param        id path int true "Paiement ID"
// @Success      200 {object} rentalapp.PaiementResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /paiements/{id} [get]
func (h *PaiementHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	paiement, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Paiement", id))
		return
	}
	h.Success(c, paiement)
}

// Create godoc
// @Summary      Record a paiement
// @Description  The reservation is linked to the new paiement in the same transaction.
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        request body rentalapp.CreatePaiementRequest true "Paiement"
// @Success      201 {object} rentalapp.PaiementResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /paiements [post]
func (h *PaiementHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req rentalapp.CreatePaiementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	paiement, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/paiements/%d", paiement.IdPaiement), paiement)
}

// Update godoc
// @Summary      Update a paiement
// @Tags         paiements
// @Accept       json
// @Produce      json
// @Param        id path int true "Paiement ID"
// @Param        request body rentalapp.UpdatePaiementRequest true "Fields to change"
// @Success      200 {object} rentalapp.PaiementResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /paiements/{id} [put]
func (h *PaiementHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req rentalapp.UpdatePaiementRequest
	if !h.bindJSON(c, &req) {
		return
	}
	paiement, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Paiement", id))
		return
	}
	h.Success(c, paiement)
}

// Delete godoc
// @Summary      Delete a paiement
// @Tags         paiements
// @Produce      json
// @Param        id path int true "Paiement ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /paiements/{id} [delete]
func (h *PaiementHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Paiement", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Paiement", id))
		return
	}
	h.Message(c, "Paiement supprimé avec succès.")
}
