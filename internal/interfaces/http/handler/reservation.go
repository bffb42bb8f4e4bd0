package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	rentalapp "github.com/mkboutique/backend/internal/application/rental"
	"github.com/mkboutique/backend/internal/domain/rental"
)

// ReservationService is the part of rentalapp.ReservationService the handler needs
type ReservationService interface {
	List(ctx context.Context, tenantID int, filter rentalapp.ReservationListFilter) ([]rentalapp.ReservationResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*rentalapp.ReservationResponse, error)
	Create(ctx context.Context, tenantID int, req rentalapp.CreateReservationRequest) (*rentalapp.ReservationResponse, error)
	Update(ctx context.Context, tenantID, id int, req rentalapp.UpdateReservationRequest) (*rentalapp.ReservationResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	UpdateStatus(ctx context.Context, tenantID, id int, statut rental.StatutReservation) (bool, error)
}

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	BaseHandler
	service ReservationService
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(service ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// List godoc
// @Summary      List reservations
// @Description  Most recent start date first, with client and paiement embedded.
// @Tags         reservations
// @Produce      json
// @Param        statut query int false "Status (0 EnAttente, 1 Confirmee, 2 EnCours, 3 Terminee, 4 Annulee)"
// @Param        idClient query int false "Only reservations of this client"
// @Success      200 {array}  rentalapp.ReservationResponse
// @Security     BearerAuth
// @Router       /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter rentalapp.ReservationListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	reservations, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, reservations)
}

// GetByID godoc
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Success      200 {object} rentalapp.ReservationResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	reservation, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Réservation", id))
		return
	}
	h.Success(c, reservation)
}

// Create godoc
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        request body rentalapp.CreateReservationRequest true "Reservation"
// @Success      201 {object} rentalapp.ReservationResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req rentalapp.CreateReservationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	reservation, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/reservations/%d", reservation.IdReservation), reservation)
}

// Update godoc
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Param        request body rentalapp.UpdateReservationRequest true "Fields to change"
// @Success      200 {object} rentalapp.ReservationResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req rentalapp.UpdateReservationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	reservation, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Réservation", id))
		return
	}
	h.Success(c, reservation)
}

// Delete godoc
// @Summary      Delete a reservation
// @Description  Refused while a paiement references the reservation.
// @Tags         reservations
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Réservation", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Réservation", id))
		return
	}
	h.Message(c, "Réservation supprimée avec succès.")
}

// UpdateStatus godoc
// @Summary      Change a reservation's status
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Param        request body rentalapp.UpdateStatutRequest true "New status"
// @Success      200 {object} rentalapp.ReservationResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /reservations/{id}/statut [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req rentalapp.UpdateStatutRequest
	if !h.bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	updated, err := h.service.UpdateStatus(ctx, tenantID, id, *req.Statut)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Réservation", id))
		return
	}
	if !updated {
		h.NotFound(c, notFoundMessage("Réservation", id))
		return
	}

	reservation, err := h.service.GetByID(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Réservation", id))
		return
	}
	h.Success(c, reservation)
}
