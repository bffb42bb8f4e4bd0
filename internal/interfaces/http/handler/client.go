package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	partnerapp "github.com/mkboutique/backend/internal/application/partner"
)

// ClientService is the part of partnerapp.ClientService the handler needs
type ClientService interface {
	List(ctx context.Context, tenantID int, filter partnerapp.ClientListFilter) ([]partnerapp.ClientResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*partnerapp.ClientResponse, error)
	Create(ctx context.Context, tenantID int, req partnerapp.CreateClientRequest) (*partnerapp.ClientResponse, error)
	Update(ctx context.Context, tenantID, id int, req partnerapp.UpdateClientRequest) (*partnerapp.ClientResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	ToggleActive(ctx context.Context, tenantID, id int) (bool, error)
	IncrementTotalCommandes(ctx context.Context, tenantID, id int) (bool, error)
}

// ClientHandler handles client endpoints
type ClientHandler struct {
	BaseHandler
	service ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(service ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List godoc
// @Summary      List clients
// @Description  Clients ordered by last name then first name.
// @Tags         clients
// @Produce      json
// @Param        includeInactive query bool false "Include inactive clients"
// @Success      200 {array}  partnerapp.ClientResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter partnerapp.ClientListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	clients, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, clients)
}

// GetByID godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id path int true "Client ID"
// @Success      200 {object} partnerapp.ClientResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	client, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Client", id))
		return
	}
	h.Success(c, client)
}

// Create godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        request body partnerapp.CreateClientRequest true "Client"
// @Success      201 {object} partnerapp.ClientResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req partnerapp.CreateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}
	client, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/clients/%d", client.IdClient), client)
}

// Update godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id path int true "Client ID"
// @Param        request body partnerapp.UpdateClientRequest true "Fields to change"
// @Success      200 {object} partnerapp.ClientResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req partnerapp.UpdateClientRequest
	if !h.bindJSON(c, &req) {
		return
	}
	client, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Client", id))
		return
	}
	h.Success(c, client)
}

// Delete godoc
// @Summary      Delete a client
// @Description  Refused while reservations reference the client.
// @Tags         clients
// @Produce      json
// @Param        id path int true "Client ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Client", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Client", id))
		return
	}
	h.Message(c, "Client supprimé avec succès.")
}

// ToggleActive godoc
// @Summary      Activate or deactivate a client
// @Tags         clients
// @Produce      json
// @Param        id path int true "Client ID"
// @Success      200 {object} partnerapp.ClientResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id}/actif [patch]
func (h *ClientHandler) ToggleActive(c *gin.Context) {
	h.mutateThenGet(c, h.service.ToggleActive)
}

// IncrementTotalCommandes godoc
// @Summary      Count one more order for a client
// @Tags         clients
// @Produce      json
// @Param        id path int true "Client ID"
// @Success      200 {object} partnerapp.ClientResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /clients/{id}/total-commandes [patch]
func (h *ClientHandler) IncrementTotalCommandes(c *gin.Context) {
	h.mutateThenGet(c, h.service.IncrementTotalCommandes)
}

// mutateThenGet runs a (bool, error) mutation and answers with the reloaded client
func (h *ClientHandler) mutateThenGet(c *gin.Context, mutate func(ctx context.Context, tenantID, id int) (bool, error)) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	done, err := mutate(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Client", id))
		return
	}
	if !done {
		h.NotFound(c, notFoundMessage("Client", id))
		return
	}

	client, err := h.service.GetByID(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Client", id))
		return
	}
	h.Success(c, client)
}
