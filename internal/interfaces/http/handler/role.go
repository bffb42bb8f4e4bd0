package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
)

// RoleService is the part of identityapp.RoleService the handler needs
type RoleService interface {
	List(ctx context.Context, tenantID int, filter identityapp.ActiveFilter) ([]identityapp.RoleResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*identityapp.RoleResponse, error)
	Create(ctx context.Context, tenantID int, req identityapp.CreateRoleRequest) (*identityapp.RoleResponse, error)
	Update(ctx context.Context, tenantID, id int, req identityapp.UpdateRoleRequest) (*identityapp.RoleResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	ToggleActive(ctx context.Context, tenantID, id int) (bool, error)
	ListUsers(ctx context.Context, tenantID, roleID int) ([]identityapp.UserResponse, error)
}

// RoleHandler handles role endpoints
type RoleHandler struct {
	BaseHandler
	service RoleService
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(service RoleService) *RoleHandler {
	return &RoleHandler{service: service}
}

// List godoc
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Param        includeInactive query bool false "Include inactive roles"
// @Success      200 {array}  identityapp.RoleResponse
// @Security     BearerAuth
// @Router       /roles [get]
func (h *RoleHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter identityapp.ActiveFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	roles, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, roles)
}

// GetByID godoc
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Param        id path int true "Role ID"
// @Success      200 {object} identityapp.RoleResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /roles/{id} [get]
func (h *RoleHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	role, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Rôle", id))
		return
	}
	h.Success(c, role)
}

// Create godoc
// @Summary      Create a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateRoleRequest true "Role"
// @Success      201 {object} identityapp.RoleResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /roles [post]
func (h *RoleHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req identityapp.CreateRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	role, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/roles/%d", role.IdRole), role)
}

// Update godoc
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Param        id path int true "Role ID"
// @Param        request body identityapp.UpdateRoleRequest true "Fields to change"
// @Success      200 {object} identityapp.RoleResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /roles/{id} [put]
func (h *RoleHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req identityapp.UpdateRoleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	role, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Rôle", id))
		return
	}
	h.Success(c, role)
}

// Delete godoc
// @Summary      Delete a role
// @Description  Refused while users hold the role.
// @Tags         roles
// @Produce      json
// @Param        id path int true "Role ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /roles/{id} [delete]
func (h *RoleHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Rôle", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Rôle", id))
		return
	}
	h.Message(c, "Rôle supprimé avec succès.")
}

// ToggleActive godoc
// @Summary      Activate or deactivate a role
// @Tags         roles
// @Produce      json
// @Param        id path int true "Role ID"
// @Success      200 {object} identityapp.RoleResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /roles/{id}/actif [patch]
func (h *RoleHandler) ToggleActive(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Rôle", id))
		return
	}
	if !toggled {
		h.NotFound(c, notFoundMessage("Rôle", id))
		return
	}
	role, err := h.service.GetByID(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Rôle", id))
		return
	}
	h.Success(c, role)
}

// ListUsers godoc
// @Summary      List the users holding a role
// @Tags         roles
// @Produce      json
// @Param        id path int true "Role ID"
// @Success      200 {array}  identityapp.UserResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /roles/{id}/users [get]
func (h *RoleHandler) ListUsers(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	users, err := h.service.ListUsers(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Rôle", id))
		return
	}
	h.Success(c, users)
}
