package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
)

// UserService is the part of identityapp.UserService the handler needs
type UserService interface {
	List(ctx context.Context, tenantID int, filter identityapp.UserListFilter) ([]identityapp.UserResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*identityapp.UserResponse, error)
	Create(ctx context.Context, tenantID int, req identityapp.CreateUserRequest) (*identityapp.UserResponse, error)
	Update(ctx context.Context, tenantID, id int, req identityapp.UpdateUserRequest) (*identityapp.UserResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	ToggleActive(ctx context.Context, tenantID, id int) (bool, error)
}

// UserHandler handles user endpoints
type UserHandler struct {
	BaseHandler
	service UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List godoc
// @Summary      List users
// @Description  Users whose role belongs to the caller's societe.
// @Tags         users
// @Produce      json
// @Param        idRole query int false "Only users holding this role"
// @Param        includeInactive query bool false "Include inactive users"
// @Success      200 {array}  identityapp.UserResponse
// @Security     BearerAuth
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var filter identityapp.UserListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	users, err := h.service.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, users)
}

// GetByID godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} identityapp.UserResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	user, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Utilisateur", id))
		return
	}
	h.Success(c, user)
}

// Create godoc
// @Summary      Create a user
// @Description  The password is stored as a bcrypt hash and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateUserRequest true "User"
// @Success      201 {object} identityapp.UserResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req identityapp.CreateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/users/%d", user.IdUtilisateur), user)
}

// Update godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body identityapp.UpdateUserRequest true "Fields to change"
// @Success      200 {object} identityapp.UserResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req identityapp.UpdateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}
	user, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Utilisateur", id))
		return
	}
	h.Success(c, user)
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Utilisateur", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Utilisateur", id))
		return
	}
	h.Message(c, "Utilisateur supprimé avec succès.")
}

// ToggleActive godoc
// @Summary      Activate or deactivate a user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} identityapp.UserResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id}/actif [patch]
func (h *UserHandler) ToggleActive(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Utilisateur", id))
		return
	}
	if !toggled {
		h.NotFound(c, notFoundMessage("Utilisateur", id))
		return
	}
	user, err := h.service.GetByID(ctx, tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Utilisateur", id))
		return
	}
	h.Success(c, user)
}
