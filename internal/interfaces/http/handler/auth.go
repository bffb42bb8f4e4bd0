package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"github.com/mkboutique/backend/internal/interfaces/http/middleware"
)

// AuthService is the part of identityapp.AuthService the handler needs
type AuthService interface {
	Login(ctx context.Context, req identityapp.LoginRequest) (*identityapp.LoginResponse, error)
	Refresh(ctx context.Context, req identityapp.RefreshRequest) (*auth.TokenPair, error)
	Logout(ctx context.Context, claims *auth.Claims, req identityapp.LogoutRequest) error
	Me(ctx context.Context, claims *auth.Claims) (*identityapp.UserResponse, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	service AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login godoc
// @Summary      Log in
// @Description  Issues an access and refresh token pair carrying the user's societe.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.LoginRequest true "Credentials"
// @Success      200 {object} identityapp.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, resp)
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  The refresh token is single use.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.RefreshRequest true "Refresh token"
// @Success      200 {object} auth.TokenPair
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req identityapp.RefreshRequest
	if !h.bindJSON(c, &req) {
		return
	}
	pair, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, pair)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the access token and, when given, the refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.LogoutRequest false "Refresh token to revoke"
// @Success      200 {object} dto.MessageResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, shared.ErrUnauthorized.Message)
		return
	}

	var req identityapp.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		middleware.HandleValidationError(c, err)
		return
	}
	if err := h.service.Logout(c.Request.Context(), claims, req); err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Message(c, "Déconnexion réussie.")
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200 {object} identityapp.UserResponse
// @Failure      401 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, shared.ErrUnauthorized.Message)
		return
	}
	user, err := h.service.Me(c.Request.Context(), claims)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, user)
}
