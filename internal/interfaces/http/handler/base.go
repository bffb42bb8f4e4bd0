package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/infrastructure/logger"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"github.com/mkboutique/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// internalErrorMessage is the only text a 500 ever carries
const internalErrorMessage = "Une erreur interne est survenue."

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// notFoundMessage formats the 404 body for an entity label
func notFoundMessage(label string, id int) string {
	return fmt.Sprintf("%s avec l'ID %d introuvable.", label, id)
}

// tenant returns the societe resolved by TenantRequired, answering 401 when absent
func (h *BaseHandler) tenant(c *gin.Context) (int, bool) {
	tc, ok := middleware.ResolveTenant(c)
	if !ok {
		h.Error(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, shared.ErrUnauthorized.Message)
		return 0, false
	}
	return tc.SocieteID, true
}

// pathID parses the positive integer id path parameter, answering 400 otherwise
func (h *BaseHandler) pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		h.BadRequest(c, "L'identifiant doit être un entier positif.")
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, answering 400 on failure
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// bindQuery binds query parameters, answering 400 on failure
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.HandleValidationError(c, err)
		return false
	}
	return true
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response pointing at the new resource
func (h *BaseHandler) Created(c *gin.Context, location string, data any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, data)
}

// Message sends a 200 response carrying only a message
func (h *BaseHandler) Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// Error sends an error response
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.AbortWithStatusJSON(statusCode, dto.NewErrorResponse(code, message))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// HandleDomainError maps a service error to a response. notFound replaces
// the message of a not-found error when not empty. Errors that are not
// domain errors are logged with the request logger and answered with a
// generic 500.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error, notFound string) {
	if err == nil {
		return
	}

	if notFound != "" && errors.Is(err, shared.ErrNotFound) {
		h.NotFound(c, notFound)
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		h.Error(c, dto.GetHTTPStatus(code), code, domainErr.Message)
		return
	}

	logger.GetGinLogger(c).Error("Unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	_ = c.Error(err)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, internalErrorMessage)
}
