package handler

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	settingsapp "github.com/mkboutique/backend/internal/application/settings"
)

// ConfigurationService is the part of settingsapp.ConfigurationService the handler needs
type ConfigurationService interface {
	List(ctx context.Context, tenantID int) ([]settingsapp.ConfigurationResponse, error)
	GetByID(ctx context.Context, tenantID, id int) (*settingsapp.ConfigurationResponse, error)
	GetByCle(ctx context.Context, tenantID int, cle string) (*settingsapp.ConfigurationResponse, error)
	Create(ctx context.Context, tenantID int, req settingsapp.CreateConfigurationRequest) (*settingsapp.ConfigurationResponse, error)
	Update(ctx context.Context, tenantID, id int, req settingsapp.UpdateConfigurationRequest) (*settingsapp.ConfigurationResponse, error)
	Delete(ctx context.Context, tenantID, id int) (bool, error)
	ValidateJSON(data string) bool
}

// ConfigurationHandler handles configuration endpoints
type ConfigurationHandler struct {
	BaseHandler
	service ConfigurationService
}

// NewConfigurationHandler creates a new ConfigurationHandler
func NewConfigurationHandler(service ConfigurationService) *ConfigurationHandler {
	return &ConfigurationHandler{service: service}
}

// List godoc
// @Summary      List configurations
// @Tags         configurations
// @Produce      json
// @Success      200 {array}  settingsapp.ConfigurationResponse
// @Security     BearerAuth
// @Router       /configurations [get]
func (h *ConfigurationHandler) List(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	configurations, err := h.service.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Success(c, configurations)
}

// GetByID godoc
// @Summary      Get a configuration
// @Tags         configurations
// @Produce      json
// @Param        id path int true "Configuration ID"
// @Success      200 {object} settingsapp.ConfigurationResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /configurations/{id} [get]
func (h *ConfigurationHandler) GetByID(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	configuration, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Configuration", id))
		return
	}
	h.Success(c, configuration)
}

// GetByCle godoc
// @Summary      Get a configuration by key
// @Tags         configurations
// @Produce      json
// @Param        cle path string true "Configuration key"
// @Success      200 {object} settingsapp.ConfigurationResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /configurations/cle/{cle} [get]
func (h *ConfigurationHandler) GetByCle(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	cle := c.Param("cle")
	configuration, err := h.service.GetByCle(c.Request.Context(), tenantID, cle)
	if err != nil {
		h.HandleDomainError(c, err, fmt.Sprintf("Configuration avec la clé '%s' introuvable.", cle))
		return
	}
	h.Success(c, configuration)
}

// Create godoc
// @Summary      Create a configuration
// @Description  data must be valid JSON when present.
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body settingsapp.CreateConfigurationRequest true "Configuration"
// @Success      201 {object} settingsapp.ConfigurationResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /configurations [post]
func (h *ConfigurationHandler) Create(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	var req settingsapp.CreateConfigurationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	configuration, err := h.service.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleDomainError(c, err, "")
		return
	}
	h.Created(c, fmt.Sprintf("/api/configurations/%d", configuration.IdConfiguration), configuration)
}

// Update godoc
// @Summary      Update a configuration
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        id path int true "Configuration ID"
// @Param        request body settingsapp.UpdateConfigurationRequest true "Fields to change"
// @Success      200 {object} settingsapp.ConfigurationResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /configurations/{id} [put]
func (h *ConfigurationHandler) Update(c *gin.Context) {
	tenantID, ok := h.tenant(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req settingsapp.UpdateConfigurationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	configuration, err := h.service.Update(c.Request.Context(), tenantID, id, req)
	if err != nil {
		h.HandleDomainError(c, err, notFoundMessage("Configuration", id))
		return
	}
	h.Success(c, configuration)
}

// Delete godoc
// @Summary      Delete a configuration
// @Tags         configurations
// @Produce      json
// @Param        id path int true "Configuration ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /configurations/{id} [delete]
func (h *ConfigurationHandler) Delete(c *gin.Context) {
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
		h.HandleDomainError(c, err, notFoundMessage("Configuration", id))
		return
	}
	if !deleted {
		h.NotFound(c, notFoundMessage("Configuration", id))
		return
	}
	h.Message(c, "Configuration supprimée avec succès.")
}

// ValidateJSON godoc
// @Summary      Check that a document is valid JSON
// @Tags         configurations
// @Accept       json
// @Produce      json
// @Param        request body settingsapp.ValidateJSONRequest true "Document"
// @Success      200 {object} settingsapp.ValidateJSONResponse
// @Failure      400 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /configurations/validate-json [post]
func (h *ConfigurationHandler) ValidateJSON(c *gin.Context) {
	var req settingsapp.ValidateJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Data == "" {
		h.BadRequest(c, "Le JSON à valider est requis.")
		return
	}

	resp := settingsapp.ValidateJSONResponse{IsValid: h.service.ValidateJSON(req.Data)}
	if resp.IsValid {
		resp.Message = "Le JSON est valide."
	} else {
		resp.Message = "Le JSON est invalide."
	}
	h.Success(c, resp)
}
