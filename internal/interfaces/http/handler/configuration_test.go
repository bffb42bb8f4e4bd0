package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	settingsapp "github.com/mkboutique/backend/internal/application/settings"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupConfigurationRouter(service ConfigurationService) *gin.Engine {
	h := NewConfigurationHandler(service)
	r := gin.New()
	g := r.Group("/api/configurations", withTenant(testTenant))
	g.GET("", h.List)
	g.GET("/cle/:cle", h.GetByCle)
	g.POST("/validate-json", h.ValidateJSON)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func TestConfigurationHandler_GetByCle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		service := new(MockConfigurationService)
		service.On("GetByCle", mock.Anything, testTenant, "tarifs").
			Return(&settingsapp.ConfigurationResponse{IdConfiguration: 2, Cle: "tarifs", Data: `{"tva":20}`}, nil)

		rec := serve(setupConfigurationRouter(service), http.MethodGet, "/api/configurations/cle/tarifs", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"tva":20}`, decodeBody[settingsapp.ConfigurationResponse](t, rec).Data)
	})

	t.Run("missing", func(t *testing.T) {
		service := new(MockConfigurationService)
		service.On("GetByCle", mock.Anything, testTenant, "absente").Return(nil, shared.ErrNotFound)

		rec := serve(setupConfigurationRouter(service), http.MethodGet, "/api/configurations/cle/absente", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Configuration avec la clé 'absente' introuvable.", decodeBody[dto.ErrorResponse](t, rec).Message)
	})
}

func TestConfigurationHandler_ValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		data    string
		valid   bool
		message string
	}{
		{"valid object", `{"data":"{\"a\":1}"}`, `{"a":1}`, true, "Le JSON est valide."},
		{"truncated object", `{"data":"{\"a\":"}`, `{"a":`, false, "Le JSON est invalide."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockConfigurationService)
			service.On("ValidateJSON", tt.data).Return(tt.valid)

			rec := serve(setupConfigurationRouter(service), http.MethodPost, "/api/configurations/validate-json", tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			body := decodeBody[settingsapp.ValidateJSONResponse](t, rec)
			assert.Equal(t, tt.valid, body.IsValid)
			assert.Equal(t, tt.message, body.Message)
		})
	}

	t.Run("empty data", func(t *testing.T) {
		service := new(MockConfigurationService)

		for _, body := range []string{`{}`, `{"data":""}`} {
			rec := serve(setupConfigurationRouter(service), http.MethodPost, "/api/configurations/validate-json", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Le JSON à valider est requis.", decodeBody[dto.ErrorResponse](t, rec).Message)
		}
		service.AssertNotCalled(t, "ValidateJSON", mock.Anything)
	})
}

func TestConfigurationHandler_Create(t *testing.T) {
	service := new(MockConfigurationService)
	service.On("Create", mock.Anything, testTenant, mock.Anything).
		Return(nil, shared.NewAlreadyExistsError("Une configuration avec la clé 'tarifs' existe déjà."))

	rec := serve(setupConfigurationRouter(service), http.MethodPost, "/api/configurations", `{"cle":"tarifs","data":"{}"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, dto.ErrCodeAlreadyExists, decodeBody[dto.ErrorResponse](t, rec).Code)
}
