package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolveTenant(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.Claims
		want   TenantContext
		wantOK bool
	}{
		{"unauthenticated", nil, TenantContext{}, false},
		{"zero societe", &auth.Claims{UserID: 3}, TenantContext{}, false},
		{"negative societe", &auth.Claims{SocieteID: -1, UserID: 3}, TenantContext{}, false},
		{"valid", &auth.Claims{SocieteID: 7, UserID: 3, Login: "amina"}, TenantContext{SocieteID: 7, UserID: 3, Login: "amina"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			if tt.claims != nil {
				c.Set(JWTClaimsKey, tt.claims)
			}
			got, ok := ResolveTenant(c)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTenantRequired(t *testing.T) {
	newRouter := func(claims *auth.Claims) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if claims != nil {
				c.Set(JWTClaimsKey, claims)
			}
			c.Next()
		})
		router.Use(TenantRequired(zap.NewNop()))
		router.GET("/api/articles", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"tenant": GetTenantID(c)})
		})
		return router
	}

	t.Run("aborts without claims", func(t *testing.T) {
		called := false
		router := gin.New()
		router.Use(TenantRequired(zap.NewNop()))
		router.GET("/api/articles", func(c *gin.Context) { called = true })

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
		body := decodeError(t, rec)
		assert.Equal(t, dto.ErrCodeUnauthorized, body.Code)
		assert.Equal(t, shared.ErrUnauthorized.Message, body.Message)
	})

	t.Run("header is ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("X-Tenant-ID", "7")
		rec := httptest.NewRecorder()
		newRouter(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("passes the tenant", func(t *testing.T) {
		rec := httptest.NewRecorder()
		newRouter(&auth.Claims{SocieteID: 7, UserID: 3}).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"tenant":7}`, rec.Body.String())
	})
}
