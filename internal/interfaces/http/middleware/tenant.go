package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// TenantContextKey holds the resolved TenantContext in gin.Context
const TenantContextKey = "tenant_context"

// TenantContext is the caller's societe and user, taken from the access token
type TenantContext struct {
	SocieteID int
	UserID    int
	Login     string
}

// ResolveTenant reads the tenant from the JWT claims. The tenant is never
// taken from a header or the request body.
func ResolveTenant(c *gin.Context) (TenantContext, bool) {
	if v, exists := c.Get(TenantContextKey); exists {
		if tc, ok := v.(TenantContext); ok {
			return tc, true
		}
	}

	claims := GetJWTClaims(c)
	if claims == nil || claims.SocieteID <= 0 {
		return TenantContext{}, false
	}
	return TenantContext{
		SocieteID: claims.SocieteID,
		UserID:    claims.UserID,
		Login:     claims.Login,
	}, true
}

// TenantRequired aborts with 401 when no tenant can be resolved.
// It must run after the JWT middleware.
func TenantRequired(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tc, ok := ResolveTenant(c)
		if !ok {
			if log != nil {
				log.Warn("Request without tenant",
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
				)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, shared.ErrUnauthorized.Message))
			return
		}
		c.Set(TenantContextKey, tc)
		c.Next()
	}
}

// GetTenantID returns the resolved societe id, or 0
func GetTenantID(c *gin.Context) int {
	tc, _ := ResolveTenant(c)
	return tc.SocieteID
}
