package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/infrastructure/logger"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWTClaimsKey is where the validated claims live on the gin context
const JWTClaimsKey = "jwt_claims"

const (
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// ErrMissingToken is reported when no bearer token accompanies the request
var ErrMissingToken = errors.New("missing bearer token")

// JWTMiddlewareConfig configures JWTAuthMiddlewareWithConfig. Only JWTService is required.
type JWTMiddlewareConfig struct {
	JWTService     *auth.JWTService
	TokenBlacklist auth.TokenBlacklist

	// Public routes: exact paths and path prefixes
	SkipPaths        []string
	SkipPathPrefixes []string

	// OnError replaces the default 401 response
	OnError func(c *gin.Context, err error)
	Logger  *zap.Logger
}

// DefaultJWTConfig leaves health, metrics, swagger, login and refresh public
func DefaultJWTConfig(jwtService *auth.JWTService) JWTMiddlewareConfig {
	return JWTMiddlewareConfig{
		JWTService:       jwtService,
		SkipPaths:        []string{"/health", "/metrics", "/api/auth/login", "/api/auth/refresh"},
		SkipPathPrefixes: []string{"/swagger"},
	}
}

// JWTAuthMiddleware authenticates with DefaultJWTConfig
func JWTAuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return JWTAuthMiddlewareWithConfig(DefaultJWTConfig(jwtService))
}

// JWTAuthMiddlewareWithConfig validates the bearer access token, rejects
// revoked tokens and stores the claims for downstream handlers.
func JWTAuthMiddlewareWithConfig(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	public := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		public[p] = struct{}{}
	}
	isPublic := func(path string) bool {
		if _, ok := public[path]; ok {
			return true
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				return true
			}
		}
		return false
	}

	return func(c *gin.Context) {
		if isPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			rejectToken(c, cfg, log, ErrMissingToken)
			return
		}
		claims, err := cfg.JWTService.ValidateAccessToken(token)
		if err != nil {
			rejectToken(c, cfg, log, err)
			return
		}
		if isRevoked(c, cfg.TokenBlacklist, log, claims) {
			rejectToken(c, cfg, log, auth.ErrTokenBlacklisted)
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// isRevoked consults the revocation store. Store failures are logged and the
// token is accepted.
func isRevoked(c *gin.Context, revocations auth.TokenBlacklist, log *zap.Logger, claims *auth.Claims) bool {
	if revocations == nil {
		return false
	}
	ctx := c.Request.Context()

	revoked, err := revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.Error("Revocation lookup failed", zap.String("jti", claims.ID), zap.Error(err))
	} else if revoked {
		return true
	}

	revoked, err = revocations.IsUserRevoked(ctx, claims.UserID, claims.GetIssuedAtTime())
	if err != nil {
		log.Error("User revocation lookup failed", zap.Int("user_id", claims.UserID), zap.Error(err))
		return false
	}
	return revoked
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	return token, token != ""
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(JWTClaimsKey, claims)

	// The request logger reads the identity back after the handler ran.
	ctx := logger.WithIdentity(c.Request.Context(), claims.SocieteID, claims.UserID)
	ctx = logger.WithContext(ctx, logger.FromContext(ctx).With(
		zap.Int("societe_id", claims.SocieteID),
		zap.Int("user_id", claims.UserID),
	))
	c.Request = c.Request.WithContext(ctx)
}

type authFailure struct {
	code    string
	message string
}

var (
	failureUnauthenticated = authFailure{dto.ErrCodeUnauthorized, "Authentification requise."}
	failureExpired         = authFailure{dto.ErrCodeTokenExpired, "Le jeton a expiré. Veuillez vous reconnecter."}
	failureRevoked         = authFailure{dto.ErrCodeTokenRevoked, "Le jeton a été révoqué. Veuillez vous reconnecter."}
	failureInvalid         = authFailure{dto.ErrCodeTokenInvalid, "Jeton invalide."}
)

func classifyAuthError(err error) authFailure {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return failureExpired
	case errors.Is(err, auth.ErrTokenBlacklisted):
		return failureRevoked
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingSocieteID),
		errors.Is(err, auth.ErrMissingUserID):
		return failureInvalid
	default:
		return failureUnauthenticated
	}
}

func rejectToken(c *gin.Context, cfg JWTMiddlewareConfig, log *zap.Logger, err error) {
	if cfg.OnError != nil {
		cfg.OnError(c, err)
		return
	}
	failure := classifyAuthError(err)
	log.Warn("Request rejected by JWT middleware",
		zap.String("path", c.Request.URL.Path),
		zap.String("code", failure.code),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(failure.code, failure.message))
}

// GetJWTClaims returns the claims stored by the middleware, or nil
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(JWTClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetJWTUserID returns the authenticated user id, zero when unauthenticated
func GetJWTUserID(c *gin.Context) int {
	if claims := GetJWTClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}

// GetJWTRole returns the authenticated role name
func GetJWTRole(c *gin.Context) string {
	if claims := GetJWTClaims(c); claims != nil {
		return claims.Role
	}
	return ""
}
