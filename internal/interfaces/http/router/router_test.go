package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/infrastructure/config"
	"github.com/mkboutique/backend/internal/interfaces/http/handler"
	"github.com/mkboutique/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRouter_PublicAndProtectedGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		c.AbortWithStatus(http.StatusUnauthorized)
	})

	public := NewDomainGroup("open", "/open")
	public.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	closed := NewDomainGroup("closed", "/closed")
	closed.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	r.RegisterPublic(public).Register(closed)
	r.Setup()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/open/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/closed/ping", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_WithBasePath(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithBasePath("/v2"))
	g := NewDomainGroup("x", "/x")
	g.GET("", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.Register(g)
	r.Setup()

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/x", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

type recordingCRUD struct {
	calls []string
}

func (h *recordingCRUD) record(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.calls = append(h.calls, name+" "+c.Param("id"))
		c.Status(http.StatusOK)
	}
}

func (h *recordingCRUD) List(c *gin.Context)    { h.record("list")(c) }
func (h *recordingCRUD) GetByID(c *gin.Context) { h.record("get")(c) }
func (h *recordingCRUD) Create(c *gin.Context)  { h.record("create")(c) }
func (h *recordingCRUD) Update(c *gin.Context)  { h.record("update")(c) }
func (h *recordingCRUD) Delete(c *gin.Context)  { h.record("delete")(c) }

func TestDomainGroup_CRUD(t *testing.T) {
	engine := gin.New()
	h := &recordingCRUD{}
	g := NewDomainGroup("tailles", "/tailles").CRUD(h)
	assert.Equal(t, "tailles", g.Name())
	assert.Equal(t, "/tailles", g.Prefix())
	g.RegisterRoutes(engine.Group("/api"))

	requests := []struct{ method, path string }{
		{http.MethodGet, "/api/tailles"},
		{http.MethodGet, "/api/tailles/3"},
		{http.MethodPost, "/api/tailles"},
		{http.MethodPut, "/api/tailles/3"},
		{http.MethodDelete, "/api/tailles/3"},
	}
	for _, req := range requests {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(req.method, req.path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, req.method+" "+req.path)
	}
	assert.Equal(t, []string{"list ", "get 3", "create ", "update 3", "delete 3"}, h.calls)
}

func TestDomainGroup_SubgroupMiddleware(t *testing.T) {
	engine := gin.New()
	g := NewDomainGroup("parent", "/parent")
	sub := g.Group("child", "/child").Use(func(c *gin.Context) {
		c.Header("X-Child", "1")
		c.Next()
	})
	sub.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	g.RegisterRoutes(engine.Group("/api"))

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parent/child", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-Child"))
}

// stubArticles answers List with an empty catalogue for any tenant
type stubArticles struct {
	handler.ArticleService
	tenant int
}

func (s *stubArticles) List(_ context.Context, tenantID int, _ catalogapp.ArticleListFilter) ([]catalogapp.ArticleResponse, error) {
	s.tenant = tenantID
	return []catalogapp.ArticleResponse{}, nil
}

type stubAuth struct {
	handler.AuthService
}

func (stubAuth) Login(_ context.Context, req identityapp.LoginRequest) (*identityapp.LoginResponse, error) {
	return &identityapp.LoginResponse{User: identityapp.UserResponse{Login: req.Login}}, nil
}

type okPinger struct{}

func (okPinger) Ping() error { return nil }

func newTestEngine(t *testing.T, articles *stubArticles) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "mkboutique-test",
	})
	engine := NewEngine(EngineOptions{
		HTTP:           config.HTTPConfig{MaxBodySize: 1 << 20},
		Swagger:        config.SwaggerConfig{Enabled: false},
		Tracing:        middleware.TracingConfig{Enabled: false},
		Metrics:        middleware.NewHTTPMetrics("mkboutique_test"),
		JWTService:     jwtService,
		TokenBlacklist: auth.NewMemoryRevocations(),
		System:         handler.NewSystemHandler(okPinger{}, "test"),
		Handlers: Handlers{
			Auth:           handler.NewAuthHandler(stubAuth{}),
			Articles:       handler.NewArticleHandler(articles),
			Categories:     handler.NewCategorieHandler(nil),
			Tailles:        handler.NewTailleHandler(nil),
			Clients:        handler.NewClientHandler(nil),
			Reservations:   handler.NewReservationHandler(nil),
			Paiements:      handler.NewPaiementHandler(nil),
			Configurations: handler.NewConfigurationHandler(nil),
			Roles:          handler.NewRoleHandler(nil),
			Users:          handler.NewUserHandler(nil),
			Societes:       handler.NewSocieteHandler(nil),
		},
	})
	return engine, jwtService
}

func TestNewEngine_PublicEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t, &stubArticles{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mkboutique_test_http_requests_total")

	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"gerant","password":"secret1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewEngine_ProtectedRoutes(t *testing.T) {
	articles := &stubArticles{}
	engine, jwtService := newTestEngine(t, articles)

	t.Run("missing token", func(t *testing.T) {
		for _, path := range []string{"/api/articles", "/api/clients/1", "/api/auth/me", "/api/configurations/cle/x"} {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("tenant comes from the token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(auth.Identity{SocieteID: 4, UserID: 2, Login: "gerant", Role: "ADMIN"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
		req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
		req.Header.Set("X-Tenant-ID", "99")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		assert.Equal(t, 4, articles.tenant)
	})
}
