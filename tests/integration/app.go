package integration

import (
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
	partnerapp "github.com/mkboutique/backend/internal/application/partner"
	rentalapp "github.com/mkboutique/backend/internal/application/rental"
	settingsapp "github.com/mkboutique/backend/internal/application/settings"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/mkboutique/backend/internal/infrastructure/config"
	"github.com/mkboutique/backend/internal/infrastructure/persistence"
	"github.com/mkboutique/backend/internal/interfaces/http/handler"
	"github.com/mkboutique/backend/internal/interfaces/http/middleware"
	"github.com/mkboutique/backend/internal/interfaces/http/router"
	"github.com/mkboutique/backend/tests/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	adminLogin    = "admin"
	adminPassword = "admin123"
)

// App is the fully wired HTTP stack over a test database
type App struct {
	Engine *gin.Engine
	JWT    *auth.JWTService
	DB     *persistence.Database
	Client *testutil.APIClient
}

// NewApp wires repositories, services and handlers the same way the server
// does, then seeds the default societe, roles and admin account.
func NewApp(t *testing.T, tdb *TestDB) *App {
	t.Helper()

	log := zap.NewNop()
	db := tdb.Database.DB

	societeRepo := persistence.NewGormSocieteRepository(db)
	roleRepo := persistence.NewGormRoleRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	categorieRepo := persistence.NewGormCategorieRepository(db)
	tailleRepo := persistence.NewGormTailleRepository(db)
	articleRepo := persistence.NewGormArticleRepository(db)
	clientRepo := persistence.NewGormClientRepository(db)
	reservationRepo := persistence.NewGormReservationRepository(db)
	paiementRepo := persistence.NewGormPaiementRepository(db)
	configurationRepo := persistence.NewGormConfigurationRepository(db)

	bootstrap := identityapp.NewBootstrapService(persistence.NewIdentityUnitOfWork(db), identityapp.BootstrapAdmin{
		Login:    adminLogin,
		Password: adminPassword,
	}, log)
	require.NoError(t, bootstrap.InitializeDefaultRoles(context.Background()))

	jwtService := auth.NewJWTService(testutil.TestJWTConfig())
	blacklist := auth.NewMemoryRevocations()

	engine := router.NewEngine(router.EngineOptions{
		Logger:         log,
		HTTP:           config.HTTPConfig{MaxBodySize: 1 << 20},
		Tracing:        middleware.TracingConfig{Enabled: false},
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		System:         handler.NewSystemHandler(tdb.Database, "integration"),
		Handlers: router.Handlers{
			Auth:       handler.NewAuthHandler(identityapp.NewAuthService(userRepo, jwtService, blacklist, log)),
			Articles:   handler.NewArticleHandler(catalogapp.NewArticleService(articleRepo, categorieRepo, tailleRepo)),
			Categories: handler.NewCategorieHandler(catalogapp.NewCategorieService(categorieRepo, articleRepo)),
			Tailles:    handler.NewTailleHandler(catalogapp.NewTailleService(tailleRepo)),
			Clients:    handler.NewClientHandler(partnerapp.NewClientService(clientRepo, partnerapp.UniqueScopeGlobal, log)),
			Reservations: handler.NewReservationHandler(
				rentalapp.NewReservationService(reservationRepo, paiementRepo, clientRepo, log),
			),
			Paiements: handler.NewPaiementHandler(
				rentalapp.NewPaiementService(paiementRepo, persistence.NewRentalUnitOfWork(db), log),
			),
			Configurations: handler.NewConfigurationHandler(settingsapp.NewConfigurationService(configurationRepo, log)),
			Roles:          handler.NewRoleHandler(identityapp.NewRoleService(roleRepo, userRepo, log)),
			Users: handler.NewUserHandler(
				identityapp.NewUserService(userRepo, roleRepo, log).WithRevocation(blacklist, time.Hour),
			),
			Societes: handler.NewSocieteHandler(identityapp.NewSocieteService(societeRepo, log)),
		},
	})

	return &App{
		Engine: engine,
		JWT:    jwtService,
		DB:     tdb.Database,
		Client: testutil.NewAPIClient(engine),
	}
}

// LoginAdmin authenticates the seeded admin and returns an authorized client
func (a *App) LoginAdmin(t *testing.T) *testutil.APIClient {
	t.Helper()

	rec := a.Client.Post(t, "/api/auth/login", map[string]string{
		"login":    adminLogin,
		"password": adminPassword,
	})
	testutil.RequireStatus(t, rec, 200)
	resp := testutil.DecodeJSON[identityapp.LoginResponse](t, rec)
	require.NotEmpty(t, resp.AccessToken)
	return a.Client.WithToken(resp.AccessToken)
}

// ClientForSociete inserts a bare societe and returns a client whose token
// is scoped to it
func (a *App) ClientForSociete(t *testing.T, nom string) (*testutil.APIClient, int) {
	t.Helper()

	var id int
	err := a.DB.DB.Raw(
		`INSERT INTO societes (nom_societe, actif) VALUES (?, TRUE) RETURNING id_societe`, nom,
	).Scan(&id).Error
	require.NoError(t, err)
	require.Positive(t, id)

	token := testutil.IssueAccessToken(t, a.JWT, auth.Identity{SocieteID: id, UserID: 1, Login: "autre"})
	return a.Client.WithToken(token), id
}
