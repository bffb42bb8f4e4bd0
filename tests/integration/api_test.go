package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
	partnerapp "github.com/mkboutique/backend/internal/application/partner"
	rentalapp "github.com/mkboutique/backend/internal/application/rental"
	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/interfaces/http/dto"
	"github.com/mkboutique/backend/tests/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCatalog creates one categorie, one taille and one article
func seedCatalog(t *testing.T, api *testutil.APIClient) catalogapp.ArticleResponse {
	t.Helper()

	rec := api.Post(t, "/api/categories", map[string]any{"nomCategorie": "Caftans", "ordreAffichage": 1})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	categorie := testutil.DecodeJSON[catalogapp.CategorieResponse](t, rec)

	rec = api.Post(t, "/api/tailles", map[string]any{"taille": "M"})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	taille := testutil.DecodeJSON[catalogapp.TailleResponse](t, rec)

	rec = api.Post(t, "/api/articles", map[string]any{
		"nomArticle":       "Takchita brodée",
		"prixLocationBase": "1200.00",
		"prixAvanceBase":   "400.00",
		"idTaille":         taille.IdTaille,
		"idCategorie":      categorie.IdCategorie,
		"couleur":          "Émeraude",
	})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	return testutil.DecodeJSON[catalogapp.ArticleResponse](t, rec)
}

func seedClient(t *testing.T, api *testutil.APIClient, telephone string) partnerapp.ClientResponse {
	t.Helper()

	rec := api.Post(t, "/api/clients", map[string]any{
		"nomClient":    "Bennani",
		"prenomClient": "Salma",
		"telephone":    telephone,
	})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	return testutil.DecodeJSON[partnerapp.ClientResponse](t, rec)
}

func TestAPI_RentalLifecycle(t *testing.T) {
	tdb := NewTestDB(t)
	app := NewApp(t, tdb)
	api := app.LoginAdmin(t)

	rec := api.Get(t, "/api/auth/me")
	testutil.RequireStatus(t, rec, http.StatusOK)
	me := testutil.DecodeJSON[identityapp.UserResponse](t, rec)
	assert.Equal(t, adminLogin, me.Login)

	article := seedCatalog(t, api)
	assert.True(t, article.Actif)
	require.NotNil(t, article.Taille)
	assert.Equal(t, "M", article.Taille.Taille)
	assert.True(t, decimal.RequireFromString("1200").Equal(article.PrixLocationBase))

	client := seedClient(t, api, "0612345678")

	debut := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	rec = api.Post(t, "/api/reservations", map[string]any{
		"idClient":     client.IdClient,
		"dateDebut":    debut,
		"dateFin":      debut.AddDate(0, 0, 3),
		"montantTotal": "1200.00",
	})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	reservation := testutil.DecodeJSON[rentalapp.ReservationResponse](t, rec)
	assert.Equal(t, rental.StatutEnAttente, reservation.StatutReservation)
	assert.Nil(t, reservation.IdPaiement)

	rec = api.Post(t, "/api/paiements", map[string]any{
		"idReservation":   reservation.IdReservation,
		"montant":         "1200.00",
		"methodePaiement": "Espèces",
	})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	paiement := testutil.DecodeJSON[rentalapp.PaiementResponse](t, rec)

	reservationPath := fmt.Sprintf("/api/reservations/%d", reservation.IdReservation)
	rec = api.Get(t, reservationPath)
	testutil.RequireStatus(t, rec, http.StatusOK)
	reservation = testutil.DecodeJSON[rentalapp.ReservationResponse](t, rec)
	require.NotNil(t, reservation.IdPaiement)
	assert.Equal(t, paiement.IdPaiement, *reservation.IdPaiement)

	// a second paiement for the same reservation is refused
	rec = api.Post(t, "/api/paiements", map[string]any{
		"idReservation": reservation.IdReservation,
		"montant":       "100.00",
	})
	testutil.AssertErrorResponse(t, rec, http.StatusConflict, dto.ErrCodeAlreadyExists)

	// the paiement has to be deleted before the reference can be dropped
	rec = api.Put(t, reservationPath, map[string]any{"idPaiement": nil})
	testutil.AssertErrorResponse(t, rec, http.StatusConflict, dto.ErrCodeConflict)

	rec = api.Patch(t, reservationPath+"/statut", map[string]any{"statut": rental.StatutConfirmee})
	testutil.RequireStatus(t, rec, http.StatusOK)
	rec = api.Get(t, reservationPath)
	reservation = testutil.DecodeJSON[rentalapp.ReservationResponse](t, rec)
	assert.Equal(t, rental.StatutConfirmee, reservation.StatutReservation)

	rec = api.Delete(t, fmt.Sprintf("/api/paiements/%d", paiement.IdPaiement))
	testutil.RequireStatus(t, rec, http.StatusOK)
	rec = api.Get(t, reservationPath)
	reservation = testutil.DecodeJSON[rentalapp.ReservationResponse](t, rec)
	assert.Nil(t, reservation.IdPaiement)

	rec = api.Post(t, "/api/auth/logout", nil)
	testutil.RequireStatus(t, rec, http.StatusOK)
	testutil.AssertErrorResponse(t, api.Get(t, "/api/auth/me"), http.StatusUnauthorized, dto.ErrCodeTokenRevoked)
}

func TestAPI_Validation(t *testing.T) {
	tdb := NewTestDB(t)
	app := NewApp(t, tdb)
	api := app.LoginAdmin(t)
	client := seedClient(t, api, "0600000001")

	debut := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rec := api.Post(t, "/api/reservations", map[string]any{
		"idClient":  client.IdClient,
		"dateDebut": debut,
		"dateFin":   debut.AddDate(0, 0, -1),
	})
	testutil.AssertErrorResponse(t, rec, http.StatusBadRequest, dto.ErrCodeValidation)

	rec = api.Post(t, "/api/clients", map[string]any{
		"nomClient":    "Alaoui",
		"prenomClient": "Nadia",
		"telephone":    "0600000001",
	})
	testutil.AssertErrorResponse(t, rec, http.StatusConflict, dto.ErrCodeAlreadyExists)

	testutil.AssertErrorResponse(t, api.Get(t, "/api/articles/9999"), http.StatusNotFound, dto.ErrCodeNotFound)
	testutil.AssertErrorResponse(t, app.Client.Get(t, "/api/articles"), http.StatusUnauthorized, dto.ErrCodeUnauthorized)

	rec = app.Client.Post(t, "/api/auth/login", map[string]string{"login": adminLogin, "password": "wrong-password"})
	testutil.AssertErrorResponse(t, rec, http.StatusUnauthorized, dto.ErrCodeInvalidCredentials)
}

func TestAPI_TenantIsolation(t *testing.T) {
	tdb := NewTestDB(t)
	app := NewApp(t, tdb)
	admin := app.LoginAdmin(t)
	article := seedCatalog(t, admin)

	other, otherID := app.ClientForSociete(t, "Boutique Fès")

	rec := other.Get(t, "/api/articles")
	testutil.RequireStatus(t, rec, http.StatusOK)
	assert.Empty(t, testutil.DecodeJSON[[]catalogapp.ArticleResponse](t, rec))

	path := fmt.Sprintf("/api/articles/%d", article.IdArticle)
	testutil.AssertErrorResponse(t, other.Get(t, path), http.StatusNotFound, dto.ErrCodeNotFound)
	testutil.AssertErrorResponse(t, other.Delete(t, path), http.StatusNotFound, dto.ErrCodeNotFound)

	// the same categorie name is free in another societe
	rec = other.Post(t, "/api/categories", map[string]any{"nomCategorie": "Caftans"})
	testutil.RequireStatus(t, rec, http.StatusCreated)
	categorie := testutil.DecodeJSON[catalogapp.CategorieResponse](t, rec)
	assert.Equal(t, otherID, categorie.IdSociete)

	rec = admin.Get(t, path)
	testutil.RequireStatus(t, rec, http.StatusOK)
}

func TestAPI_Health(t *testing.T) {
	tdb := NewTestDB(t)
	app := NewApp(t, tdb)

	rec := app.Client.Get(t, "/health")
	testutil.RequireStatus(t, rec, http.StatusOK)
	health := testutil.DecodeJSON[dto.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Database)
	assert.Equal(t, "integration", health.Version)
}
