package router

import (
	"github.com/mkboutique/backend/internal/interfaces/http/handler"
)

// Handlers groups the HTTP handlers mounted under /api
type Handlers struct {
	Auth           *handler.AuthHandler
	Articles       *handler.ArticleHandler
	Categories     *handler.CategorieHandler
	Tailles        *handler.TailleHandler
	Clients        *handler.ClientHandler
	Reservations   *handler.ReservationHandler
	Paiements      *handler.PaiementHandler
	Configurations *handler.ConfigurationHandler
	Roles          *handler.RoleHandler
	Users          *handler.UserHandler
	Societes       *handler.SocieteHandler
}

// RegisterAPI declares every /api route on r
func RegisterAPI(r *Router, h Handlers) {
	authPublic := NewDomainGroup("auth", "/auth")
	authPublic.POST("/login", h.Auth.Login)
	authPublic.POST("/refresh", h.Auth.Refresh)
	r.RegisterPublic(authPublic)

	authRoutes := NewDomainGroup("auth-session", "/auth")
	authRoutes.POST("/logout", h.Auth.Logout)
	authRoutes.GET("/me", h.Auth.Me)

	articles := NewDomainGroup("articles", "/articles").CRUD(h.Articles)
	articles.PATCH("/:id/actif", h.Articles.ToggleActive)

	categories := NewDomainGroup("categories", "/categories").CRUD(h.Categories)
	tailles := NewDomainGroup("tailles", "/tailles").CRUD(h.Tailles)

	clients := NewDomainGroup("clients", "/clients").CRUD(h.Clients)
	clients.PATCH("/:id/actif", h.Clients.ToggleActive)
	clients.PATCH("/:id/total-commandes", h.Clients.IncrementTotalCommandes)

	reservations := NewDomainGroup("reservations", "/reservations").CRUD(h.Reservations)
	reservations.PATCH("/:id/statut", h.Reservations.UpdateStatus)

	paiements := NewDomainGroup("paiements", "/paiements").CRUD(h.Paiements)

	configurations := NewDomainGroup("configurations", "/configurations")
	configurations.GET("/cle/:cle", h.Configurations.GetByCle)
	configurations.POST("/validate-json", h.Configurations.ValidateJSON)
	configurations.CRUD(h.Configurations)

	roles := NewDomainGroup("roles", "/roles").CRUD(h.Roles)
	roles.PATCH("/:id/actif", h.Roles.ToggleActive)
	roles.GET("/:id/users", h.Roles.ListUsers)

	users := NewDomainGroup("users", "/users").CRUD(h.Users)
	users.PATCH("/:id/actif", h.Users.ToggleActive)

	societes := NewDomainGroup("societes", "/societes").CRUD(h.Societes)
	societes.PATCH("/:id/actif", h.Societes.ToggleActive)

	r.Register(authRoutes).
		Register(articles).
		Register(categories).
		Register(tailles).
		Register(clients).
		Register(reservations).
		Register(paiements).
		Register(configurations).
		Register(roles).
		Register(users).
		Register(societes)
}
