package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DefaultSocieteName names the societe created on an empty database
const DefaultSocieteName = "Société Par Défaut"

// BootstrapAdmin is the optional first account. Empty Login or Password disables it.
type BootstrapAdmin struct {
	Login    string
	Password string
	Name     string
}

func (a BootstrapAdmin) enabled() bool {
	return a.Login != "" && a.Password != ""
}

// BootstrapService seeds the data a fresh installation needs
type BootstrapService struct {
	uow    identity.UnitOfWork
	admin  BootstrapAdmin
	logger *zap.Logger
}

// NewBootstrapService creates a new BootstrapService
func NewBootstrapService(uow identity.UnitOfWork, admin BootstrapAdmin, logger *zap.Logger) *BootstrapService {
	return &BootstrapService{uow: uow, admin: admin, logger: logger}
}

// InitializeDefaultRoles creates the default societe and roles when no role
// exists yet, then the admin account when configured and no user exists.
// Running it again on a seeded database changes nothing.
func (s *BootstrapService) InitializeDefaultRoles(ctx context.Context) error {
	return s.uow.Do(ctx, func(repos identity.Repositories) error {
		roleCount, err := repos.Roles.Count(ctx)
		if err != nil {
			return fmt.Errorf("count roles: %w", err)
		}
		if roleCount == 0 {
			if err := s.seedRoles(ctx, repos); err != nil {
				return err
			}
		}
		if !s.admin.enabled() {
			return nil
		}
		return s.seedAdmin(ctx, repos)
	})
}

func (s *BootstrapService) seedRoles(ctx context.Context, repos identity.Repositories) error {
	societe, err := s.firstSociete(ctx, repos)
	if err != nil {
		return err
	}

	for _, def := range identity.DefaultRoles() {
		role, err := identity.NewRole(societe.ID, def.Nom, shared.StringPtr(def.Description))
		if err != nil {
			return err
		}
		if err := repos.Roles.Save(ctx, role); err != nil {
			return fmt.Errorf("create role %s: %w", def.Nom, err)
		}
	}

	s.logger.Info("Default roles created",
		zap.Int("id_societe", societe.ID),
		zap.Int("count", len(identity.DefaultRoles())),
	)
	return nil
}

func (s *BootstrapService) firstSociete(ctx context.Context, repos identity.Repositories) (*identity.Societe, error) {
	societe, err := repos.Societes.FindFirst(ctx)
	if err == nil {
		return societe, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, fmt.Errorf("find societe: %w", err)
	}

	societe, err = identity.NewSociete(DefaultSocieteName, identity.SocieteDetails{})
	if err != nil {
		return nil, err
	}
	if err := repos.Societes.Save(ctx, societe); err != nil {
		return nil, fmt.Errorf("create default societe: %w", err)
	}
	s.logger.Info("Default societe created", zap.Int("id_societe", societe.ID))
	return societe, nil
}

func (s *BootstrapService) seedAdmin(ctx context.Context, repos identity.Repositories) error {
	userCount, err := repos.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		return nil
	}

	societe, err := repos.Societes.FindFirst(ctx)
	if err != nil {
		return fmt.Errorf("find societe: %w", err)
	}
	role, err := repos.Roles.FindByName(ctx, societe.ID, identity.RoleAdmin)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("No ADMIN role in the first societe, skipping admin account",
				zap.Int("id_societe", societe.ID))
			return nil
		}
		return fmt.Errorf("find admin role: %w", err)
	}

	name := s.admin.Name
	if name == "" {
		name = "Administrateur"
	}
	user, err := identity.NewUser(role.ID, s.admin.Login, s.admin.Password, name)
	if err != nil {
		return err
	}
	if err := repos.Users.Save(ctx, user); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	s.logger.Info("Admin account created",
		zap.String("login", user.Login),
		zap.Int("id_societe", societe.ID),
	)
	return nil
}
