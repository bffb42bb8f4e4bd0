package identity

import (
	"context"
	"errors"
	"time"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// UserService handles user operations. A user belongs to the societe of its role.
type UserService struct {
	userRepo identity.UserRepository
	roleRepo identity.RoleRepository
	logger   *zap.Logger

	revocations   auth.TokenBlacklist
	revocationTTL time.Duration
}

// NewUserService creates a new user service
func NewUserService(
	userRepo identity.UserRepository,
	roleRepo identity.RoleRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		logger:   logger,
	}
}

// WithRevocation makes deactivation, deletion and password changes cut the
// user's outstanding tokens. ttl should cover the refresh token lifetime.
func (s *UserService) WithRevocation(revocations auth.TokenBlacklist, ttl time.Duration) *UserService {
	s.revocations = revocations
	s.revocationTTL = ttl
	return s
}

// List returns the societe's users ordered by name
func (s *UserService) List(ctx context.Context, tenantID int, filter UserListFilter) ([]UserResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindAllForSociete(ctx, tenantID, identity.UserFilter{
		RoleID:          filter.IdRole,
		IncludeInactive: filter.IncludeInactive,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// GetByID retrieves a user of the societe
func (s *UserService) GetByID(ctx context.Context, tenantID, id int) (*UserResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Create creates a user in one of the societe's roles
func (s *UserService) Create(ctx context.Context, tenantID int, req CreateUserRequest) (*UserResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	role, err := s.roleInSociete(ctx, tenantID, req.IdRole)
	if err != nil {
		return nil, err
	}

	user, err := identity.NewUser(role.ID, req.Login, req.Password, req.NomComplet)
	if err != nil {
		return nil, err
	}
	user.Email = shared.NormalizeOptional(req.Email)
	user.Telephone = shared.NormalizeOptional(req.Telephone)
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueLogin(ctx, user.Login, 0); err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, err
	}
	user.Role = role

	s.logger.Info("User created",
		zap.Int("id_utilisateur", user.ID),
		zap.String("login", user.Login),
		zap.Int("id_societe", tenantID),
	)
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update applies the present fields of req. The role may only move within the societe.
func (s *UserService) Update(ctx context.Context, tenantID, id int, req UpdateUserRequest) (*UserResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.IdRole != nil && *req.IdRole != user.RoleID {
		role, err := s.roleInSociete(ctx, tenantID, *req.IdRole)
		if err != nil {
			return nil, err
		}
		user.RoleID, user.Role = role.ID, role
	}
	if req.Login != nil {
		login := identity.NormalizeLogin(*req.Login)
		if login != user.Login {
			if err := s.ensureUniqueLogin(ctx, login, user.ID); err != nil {
				return nil, err
			}
		}
		user.Login = login
	}
	if req.NomComplet != nil {
		user.NomComplet = shared.NormalizeText(*req.NomComplet)
	}
	if req.Email != nil {
		user.Email = shared.NormalizeOptional(req.Email)
	}
	if req.Telephone != nil {
		user.Telephone = shared.NormalizeOptional(req.Telephone)
	}
	wasActive := user.Actif
	if req.Actif != nil {
		user.Actif = *req.Actif
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	if req.Password != nil || (wasActive && !user.Actif) {
		s.revokeSessions(ctx, user.ID)
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes a user of the societe
func (s *UserService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	if err := s.userRepo.DeleteForSociete(ctx, tenantID, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("User deleted", zap.Int("id_utilisateur", id), zap.Int("id_societe", tenantID))
	s.revokeSessions(ctx, id)
	return true, nil
}

// ToggleActive flips the user's active flag
func (s *UserService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	user, err := s.userRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	user.ToggleActive()
	if err := s.userRepo.Save(ctx, user); err != nil {
		return false, err
	}
	if !user.Actif {
		s.revokeSessions(ctx, user.ID)
	}
	return true, nil
}

// revokeSessions logs revocation failures without failing the caller
func (s *UserService) revokeSessions(ctx context.Context, userID int) {
	if s.revocations == nil {
		return
	}
	if err := s.revocations.RevokeUser(ctx, userID, s.revocationTTL); err != nil {
		s.logger.Warn("Failed to revoke user tokens", zap.Int("id_utilisateur", userID), zap.Error(err))
	}
}

func (s *UserService) roleInSociete(ctx context.Context, tenantID, roleID int) (*identity.Role, error) {
	role, err := s.roleRepo.FindByIDForSociete(ctx, tenantID, roleID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("Le rôle avec l'ID %d n'existe pas pour cette société.", roleID)
		}
		return nil, err
	}
	return role, nil
}

func (s *UserService) ensureUniqueLogin(ctx context.Context, login string, excludeID int) error {
	exists, err := s.userRepo.ExistsByLogin(ctx, login, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Un utilisateur avec le login '%s' existe déjà.", login)
	}
	return nil
}
