package identity

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// RoleService handles role operations
type RoleService struct {
	roleRepo identity.RoleRepository
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewRoleService creates a new role service
func NewRoleService(
	roleRepo identity.RoleRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// List returns the societe's roles ordered by name
func (s *RoleService) List(ctx context.Context, tenantID int, filter ActiveFilter) ([]RoleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	roles, err := s.roleRepo.FindAllForSociete(ctx, tenantID, filter.IncludeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]RoleResponse, len(roles))
	for i := range roles {
		out[i] = ToRoleResponse(&roles[i])
	}
	return out, nil
}

// GetByID retrieves a role of the societe
func (s *RoleService) GetByID(ctx context.Context, tenantID, id int) (*RoleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Create creates a role whose name is unique within the societe
func (s *RoleService) Create(ctx context.Context, tenantID int, req CreateRoleRequest) (*RoleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	role, err := identity.NewRole(tenantID, req.NomRole, req.Description)
	if err != nil {
		return nil, err
	}
	if req.Actif != nil {
		role.Actif = *req.Actif
	}
	if err := s.ensureUniqueName(ctx, tenantID, role.NomRole, 0); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		s.logger.Error("Failed to create role", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Role created",
		zap.Int("id_role", role.ID),
		zap.String("nom_role", role.NomRole),
		zap.Int("id_societe", tenantID),
	)
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Update applies the present fields of req
func (s *RoleService) Update(ctx context.Context, tenantID, id int, req UpdateRoleRequest) (*RoleResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	role, err := s.roleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.NomRole != nil {
		nom := shared.NormalizeText(*req.NomRole)
		if nom != role.NomRole {
			if err := s.ensureUniqueName(ctx, tenantID, nom, role.ID); err != nil {
				return nil, err
			}
		}
		role.NomRole = nom
	}
	if req.Description != nil {
		role.Description = shared.NormalizeOptional(req.Description)
	}
	if req.Actif != nil {
		role.Actif = *req.Actif
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	if err := s.roleRepo.Save(ctx, role); err != nil {
		return nil, err
	}
	resp := ToRoleResponse(role)
	return &resp, nil
}

// Delete removes a role no user holds
func (s *RoleService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	role, err := s.roleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	count, err := s.roleRepo.CountUsers(ctx, role.ID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, shared.NewConflictError(
			"Le rôle '%s' ne peut pas être supprimé car il est utilisé par %d utilisateur(s).", role.NomRole, count)
	}

	if err := s.roleRepo.DeleteForSociete(ctx, tenantID, role.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("Role deleted", zap.Int("id_role", role.ID), zap.Int("id_societe", tenantID))
	return true, nil
}

// ToggleActive flips the role's active flag
func (s *RoleService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	role, err := s.roleRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	role.ToggleActive()
	if err := s.roleRepo.Save(ctx, role); err != nil {
		return false, err
	}
	return true, nil
}

// ListUsers returns the users holding a role of the societe
func (s *RoleService) ListUsers(ctx context.Context, tenantID, roleID int) ([]UserResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	if _, err := s.roleRepo.FindByIDForSociete(ctx, tenantID, roleID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Rôle avec l'ID %d introuvable.", roleID)
		}
		return nil, err
	}
	users, err := s.userRepo.FindAllForSociete(ctx, tenantID, identity.UserFilter{
		RoleID:          &roleID,
		IncludeInactive: true,
	})
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *RoleService) ensureUniqueName(ctx context.Context, tenantID int, nom string, excludeID int) error {
	exists, err := s.roleRepo.ExistsByName(ctx, tenantID, nom, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Un rôle avec le nom '%s' existe déjà dans cette société.", nom)
	}
	return nil
}
