package identity

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

var (
	errInvalidCredentials = shared.NewDomainError(shared.CodeInvalidCredentials, "Login ou mot de passe incorrect.")
	errAccountDisabled    = shared.NewDomainError(shared.CodeAccountDisabled, "Ce compte est désactivé.")
	errInvalidRefresh     = shared.NewDomainError(shared.CodeUnauthorized, "Jeton de rafraîchissement invalide ou expiré. Veuillez vous reconnecter.")
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	blacklist  auth.TokenBlacklist
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		blacklist:  blacklist,
		logger:     logger,
	}
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	login := identity.NormalizeLogin(req.Login)

	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown user", zap.String("login", login))
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !user.CheckPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("login", login))
		return nil, errInvalidCredentials
	}
	if err := s.ensureCanLogin(user); err != nil {
		s.logger.Warn("Login attempt for disabled account", zap.String("login", login))
		return nil, err
	}

	pair, err := s.jwtService.GenerateTokenPair(identityOf(user))
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.Int("id_utilisateur", user.ID),
		zap.Int("id_societe", user.SocieteID()),
	)
	return &LoginResponse{TokenPair: *pair, User: ToUserResponse(user)}, nil
}

// Refresh exchanges a refresh token for a new pair. The user is reloaded so
// a role change or deactivation takes effect, and the old token is revoked.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, errInvalidRefresh
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errInvalidRefresh
		}
		return nil, err
	}
	if err := s.ensureCanLogin(user); err != nil {
		return nil, err
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken, identityOf(user))
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Int("id_utilisateur", user.ID), zap.Error(err))
		return nil, errInvalidRefresh
	}

	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		s.logger.Error("Failed to revoke used refresh token", zap.Error(err))
	}
	return pair, nil
}

// Logout revokes the access token behind claims and, when given, the refresh token
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims, req LogoutRequest) error {
	if claims == nil {
		return shared.ErrUnauthorized
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
		return err
	}

	if req.RefreshToken != "" {
		refresh, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
		switch {
		case err != nil:
			s.logger.Debug("Ignoring unusable refresh token on logout", zap.Error(err))
		case refresh.UserID != claims.UserID:
			s.logger.Warn("Refresh token on logout belongs to another user",
				zap.Int("id_utilisateur", claims.UserID))
		default:
			if err := s.blacklist.Revoke(ctx, refresh.ID, refresh.GetRemainingTTL()); err != nil {
				return err
			}
		}
	}

	s.logger.Info("User logged out",
		zap.Int("id_utilisateur", claims.UserID),
		zap.Int("id_societe", claims.SocieteID),
	)
	return nil
}

// Me returns the authenticated user
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	if claims == nil {
		return nil, shared.ErrUnauthorized
	}
	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) checkRevoked(ctx context.Context, claims *auth.Claims) error {
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if !revoked {
		revoked, err = s.blacklist.IsUserRevoked(ctx, claims.UserID, claims.GetIssuedAtTime())
		if err != nil {
			return err
		}
	}
	if revoked {
		s.logger.Warn("Revoked refresh token presented", zap.Int("id_utilisateur", claims.UserID))
		return errInvalidRefresh
	}
	return nil
}

func (s *AuthService) ensureCanLogin(user *identity.User) error {
	if !user.Actif || user.Role == nil || !user.Role.Actif {
		return errAccountDisabled
	}
	return nil
}

func identityOf(user *identity.User) auth.Identity {
	id := auth.Identity{
		SocieteID: user.SocieteID(),
		UserID:    user.ID,
		Login:     user.Login,
	}
	if user.Role != nil {
		id.Role = user.Role.NomRole
	}
	return id
}
