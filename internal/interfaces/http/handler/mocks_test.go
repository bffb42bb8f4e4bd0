package handler

import (
	"context"

	catalogapp "github.com/mkboutique/backend/internal/application/catalog"
	identityapp "github.com/mkboutique/backend/internal/application/identity"
	partnerapp "github.com/mkboutique/backend/internal/application/partner"
	rentalapp "github.com/mkboutique/backend/internal/application/rental"
	settingsapp "github.com/mkboutique/backend/internal/application/settings"
	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/mock"
)

type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) List(ctx context.Context, tenantID int, filter catalogapp.ArticleListFilter) ([]catalogapp.ArticleResponse, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogapp.ArticleResponse), args.Error(1)
}

func (m *MockArticleService) GetByID(ctx context.Context, tenantID, id int) (*catalogapp.ArticleResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ArticleResponse), args.Error(1)
}

func (m *MockArticleService) Create(ctx context.Context, tenantID int, req catalogapp.CreateArticleRequest) (*catalogapp.ArticleResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ArticleResponse), args.Error(1)
}

func (m *MockArticleService) Update(ctx context.Context, tenantID, id int, req catalogapp.UpdateArticleRequest) (*catalogapp.ArticleResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalogapp.ArticleResponse), args.Error(1)
}

func (m *MockArticleService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context, tenantID int, filter partnerapp.ClientListFilter) ([]partnerapp.ClientResponse, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partnerapp.ClientResponse), args.Error(1)
}

func (m *MockClientService) GetByID(ctx context.Context, tenantID, id int) (*partnerapp.ClientResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.ClientResponse), args.Error(1)
}

func (m *MockClientService) Create(ctx context.Context, tenantID int, req partnerapp.CreateClientRequest) (*partnerapp.ClientResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.ClientResponse), args.Error(1)
}

func (m *MockClientService) Update(ctx context.Context, tenantID, id int, req partnerapp.UpdateClientRequest) (*partnerapp.ClientResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partnerapp.ClientResponse), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientService) IncrementTotalCommandes(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) List(ctx context.Context, tenantID int, filter rentalapp.ReservationListFilter) ([]rentalapp.ReservationResponse, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rentalapp.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) GetByID(ctx context.Context, tenantID, id int) (*rentalapp.ReservationResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rentalapp.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) Create(ctx context.Context, tenantID int, req rentalapp.CreateReservationRequest) (*rentalapp.ReservationResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rentalapp.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) Update(ctx context.Context, tenantID, id int, req rentalapp.UpdateReservationRequest) (*rentalapp.ReservationResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rentalapp.ReservationResponse), args.Error(1)
}

func (m *MockReservationService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationService) UpdateStatus(ctx context.Context, tenantID, id int, statut rental.StatutReservation) (bool, error) {
	args := m.Called(ctx, tenantID, id, statut)
	return args.Bool(0), args.Error(1)
}

type MockConfigurationService struct {
	mock.Mock
}

func (m *MockConfigurationService) List(ctx context.Context, tenantID int) ([]settingsapp.ConfigurationResponse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]settingsapp.ConfigurationResponse), args.Error(1)
}

func (m *MockConfigurationService) GetByID(ctx context.Context, tenantID, id int) (*settingsapp.ConfigurationResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsapp.ConfigurationResponse), args.Error(1)
}

func (m *MockConfigurationService) GetByCle(ctx context.Context, tenantID int, cle string) (*settingsapp.ConfigurationResponse, error) {
	args := m.Called(ctx, tenantID, cle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsapp.ConfigurationResponse), args.Error(1)
}

func (m *MockConfigurationService) Create(ctx context.Context, tenantID int, req settingsapp.CreateConfigurationRequest) (*settingsapp.ConfigurationResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsapp.ConfigurationResponse), args.Error(1)
}

func (m *MockConfigurationService) Update(ctx context.Context, tenantID, id int, req settingsapp.UpdateConfigurationRequest) (*settingsapp.ConfigurationResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsapp.ConfigurationResponse), args.Error(1)
}

func (m *MockConfigurationService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockConfigurationService) ValidateJSON(data string) bool {
	return m.Called(data).Bool(0)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req identityapp.LoginRequest) (*identityapp.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.LoginResponse), args.Error(1)
}

func (m *MockAuthService) Refresh(ctx context.Context, req identityapp.RefreshRequest) (*auth.TokenPair, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.TokenPair), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, claims *auth.Claims, req identityapp.LogoutRequest) error {
	return m.Called(ctx, claims, req).Error(0)
}

func (m *MockAuthService) Me(ctx context.Context, claims *auth.Claims) (*identityapp.UserResponse, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.UserResponse), args.Error(1)
}

type MockRoleService struct {
	mock.Mock
}

func (m *MockRoleService) List(ctx context.Context, tenantID int, filter identityapp.ActiveFilter) ([]identityapp.RoleResponse, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identityapp.RoleResponse), args.Error(1)
}

func (m *MockRoleService) GetByID(ctx context.Context, tenantID, id int) (*identityapp.RoleResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.RoleResponse), args.Error(1)
}

func (m *MockRoleService) Create(ctx context.Context, tenantID int, req identityapp.CreateRoleRequest) (*identityapp.RoleResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.RoleResponse), args.Error(1)
}

func (m *MockRoleService) Update(ctx context.Context, tenantID, id int, req identityapp.UpdateRoleRequest) (*identityapp.RoleResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identityapp.RoleResponse), args.Error(1)
}

func (m *MockRoleService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	args := m.Called(ctx, tenantID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleService) ListUsers(ctx context.Context, tenantID, roleID int) ([]identityapp.UserResponse, error) {
	args := m.Called(ctx, tenantID, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identityapp.UserResponse), args.Error(1)
}
