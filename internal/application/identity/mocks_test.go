package identity

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/stretchr/testify/mock"
)

// MockSocieteRepository is a mock implementation of identity.SocieteRepository
type MockSocieteRepository struct {
	mock.Mock
}

func (m *MockSocieteRepository) FindAll(ctx context.Context, includeInactive bool) ([]identity.Societe, error) {
	args := m.Called(ctx, includeInactive)
	return args.Get(0).([]identity.Societe), args.Error(1)
}

func (m *MockSocieteRepository) FindByID(ctx context.Context, id int) (*identity.Societe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Societe), args.Error(1)
}

func (m *MockSocieteRepository) FindFirst(ctx context.Context) (*identity.Societe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Societe), args.Error(1)
}

func (m *MockSocieteRepository) ExistsByName(ctx context.Context, nom string, excludeID int) (bool, error) {
	args := m.Called(ctx, nom, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocieteRepository) ExistsByEmail(ctx context.Context, email string, excludeID int) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocieteRepository) HasDependents(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocieteRepository) Save(ctx context.Context, societe *identity.Societe) error {
	args := m.Called(ctx, societe)
	if societe.ID == 0 {
		societe.ID = 1
	}
	return args.Error(0)
}

func (m *MockSocieteRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSocieteRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockRoleRepository is a mock implementation of identity.RoleRepository
type MockRoleRepository struct {
	mock.Mock
	nextID int
}

func (m *MockRoleRepository) FindAllForSociete(ctx context.Context, societeID int, includeInactive bool) ([]identity.Role, error) {
	args := m.Called(ctx, societeID, includeInactive)
	return args.Get(0).([]identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*identity.Role, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) FindByName(ctx context.Context, societeID int, nom string) (*identity.Role, error) {
	args := m.Called(ctx, societeID, nom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Role), args.Error(1)
}

func (m *MockRoleRepository) ExistsByName(ctx context.Context, societeID int, nom string, excludeID int) (bool, error) {
	args := m.Called(ctx, societeID, nom, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleRepository) CountUsers(ctx context.Context, roleID int) (int64, error) {
	args := m.Called(ctx, roleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRoleRepository) Save(ctx context.Context, role *identity.Role) error {
	args := m.Called(ctx, role)
	if role.ID == 0 {
		m.nextID++
		role.ID = m.nextID
	}
	return args.Error(0)
}

func (m *MockRoleRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return m.Called(ctx, societeID, id).Error(0)
}

func (m *MockRoleRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAllForSociete(ctx context.Context, societeID int, filter identity.UserFilter) ([]identity.User, error) {
	args := m.Called(ctx, societeID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*identity.User, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByLogin(ctx context.Context, login string) (*identity.User, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByLogin(ctx context.Context, login string, excludeID int) (bool, error) {
	args := m.Called(ctx, login, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	if user.ID == 0 {
		user.ID = 42
	}
	return args.Error(0)
}

func (m *MockUserRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return m.Called(ctx, societeID, id).Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// fakeUnitOfWork runs fn directly against the mocks
type fakeUnitOfWork struct {
	repos identity.Repositories
	calls int
}

func (u *fakeUnitOfWork) Do(_ context.Context, fn func(repos identity.Repositories) error) error {
	u.calls++
	return fn(u.repos)
}
