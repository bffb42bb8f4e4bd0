package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBootstrap(admin BootstrapAdmin) (*BootstrapService, *fakeUnitOfWork, *MockSocieteRepository, *MockRoleRepository, *MockUserRepository) {
	societes := new(MockSocieteRepository)
	roles := new(MockRoleRepository)
	users := new(MockUserRepository)
	uow := &fakeUnitOfWork{repos: identity.Repositories{Societes: societes, Roles: roles, Users: users}}
	return NewBootstrapService(uow, admin, zap.NewNop()), uow, societes, roles, users
}

func TestBootstrapService_EmptyDatabase(t *testing.T) {
	ctx := context.Background()
	service, uow, societes, roles, _ := newBootstrap(BootstrapAdmin{})

	roles.On("Count", ctx).Return(int64(0), nil)
	societes.On("FindFirst", ctx).Return(nil, shared.ErrNotFound)
	var createdSociete *identity.Societe
	societes.On("Save", ctx, mock.AnythingOfType("*identity.Societe")).
		Run(func(args mock.Arguments) { createdSociete = args.Get(1).(*identity.Societe) }).
		Return(nil)
	var created []*identity.Role
	roles.On("Save", ctx, mock.AnythingOfType("*identity.Role")).
		Run(func(args mock.Arguments) { created = append(created, args.Get(1).(*identity.Role)) }).
		Return(nil)

	require.NoError(t, service.InitializeDefaultRoles(ctx))

	assert.Equal(t, 1, uow.calls)
	require.NotNil(t, createdSociete)
	assert.Equal(t, DefaultSocieteName, createdSociete.NomSociete)
	require.Len(t, created, 3)
	names := []string{created[0].NomRole, created[1].NomRole, created[2].NomRole}
	assert.Equal(t, []string{identity.RoleAdmin, identity.RoleManager, identity.RoleStaff}, names)
	for _, r := range created {
		assert.Equal(t, createdSociete.ID, r.SocieteID)
		assert.True(t, r.Actif)
	}
	assert.Equal(t, "Administrateur avec tous les droits", *created[0].Description)
}

func TestBootstrapService_ExistingSociete(t *testing.T) {
	ctx := context.Background()
	service, _, societes, roles, _ := newBootstrap(BootstrapAdmin{})

	roles.On("Count", ctx).Return(int64(0), nil)
	societes.On("FindFirst", ctx).Return(&identity.Societe{ID: 4, NomSociete: "Caftans Fès"}, nil)
	roles.On("Save", ctx, mock.AnythingOfType("*identity.Role")).Return(nil)

	require.NoError(t, service.InitializeDefaultRoles(ctx))
	societes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	roles.AssertNumberOfCalls(t, "Save", 3)
}

func TestBootstrapService_Idempotent(t *testing.T) {
	ctx := context.Background()
	service, _, societes, roles, users := newBootstrap(BootstrapAdmin{})
	roles.On("Count", ctx).Return(int64(3), nil)

	require.NoError(t, service.InitializeDefaultRoles(ctx))
	require.NoError(t, service.InitializeDefaultRoles(ctx))

	roles.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	societes.AssertNotCalled(t, "FindFirst", mock.Anything)
	users.AssertNotCalled(t, "Count", mock.Anything)
}

func TestBootstrapService_AdminAccount(t *testing.T) {
	ctx := context.Background()
	admin := BootstrapAdmin{Login: "Admin", Password: "changeme"}

	t.Run("created when no user exists", func(t *testing.T) {
		service, _, societes, roles, users := newBootstrap(admin)
		roles.On("Count", ctx).Return(int64(3), nil)
		users.On("Count", ctx).Return(int64(0), nil)
		societes.On("FindFirst", ctx).Return(&identity.Societe{ID: 1}, nil)
		roles.On("FindByName", ctx, 1, identity.RoleAdmin).Return(&identity.Role{ID: 2, NomRole: identity.RoleAdmin, SocieteID: 1}, nil)
		var saved *identity.User
		users.On("Save", ctx, mock.AnythingOfType("*identity.User")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*identity.User) }).
			Return(nil)

		require.NoError(t, service.InitializeDefaultRoles(ctx))
		require.NotNil(t, saved)
		assert.Equal(t, "admin", saved.Login)
		assert.Equal(t, 2, saved.RoleID)
		assert.True(t, saved.CheckPassword("changeme"))
	})

	t.Run("skipped once users exist", func(t *testing.T) {
		service, _, _, roles, users := newBootstrap(admin)
		roles.On("Count", ctx).Return(int64(3), nil)
		users.On("Count", ctx).Return(int64(1), nil)

		require.NoError(t, service.InitializeDefaultRoles(ctx))
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestBootstrapService_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	service, _, _, roles, _ := newBootstrap(BootstrapAdmin{})
	schemaErr := errors.New(`relation "roles" does not exist`)
	roles.On("Count", ctx).Return(int64(0), schemaErr)

	err := service.InitializeDefaultRoles(ctx)
	assert.ErrorIs(t, err, schemaErr)
}
