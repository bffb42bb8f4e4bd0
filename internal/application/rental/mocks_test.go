package rental

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindAllForSociete(ctx context.Context, societeID int, filter rental.ReservationFilter) ([]rental.Reservation, error) {
	args := m.Called(ctx, societeID, filter)
	return args.Get(0).([]rental.Reservation), args.Error(1)
}

func (m *MockReservationRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*rental.Reservation, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Save(ctx context.Context, reservation *rental.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) SetPaiement(ctx context.Context, societeID, reservationID int, paiementID *int) error {
	args := m.Called(ctx, societeID, reservationID, paiementID)
	return args.Error(0)
}

func (m *MockReservationRepository) ClearPaiementIfMatches(ctx context.Context, societeID, reservationID, paiementID int) error {
	args := m.Called(ctx, societeID, reservationID, paiementID)
	return args.Error(0)
}

func (m *MockReservationRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	args := m.Called(ctx, societeID, id)
	return args.Error(0)
}

type MockPaiementRepository struct {
	mock.Mock
}

func (m *MockPaiementRepository) FindAllForSociete(ctx context.Context, societeID int, filter rental.PaiementFilter) ([]rental.Paiement, error) {
	args := m.Called(ctx, societeID, filter)
	return args.Get(0).([]rental.Paiement), args.Error(1)
}

func (m *MockPaiementRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*rental.Paiement, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Paiement), args.Error(1)
}

func (m *MockPaiementRepository) FindByReservation(ctx context.Context, societeID, reservationID int) (*rental.Paiement, error) {
	args := m.Called(ctx, societeID, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rental.Paiement), args.Error(1)
}

func (m *MockPaiementRepository) Save(ctx context.Context, paiement *rental.Paiement) error {
	args := m.Called(ctx, paiement)
	return args.Error(0)
}

func (m *MockPaiementRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	args := m.Called(ctx, societeID, id)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindAllForSociete(ctx context.Context, societeID int, includeInactive bool) ([]partner.Client, error) {
	args := m.Called(ctx, societeID, includeInactive)
	return args.Get(0).([]partner.Client), args.Error(1)
}

func (m *MockClientRepository) FindByIDForSociete(ctx context.Context, societeID, id int) (*partner.Client, error) {
	args := m.Called(ctx, societeID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Client), args.Error(1)
}

func (m *MockClientRepository) ExistsByTelephone(ctx context.Context, societeID int, telephone string, excludeID int) (bool, error) {
	args := m.Called(ctx, societeID, telephone, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) ExistsByEmail(ctx context.Context, societeID int, email string, excludeID int) (bool, error) {
	args := m.Called(ctx, societeID, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClientRepository) CountReservations(ctx context.Context, clientID int) (int64, error) {
	args := m.Called(ctx, clientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClientRepository) Save(ctx context.Context, client *partner.Client) error {
	return m.Called(ctx, client).Error(0)
}

func (m *MockClientRepository) DeleteForSociete(ctx context.Context, societeID, id int) error {
	return m.Called(ctx, societeID, id).Error(0)
}

// fakeUnitOfWork hands the mocked repositories to fn and counts the units run
type fakeUnitOfWork struct {
	repos rental.Repositories
	calls int
}

func (u *fakeUnitOfWork) Do(_ context.Context, fn func(repos rental.Repositories) error) error {
	u.calls++
	return fn(u.repos)
}
