package rental

import (
	"context"
	"errors"
	"testing"

	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paiementFixture struct {
	reservations *MockReservationRepository
	paiements    *MockPaiementRepository
	uow          *fakeUnitOfWork
	service      *PaiementService
}

func newPaiementFixture() *paiementFixture {
	f := &paiementFixture{
		reservations: new(MockReservationRepository),
		paiements:    new(MockPaiementRepository),
	}
	f.uow = &fakeUnitOfWork{repos: rental.Repositories{Reservations: f.reservations, Paiements: f.paiements}}
	f.service = NewPaiementService(f.paiements, f.uow, zap.NewNop())
	return f
}

func TestPaiementService_Create_Montant(t *testing.T) {
	ctx := context.Background()

	t.Run("zero is rejected before any storage access", func(t *testing.T) {
		f := newPaiementFixture()

		_, err := f.service.Create(ctx, 1, CreatePaiementRequest{IdReservation: 20, Montant: decimal.Zero})
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
		assert.Equal(t, 0, f.uow.calls)
	})

	t.Run("one cent is accepted", func(t *testing.T) {
		f := newPaiementFixture()
		f.reservations.On("FindByIDForSociete", ctx, 1, 20).Return(&rental.Reservation{ID: 20, SocieteID: 1}, nil)
		f.paiements.On("FindByReservation", ctx, 1, 20).Return(nil, shared.ErrNotFound)
		f.paiements.On("Save", ctx, mock.AnythingOfType("*rental.Paiement")).
			Run(func(args mock.Arguments) { args.Get(1).(*rental.Paiement).ID = 30 }).
			Return(nil)
		f.reservations.On("SetPaiement", ctx, 1, 20, mock.MatchedBy(func(id *int) bool {
			return id != nil && *id == 30
		})).Return(nil)

		resp, err := f.service.Create(ctx, 1, CreatePaiementRequest{
			IdReservation:   20,
			Montant:         decimal.RequireFromString("0.01"),
			MethodePaiement: shared.StringPtr("Espèces"),
		})
		require.NoError(t, err)
		assert.Equal(t, 30, resp.IdPaiement)
		assert.Equal(t, 20, resp.IdReservation)
		assert.Equal(t, 1, f.uow.calls)
		f.reservations.AssertExpectations(t)
	})
}

func TestPaiementService_Create_Guards(t *testing.T) {
	ctx := context.Background()
	req := CreatePaiementRequest{IdReservation: 20, Montant: decimal.NewFromInt(300)}

	t.Run("second paiement for a reservation", func(t *testing.T) {
		f := newPaiementFixture()
		f.reservations.On("FindByIDForSociete", ctx, 1, 20).
			Return(&rental.Reservation{ID: 20, PaiementID: shared.IntPtr(30), SocieteID: 1}, nil)

		_, err := f.service.Create(ctx, 1, req)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeAlreadyExists))
		assert.Equal(t, "Un paiement existe déjà pour la réservation 20.", err.Error())
		f.paiements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("orphan paiement row also blocks", func(t *testing.T) {
		f := newPaiementFixture()
		f.reservations.On("FindByIDForSociete", ctx, 1, 20).Return(&rental.Reservation{ID: 20, SocieteID: 1}, nil)
		f.paiements.On("FindByReservation", ctx, 1, 20).Return(&rental.Paiement{ID: 29, ReservationID: 20}, nil)

		_, err := f.service.Create(ctx, 1, req)
		assert.True(t, shared.HasCode(err, shared.CodeAlreadyExists))
	})

	t.Run("reservation of another societe", func(t *testing.T) {
		f := newPaiementFixture()
		f.reservations.On("FindByIDForSociete", ctx, 1, 20).Return(nil, shared.ErrNotFound)

		_, err := f.service.Create(ctx, 1, req)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
		assert.Equal(t, "La réservation avec l'ID 20 n'existe pas.", err.Error())
	})

	t.Run("back-reference failure is returned", func(t *testing.T) {
		f := newPaiementFixture()
		boom := errors.New("write failed")
		f.reservations.On("FindByIDForSociete", ctx, 1, 20).Return(&rental.Reservation{ID: 20, SocieteID: 1}, nil)
		f.paiements.On("FindByReservation", ctx, 1, 20).Return(nil, shared.ErrNotFound)
		f.paiements.On("Save", ctx, mock.AnythingOfType("*rental.Paiement")).Return(nil)
		f.reservations.On("SetPaiement", ctx, 1, 20, mock.Anything).Return(boom)

		_, err := f.service.Create(ctx, 1, req)
		assert.ErrorIs(t, err, boom)
	})
}

func TestPaiementService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("moves to another reservation", func(t *testing.T) {
		f := newPaiementFixture()
		stored := &rental.Paiement{ID: 30, ReservationID: 20, Montant: decimal.NewFromInt(300), SocieteID: 1}
		f.paiements.On("FindByIDForSociete", ctx, 1, 30).Return(stored, nil)
		f.reservations.On("FindByIDForSociete", ctx, 1, 21).Return(&rental.Reservation{ID: 21, SocieteID: 1}, nil)
		f.paiements.On("FindByReservation", ctx, 1, 21).Return(nil, shared.ErrNotFound)
		f.reservations.On("ClearPaiementIfMatches", ctx, 1, 20, 30).Return(nil)
		f.paiements.On("Save", ctx, stored).Return(nil)
		f.reservations.On("SetPaiement", ctx, 1, 21, mock.MatchedBy(func(id *int) bool {
			return id != nil && *id == 30
		})).Return(nil)

		target := 21
		resp, err := f.service.Update(ctx, 1, 30, UpdatePaiementRequest{IdReservation: &target})
		require.NoError(t, err)
		assert.Equal(t, 21, resp.IdReservation)
		assert.Equal(t, 1, f.uow.calls)
		f.reservations.AssertExpectations(t)
	})

	t.Run("amount only leaves reservations alone", func(t *testing.T) {
		f := newPaiementFixture()
		stored := &rental.Paiement{ID: 30, ReservationID: 20, Montant: decimal.NewFromInt(300), SocieteID: 1}
		f.paiements.On("FindByIDForSociete", ctx, 1, 30).Return(stored, nil)
		f.paiements.On("Save", ctx, stored).Return(nil)

		montant := decimal.NewFromInt(350)
		resp, err := f.service.Update(ctx, 1, 30, UpdatePaiementRequest{Montant: &montant})
		require.NoError(t, err)
		assert.True(t, resp.Montant.Equal(montant))
		f.reservations.AssertNotCalled(t, "SetPaiement", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.reservations.AssertNotCalled(t, "ClearPaiementIfMatches", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("target already paid", func(t *testing.T) {
		f := newPaiementFixture()
		f.paiements.On("FindByIDForSociete", ctx, 1, 30).
			Return(&rental.Paiement{ID: 30, ReservationID: 20, Montant: decimal.NewFromInt(300), SocieteID: 1}, nil)
		f.reservations.On("FindByIDForSociete", ctx, 1, 21).
			Return(&rental.Reservation{ID: 21, PaiementID: shared.IntPtr(31), SocieteID: 1}, nil)

		target := 21
		_, err := f.service.Update(ctx, 1, 30, UpdatePaiementRequest{IdReservation: &target})
		assert.True(t, shared.HasCode(err, shared.CodeAlreadyExists))
		f.paiements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPaiementFixture()
		f.paiements.On("FindByIDForSociete", ctx, 1, 99).Return(nil, shared.ErrNotFound)

		_, err := f.service.Update(ctx, 1, 99, UpdatePaiementRequest{})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPaiementService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("clears the back-reference then deletes", func(t *testing.T) {
		f := newPaiementFixture()
		f.paiements.On("FindByIDForSociete", ctx, 1, 30).Return(&rental.Paiement{ID: 30, ReservationID: 20, SocieteID: 1}, nil)
		f.reservations.On("ClearPaiementIfMatches", ctx, 1, 20, 30).Return(nil)
		f.paiements.On("DeleteForSociete", ctx, 1, 30).Return(nil)

		ok, err := f.service.Delete(ctx, 1, 30)
		require.NoError(t, err)
		assert.True(t, ok)
		f.reservations.AssertExpectations(t)
		f.paiements.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPaiementFixture()
		f.paiements.On("FindByIDForSociete", ctx, 1, 30).Return(nil, shared.ErrNotFound)

		ok, err := f.service.Delete(ctx, 1, 30)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPaiementService_List(t *testing.T) {
	ctx := context.Background()
	f := newPaiementFixture()
	reservationID := 20
	f.paiements.On("FindAllForSociete", ctx, 1, rental.PaiementFilter{ReservationID: &reservationID}).
		Return([]rental.Paiement{{ID: 30, ReservationID: 20, SocieteID: 1}}, nil)

	result, err := f.service.List(ctx, 1, PaiementListFilter{IdReservation: &reservationID})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 30, result[0].IdPaiement)

	_, err = f.service.List(ctx, 0, PaiementListFilter{})
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}
