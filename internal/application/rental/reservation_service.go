package rental

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ReservationService handles reservation operations
type ReservationService struct {
	reservationRepo rental.ReservationRepository
	paiementRepo    rental.PaiementRepository
	clientRepo      partner.ClientRepository
	logger          *zap.Logger
}

// NewReservationService creates a new ReservationService
func NewReservationService(
	reservationRepo rental.ReservationRepository,
	paiementRepo rental.PaiementRepository,
	clientRepo partner.ClientRepository,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		paiementRepo:    paiementRepo,
		clientRepo:      clientRepo,
		logger:          logger,
	}
}

// List returns the societe's reservations, newest first
func (s *ReservationService) List(ctx context.Context, tenantID int, filter ReservationListFilter) ([]ReservationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	reservations, err := s.reservationRepo.FindAllForSociete(ctx, tenantID, rental.ReservationFilter{
		Statut:   filter.Statut,
		ClientID: filter.IdClient,
	})
	if err != nil {
		return nil, err
	}
	out := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		out[i] = ToReservationResponse(&reservations[i])
	}
	return out, nil
}

// GetByID retrieves a reservation with its client and paiement
func (s *ReservationService) GetByID(ctx context.Context, tenantID, id int) (*ReservationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	r, err := s.reservationRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToReservationResponse(r)
	return &resp, nil
}

// Create creates a reservation for a client of the societe
func (s *ReservationService) Create(ctx context.Context, tenantID int, req CreateReservationRequest) (*ReservationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	r, err := rental.NewReservation(tenantID, rental.ReservationFields{
		ClientID:          req.IdClient,
		DateDebut:         req.DateDebut,
		DateFin:           req.DateFin,
		MontantTotal:      req.MontantTotal,
		RemiseAppliquee:   req.RemiseAppliquee,
		StatutReservation: req.StatutReservation,
	})
	if err != nil {
		return nil, err
	}
	if err := s.checkClient(ctx, tenantID, r.ClientID); err != nil {
		return nil, err
	}
	if err := s.checkPaiement(ctx, tenantID, r.ID, req.IdPaiement); err != nil {
		return nil, err
	}
	req.IdPaiement.Apply(&r.PaiementID)

	if err := s.reservationRepo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("Reservation created",
		zap.Int("id_reservation", r.ID),
		zap.Int("id_client", r.ClientID),
		zap.Int("id_societe", tenantID),
	)
	return s.reload(ctx, tenantID, r.ID)
}

// Update applies the present fields of req and validates the merged dates
func (s *ReservationService) Update(ctx context.Context, tenantID, id int, req UpdateReservationRequest) (*ReservationResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	r, err := s.reservationRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.IdClient != nil && *req.IdClient != r.ClientID {
		if err := s.checkClient(ctx, tenantID, *req.IdClient); err != nil {
			return nil, err
		}
		r.ClientID = *req.IdClient
	}
	if req.DateDebut != nil {
		r.DateDebut = *req.DateDebut
	}
	if req.DateFin != nil {
		r.DateFin = *req.DateFin
	}
	if req.MontantTotal != nil {
		r.MontantTotal = *req.MontantTotal
	}
	if req.RemiseAppliquee != nil {
		r.RemiseAppliquee = *req.RemiseAppliquee
	}
	if req.StatutReservation != nil {
		r.StatutReservation = *req.StatutReservation
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkPaiement(ctx, tenantID, r.ID, req.IdPaiement); err != nil {
		return nil, err
	}
	req.IdPaiement.Apply(&r.PaiementID)

	if err := s.reservationRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return s.reload(ctx, tenantID, r.ID)
}

// Delete removes a reservation that has no paiement
func (s *ReservationService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	r, err := s.reservationRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	_, err = s.paiementRepo.FindByReservation(ctx, tenantID, r.ID)
	switch {
	case err == nil:
		return false, shared.NewConflictError(
			"Impossible de supprimer la réservation %d car un paiement y est associé.", r.ID)
	case !errors.Is(err, shared.ErrNotFound):
		return false, err
	}

	if err := s.reservationRepo.DeleteForSociete(ctx, tenantID, r.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("Reservation deleted", zap.Int("id_reservation", r.ID), zap.Int("id_societe", tenantID))
	return true, nil
}

// UpdateStatus moves a reservation to another defined status
func (s *ReservationService) UpdateStatus(ctx context.Context, tenantID, id int, statut rental.StatutReservation) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	if !statut.IsValid() {
		return false, shared.NewValidationError("Statut de réservation invalide.")
	}
	r, err := s.reservationRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := r.ChangeStatus(statut); err != nil {
		return false, err
	}
	if err := s.reservationRepo.Save(ctx, r); err != nil {
		return false, err
	}

	s.logger.Info("Reservation status changed",
		zap.Int("id_reservation", r.ID),
		zap.Stringer("statut", statut),
	)
	return true, nil
}

func (s *ReservationService) checkClient(ctx context.Context, tenantID, clientID int) error {
	if _, err := s.clientRepo.FindByIDForSociete(ctx, tenantID, clientID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("Le client avec l'ID %d n'existe pas pour cette société.", clientID)
		}
		return err
	}
	return nil
}

// checkPaiement accepts a paiement reference only when it exists in the
// societe and was recorded for reservationID. Clearing is refused while a
// paiement still points at the reservation; that paiement must be deleted.
func (s *ReservationService) checkPaiement(ctx context.Context, tenantID, reservationID int, patch shared.Patch[int]) error {
	if patch.IsClear() {
		return s.checkDetach(ctx, tenantID, reservationID)
	}
	paiementID, ok := patch.Value()
	if !ok {
		return nil
	}
	p, err := s.paiementRepo.FindByIDForSociete(ctx, tenantID, paiementID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("Le paiement avec l'ID %d n'existe pas pour cette société.", paiementID)
		}
		return err
	}
	if reservationID == 0 || p.ReservationID != reservationID {
		return shared.NewValidationError("Le paiement avec l'ID %d n'appartient pas à cette réservation.", paiementID)
	}
	return nil
}

func (s *ReservationService) checkDetach(ctx context.Context, tenantID, reservationID int) error {
	if reservationID == 0 {
		return nil
	}
	_, err := s.paiementRepo.FindByReservation(ctx, tenantID, reservationID)
	switch {
	case err == nil:
		return shared.NewConflictError(
			"Impossible de détacher le paiement de la réservation %d : supprimez d'abord le paiement.", reservationID)
	case errors.Is(err, shared.ErrNotFound):
		return nil
	default:
		return err
	}
}

func (s *ReservationService) reload(ctx context.Context, tenantID, id int) (*ReservationResponse, error) {
	r, err := s.reservationRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToReservationResponse(r)
	return &resp, nil
}
