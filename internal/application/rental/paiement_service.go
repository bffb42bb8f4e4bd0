package rental

import (
	"context"
	"errors"

	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PaiementService handles paiement operations. Every write that touches the
// reservation back-reference runs inside one unit of work.
type PaiementService struct {
	paiementRepo rental.PaiementRepository
	uow          rental.UnitOfWork
	logger       *zap.Logger
}

// NewPaiementService creates a new PaiementService
func NewPaiementService(paiementRepo rental.PaiementRepository, uow rental.UnitOfWork, logger *zap.Logger) *PaiementService {
	return &PaiementService{
		paiementRepo: paiementRepo,
		uow:          uow,
		logger:       logger,
	}
}

// List returns the societe's paiements, newest first
func (s *PaiementService) List(ctx context.Context, tenantID int, filter PaiementListFilter) ([]PaiementResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	paiements, err := s.paiementRepo.FindAllForSociete(ctx, tenantID, rental.PaiementFilter{
		ReservationID: filter.IdReservation,
	})
	if err != nil {
		return nil, err
	}
	out := make([]PaiementResponse, len(paiements))
	for i := range paiements {
		out[i] = ToPaiementResponse(&paiements[i])
	}
	return out, nil
}

// GetByID retrieves a paiement of the societe
func (s *PaiementService) GetByID(ctx context.Context, tenantID, id int) (*PaiementResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	p, err := s.paiementRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToPaiementResponse(p)
	return &resp, nil
}

// Create records the payment of a reservation and links the reservation to it
func (s *PaiementService) Create(ctx context.Context, tenantID int, req CreatePaiementRequest) (*PaiementResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	p, err := rental.NewPaiement(tenantID, req.IdReservation, req.Montant, req.MethodePaiement, req.Reference)
	if err != nil {
		return nil, err
	}

	err = s.uow.Do(ctx, func(repos rental.Repositories) error {
		if err := ensureReservationFree(ctx, repos, tenantID, p.ReservationID, 0); err != nil {
			return err
		}
		if err := repos.Paiements.Save(ctx, p); err != nil {
			return err
		}
		return repos.Reservations.SetPaiement(ctx, tenantID, p.ReservationID, &p.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Paiement created",
		zap.Int("id_paiement", p.ID),
		zap.Int("id_reservation", p.ReservationID),
		zap.Int("id_societe", tenantID),
	)
	resp := ToPaiementResponse(p)
	return &resp, nil
}

// Update applies the present fields of req. Moving the paiement to another
// reservation rewrites both back-references in the same transaction.
func (s *PaiementService) Update(ctx context.Context, tenantID, id int, req UpdatePaiementRequest) (*PaiementResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}

	var updated *rental.Paiement
	err := s.uow.Do(ctx, func(repos rental.Repositories) error {
		p, err := repos.Paiements.FindByIDForSociete(ctx, tenantID, id)
		if err != nil {
			return err
		}

		if req.Montant != nil {
			p.Montant = *req.Montant
		}
		if req.MethodePaiement != nil {
			p.MethodePaiement = shared.NormalizeOptional(req.MethodePaiement)
		}
		if req.Reference != nil {
			p.Reference = shared.NormalizeOptional(req.Reference)
		}
		if err := p.Validate(); err != nil {
			return err
		}

		oldReservationID := p.ReservationID
		moving := req.IdReservation != nil && *req.IdReservation != oldReservationID
		if moving {
			if err := ensureReservationFree(ctx, repos, tenantID, *req.IdReservation, p.ID); err != nil {
				return err
			}
			if err := repos.Reservations.ClearPaiementIfMatches(ctx, tenantID, oldReservationID, p.ID); err != nil {
				return err
			}
			p.ReservationID = *req.IdReservation
		}

		if err := repos.Paiements.Save(ctx, p); err != nil {
			return err
		}
		if moving {
			if err := repos.Reservations.SetPaiement(ctx, tenantID, p.ReservationID, &p.ID); err != nil {
				return err
			}
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := ToPaiementResponse(updated)
	return &resp, nil
}

// Delete removes a paiement and clears its reservation's back-reference
func (s *PaiementService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}

	err := s.uow.Do(ctx, func(repos rental.Repositories) error {
		p, err := repos.Paiements.FindByIDForSociete(ctx, tenantID, id)
		if err != nil {
			return err
		}
		if err := repos.Reservations.ClearPaiementIfMatches(ctx, tenantID, p.ReservationID, p.ID); err != nil {
			return err
		}
		return repos.Paiements.DeleteForSociete(ctx, tenantID, p.ID)
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("Paiement deleted", zap.Int("id_paiement", id), zap.Int("id_societe", tenantID))
	return true, nil
}

// ensureReservationFree checks that reservationID exists in the societe and
// carries no paiement other than exceptPaiementID.
func ensureReservationFree(ctx context.Context, repos rental.Repositories, tenantID, reservationID, exceptPaiementID int) error {
	r, err := repos.Reservations.FindByIDForSociete(ctx, tenantID, reservationID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("La réservation avec l'ID %d n'existe pas.", reservationID)
		}
		return err
	}
	if r.PaiementID != nil && *r.PaiementID != exceptPaiementID {
		return shared.NewAlreadyExistsError("Un paiement existe déjà pour la réservation %d.", reservationID)
	}

	existing, err := repos.Paiements.FindByReservation(ctx, tenantID, reservationID)
	switch {
	case err == nil:
		if existing.ID != exceptPaiementID {
			return shared.NewAlreadyExistsError("Un paiement existe déjà pour la réservation %d.", reservationID)
		}
	case !errors.Is(err, shared.ErrNotFound):
		return err
	}
	return nil
}
