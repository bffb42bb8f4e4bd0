package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkboutique/backend/internal/domain/partner"
	"github.com/mkboutique/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UniqueScope selects where client phone and email must be unique
type UniqueScope string

const (
	// UniqueScopeGlobal checks every societe
	UniqueScopeGlobal UniqueScope = "global"
	// UniqueScopeTenant checks the caller's societe only
	UniqueScopeTenant UniqueScope = "tenant"
)

// ParseUniqueScope maps a configuration value to a scope
func ParseUniqueScope(s string) (UniqueScope, error) {
	switch UniqueScope(s) {
	case "", UniqueScopeGlobal:
		return UniqueScopeGlobal, nil
	case UniqueScopeTenant:
		return UniqueScopeTenant, nil
	default:
		return "", fmt.Errorf("unknown client unique scope %q", s)
	}
}

// ClientService handles client operations
type ClientService struct {
	clientRepo partner.ClientRepository
	scope      UniqueScope
	logger     *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository, scope UniqueScope, logger *zap.Logger) *ClientService {
	if scope == "" {
		scope = UniqueScopeGlobal
	}
	return &ClientService{
		clientRepo: clientRepo,
		scope:      scope,
		logger:     logger,
	}
}

// List returns the societe's clients ordered by nom then prenom
func (s *ClientService) List(ctx context.Context, tenantID int, filter ClientListFilter) ([]ClientResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	clients, err := s.clientRepo.FindAllForSociete(ctx, tenantID, filter.IncludeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out, nil
}

// GetByID retrieves a client of the societe
func (s *ClientService) GetByID(ctx context.Context, tenantID, id int) (*ClientResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := s.clientRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Create creates a client after checking phone and email uniqueness
func (s *ClientService) Create(ctx context.Context, tenantID int, req CreateClientRequest) (*ClientResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := partner.NewClient(tenantID, partner.ClientFields{
		NomClient:         req.NomClient,
		PrenomClient:      req.PrenomClient,
		Telephone:         req.Telephone,
		Email:             req.Email,
		AdressePrincipale: req.AdressePrincipale,
		PhotoCin:          req.PhotoCin,
	})
	if err != nil {
		return nil, err
	}
	if req.Actif != nil {
		c.Actif = *req.Actif
	}

	if err := s.ensureUniqueTelephone(ctx, tenantID, c.Telephone, 0); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueEmail(ctx, tenantID, c.Email, 0); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Client created",
		zap.Int("id_client", c.ID),
		zap.Int("id_societe", tenantID),
	)
	resp := ToClientResponse(c)
	return &resp, nil
}

// Update applies the present fields of req
func (s *ClientService) Update(ctx context.Context, tenantID, id int, req UpdateClientRequest) (*ClientResponse, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return nil, err
	}
	c, err := s.clientRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Telephone != nil {
		tel := shared.NormalizeText(*req.Telephone)
		if tel != c.Telephone {
			if err := s.ensureUniqueTelephone(ctx, tenantID, tel, c.ID); err != nil {
				return nil, err
			}
		}
		c.Telephone = tel
	}
	if req.Email != nil {
		email := shared.NormalizeOptional(req.Email)
		if err := s.ensureUniqueEmail(ctx, tenantID, email, c.ID); err != nil {
			return nil, err
		}
		c.Email = email
	}
	if req.NomClient != nil {
		c.NomClient = shared.NormalizeText(*req.NomClient)
	}
	if req.PrenomClient != nil {
		c.PrenomClient = shared.NormalizeText(*req.PrenomClient)
	}
	if req.AdressePrincipale != nil {
		c.AdressePrincipale = shared.NormalizeOptional(req.AdressePrincipale)
	}
	if req.PhotoCin != nil {
		c.PhotoCin = shared.NormalizeOptional(req.PhotoCin)
	}
	if req.TotalCommandes != nil {
		c.TotalCommandes = *req.TotalCommandes
	}
	if req.Actif != nil {
		c.Actif = *req.Actif
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	resp := ToClientResponse(c)
	return &resp, nil
}

// Delete removes a client that holds no reservation
func (s *ClientService) Delete(ctx context.Context, tenantID, id int) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	c, err := s.clientRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	count, err := s.clientRepo.CountReservations(ctx, c.ID)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, shared.NewConflictError(
			"Impossible de supprimer un client qui a des réservations. Désactivez-le à la place.")
	}

	if err := s.clientRepo.DeleteForSociete(ctx, tenantID, c.ID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	s.logger.Info("Client deleted", zap.Int("id_client", c.ID), zap.Int("id_societe", tenantID))
	return true, nil
}

// ToggleActive flips the client's active flag
func (s *ClientService) ToggleActive(ctx context.Context, tenantID, id int) (bool, error) {
	return s.mutate(ctx, tenantID, id, (*partner.Client).ToggleActive)
}

// IncrementTotalCommandes records one more order for the client
func (s *ClientService) IncrementTotalCommandes(ctx context.Context, tenantID, id int) (bool, error) {
	return s.mutate(ctx, tenantID, id, (*partner.Client).IncrementTotalCommandes)
}

func (s *ClientService) mutate(ctx context.Context, tenantID, id int, apply func(*partner.Client)) (bool, error) {
	if err := shared.RequireTenant(tenantID); err != nil {
		return false, err
	}
	c, err := s.clientRepo.FindByIDForSociete(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	apply(c)
	if err := s.clientRepo.Save(ctx, c); err != nil {
		return false, err
	}
	return true, nil
}

// uniquenessSocieteID returns 0 for the global scope so repositories check all societes
func (s *ClientService) uniquenessSocieteID(tenantID int) int {
	if s.scope == UniqueScopeTenant {
		return tenantID
	}
	return 0
}

func (s *ClientService) ensureUniqueTelephone(ctx context.Context, tenantID int, telephone string, excludeID int) error {
	exists, err := s.clientRepo.ExistsByTelephone(ctx, s.uniquenessSocieteID(tenantID), telephone, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Un client avec le téléphone '%s' existe déjà.", telephone)
	}
	return nil
}

func (s *ClientService) ensureUniqueEmail(ctx context.Context, tenantID int, email *string, excludeID int) error {
	if email == nil {
		return nil
	}
	exists, err := s.clientRepo.ExistsByEmail(ctx, s.uniquenessSocieteID(tenantID), *email, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.NewAlreadyExistsError("Un client avec l'email '%s' existe déjà.", *email)
	}
	return nil
}
