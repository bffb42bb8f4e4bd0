package partner

import "context"

// ClientRepository defines persistence for clients
type ClientRepository interface {
	// FindAllForSociete orders by nom then prenom
	FindAllForSociete(ctx context.Context, societeID int, includeInactive bool) ([]Client, error)
	// FindByIDForSociete returns shared.ErrNotFound when absent or in another societe
	FindByIDForSociete(ctx context.Context, societeID, id int) (*Client, error)
	// ExistsByTelephone checks exact phone uniqueness; societeID 0 checks all societes
	ExistsByTelephone(ctx context.Context, societeID int, telephone string, excludeID int) (bool, error)
	// ExistsByEmail checks case-insensitive email uniqueness; societeID 0 checks all societes
	ExistsByEmail(ctx context.Context, societeID int, email string, excludeID int) (bool, error)
	CountReservations(ctx context.Context, clientID int) (int64, error)
	Save(ctx context.Context, client *Client) error
	DeleteForSociete(ctx context.Context, societeID, id int) error
}
