package persistence

import (
	"context"

	"github.com/mkboutique/backend/internal/domain/identity"
	"github.com/mkboutique/backend/internal/domain/rental"
	"github.com/mkboutique/backend/internal/infrastructure/telemetry"
	"gorm.io/gorm"
)

// RentalUnitOfWork implements rental.UnitOfWork on a GORM transaction
type RentalUnitOfWork struct {
	db           *gorm.DB
	reservations *GormReservationRepository
	paiements    *GormPaiementRepository
}

// NewRentalUnitOfWork creates a new RentalUnitOfWork
func NewRentalUnitOfWork(db *gorm.DB) *RentalUnitOfWork {
	return &RentalUnitOfWork{
		db:           db,
		reservations: NewGormReservationRepository(db),
		paiements:    NewGormPaiementRepository(db),
	}
}

// Do runs fn inside a transaction. The transaction commits only when fn returns nil.
func (u *RentalUnitOfWork) Do(ctx context.Context, fn func(repos rental.Repositories) error) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "uow.rental", telemetry.AttrUnit.String("rental"))
	defer func() { telemetry.EndSpan(span, err) }()

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(rental.Repositories{
			Reservations: u.reservations.WithTx(tx),
			Paiements:    u.paiements.WithTx(tx),
		})
	})
}

// IdentityUnitOfWork implements identity.UnitOfWork on a GORM transaction
type IdentityUnitOfWork struct {
	db       *gorm.DB
	societes *GormSocieteRepository
	roles    *GormRoleRepository
	users    *GormUserRepository
}

// NewIdentityUnitOfWork creates a new IdentityUnitOfWork
func NewIdentityUnitOfWork(db *gorm.DB) *IdentityUnitOfWork {
	return &IdentityUnitOfWork{
		db:       db,
		societes: NewGormSocieteRepository(db),
		roles:    NewGormRoleRepository(db),
		users:    NewGormUserRepository(db),
	}
}

// Do runs fn inside a transaction. The transaction commits only when fn returns nil.
func (u *IdentityUnitOfWork) Do(ctx context.Context, fn func(repos identity.Repositories) error) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "uow.identity", telemetry.AttrUnit.String("identity"))
	defer func() { telemetry.EndSpan(span, err) }()

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(identity.Repositories{
			Societes: u.societes.WithTx(tx),
			Roles:    u.roles.WithTx(tx),
			Users:    u.users.WithTx(tx),
		})
	})
}

// Compile-time interface checks
var (
	_ identity.SocieteRepository = (*GormSocieteRepository)(nil)
	_ identity.RoleRepository    = (*GormRoleRepository)(nil)
	_ identity.UserRepository    = (*GormUserRepository)(nil)
	_ identity.UnitOfWork        = (*IdentityUnitOfWork)(nil)
	_ rental.UnitOfWork          = (*RentalUnitOfWork)(nil)
)
