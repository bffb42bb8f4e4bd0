package persistence

import (
	"errors"

	"github.com/mkboutique/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateWriteError maps constraint violations reported by the driver onto
// domain errors. Services check uniqueness first, so these only surface on races.
func translateWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewAlreadyExistsError("Un enregistrement identique existe déjà.")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewConflictError("Impossible de modifier cet enregistrement car il est référencé ou référence une ressource inexistante.")
	default:
		return err
	}
}

// translateFindError maps gorm's not found error onto shared.ErrNotFound
func translateFindError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}

// deleteResult turns a delete outcome into ErrNotFound when no row matched
func deleteResult(result *gorm.DB) error {
	if result.Error != nil {
		return translateWriteError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
