package impl

import (
	domainerrors "pizzahouse/internal/domain/errors"
	"pizzahouse/internal/domain/repository"
	"pizzahouse/internal/errors"
)

// translateRepoError maps repository sentinels onto the domain taxonomy.
// AppErrors pass through; anything else becomes a DatabaseExecuteError.
func translateRepoError(err error, details string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrZoneNotFound):
		return domainerrors.ErrZoneNotFound
	case errors.Is(err, repository.ErrOrderNotFound):
		return domainerrors.ErrOrderNotFound
	case errors.Is(err, repository.ErrSlotNotFound):
		return domainerrors.ErrSlotNotFound
	case errors.Is(err, repository.ErrSlotFull):
		return domainerrors.ErrCapacityExceeded
	case errors.Is(err, repository.ErrSlotOverbooked):
		return domainerrors.ErrInvalidInput.WithDetails("slot capacity cannot drop below booked orders")
	case errors.Is(err, repository.ErrOrderNotPending):
		return domainerrors.ErrInvalidTransition.WithDetails("only pending orders can be deleted")
	}

	if _, ok := errors.Find[domainerrors.AppError](err); ok {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
