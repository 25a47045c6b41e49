package reservations

import (
	"context"

	"github.com/dmitrijs2005/flightbook/internal/models"
)

type Repository interface {
	// FirstLegDays returns the day of month of the first flight of every
	// reservation held by username, paid or unpaid.
	FirstLegDays(ctx context.Context, username string) ([]int, error)

	// SeatsTaken counts every reservation, paid or unpaid, referencing fid
	// as either leg.
	SeatsTaken(ctx context.Context, fid int) (int, error)

	// Count returns the total number of reservations in the store.
	Count(ctx context.Context) (int, error)

	Create(ctx context.Context, r *models.Reservation) error

	// GetUnpaid returns the unpaid reservation with the given id owned by
	// username, or common.ErrorNotFound — a paid reservation is deliberately
	// indistinguishable from a missing one.
	GetUnpaid(ctx context.Context, id int, username string) (*models.Reservation, error)

	MarkPaid(ctx context.Context, id int) error

	ListByUser(ctx context.Context, username string) ([]models.Reservation, error)

	Clear(ctx context.Context) error
}
