package flights

import (
	"context"

	"github.com/dmitrijs2005/flightbook/internal/models"
)

// Pair is a two-hop combination: First arrives at the city Second departs
// from, on the same day.
type Pair struct {
	First  models.Flight
	Second models.Flight
}

// Repository reads the externally-owned flight catalog. There are no write
// operations; catalog ingestion is out of scope.
type Repository interface {
	// FindDirect returns non-canceled flights from origin to dest on the
	// given day of month, ordered by duration ascending, at most limit rows.
	FindDirect(ctx context.Context, origin, dest string, day, limit int) ([]models.Flight, error)

	// FindConnecting returns non-canceled same-day two-hop combinations via a
	// shared intermediate city, ordered by summed duration ascending, at most
	// limit rows.
	FindConnecting(ctx context.Context, origin, dest string, day, limit int) ([]Pair, error)

	GetByID(ctx context.Context, fid int) (*models.Flight, error)
}
