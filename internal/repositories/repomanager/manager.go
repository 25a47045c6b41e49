package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/flightbook/internal/dbx"
	"github.com/dmitrijs2005/flightbook/internal/repositories/flights"
	"github.com/dmitrijs2005/flightbook/internal/repositories/reservations"
	"github.com/dmitrijs2005/flightbook/internal/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository code runs against the bare connection or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Flights(db dbx.DBTX) flights.Repository
	Reservations(db dbx.DBTX) reservations.Repository
}
