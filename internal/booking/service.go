// Package booking contains the core business logic of FlightBook: account
// management, itinerary search, and the transactional reservation ledger.
// Every operation resolves to a human-readable result string; no error
// escapes to the caller. Cross-session coordination happens exclusively
// through the store's serializable transactions, never through in-process
// locks.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/flightbook/internal/common"
	"github.com/dmitrijs2005/flightbook/internal/credentials"
	"github.com/dmitrijs2005/flightbook/internal/dbx"
	"github.com/dmitrijs2005/flightbook/internal/logging"
	"github.com/dmitrijs2005/flightbook/internal/models"
	"github.com/dmitrijs2005/flightbook/internal/repositories/repomanager"
	"github.com/dmitrijs2005/flightbook/internal/session"
)

// Service is the facade invoked by the transport layer (the CLI). It is safe
// for use by many sessions concurrently; all per-user state lives in the
// session handle passed into each operation.
type Service struct {
	db          *sql.DB
	repos       repomanager.RepositoryManager
	logger      logging.Logger
	maxAttempts int
}

// NewService constructs the booking facade. maxTxAttempts bounds how often a
// conflicting serializable transaction is rerun before giving up.
func NewService(db *sql.DB, rm repomanager.RepositoryManager, logger logging.Logger, maxTxAttempts int) *Service {
	return &Service{db: db, repos: rm, logger: logger, maxAttempts: maxTxAttempts}
}

// Login authenticates the session. A session that is already authenticated
// cannot log in again. Unknown users and wrong passwords produce the same
// message, so usernames cannot be enumerated through login.
func (s *Service) Login(ctx context.Context, sess *session.Session, username, password string) string {
	if sess.LoggedIn() {
		return "User already logged in"
	}

	lc := strings.ToLower(username)

	user, err := s.repos.Users(s.db).GetByUsername(ctx, lc)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "login lookup failed", "error", err, "session_id", sess.ID())
		}
		return "Login failed"
	}

	if !credentials.Verify(password, user.Credential) {
		return "Login failed"
	}

	sess.Authenticate(lc)
	return fmt.Sprintf("Logged in as %s", username)
}

// CreateAccount creates a user with a freshly salted credential blob and the
// given initial balance. The existence check and the insert run in one
// serializable transaction so two racing creations of the same username
// cannot both succeed.
func (s *Service) CreateAccount(ctx context.Context, username, password string, initialBalance int) string {
	if initialBalance < 0 {
		return "Failed to create user"
	}

	lc := strings.ToLower(username)
	blob := credentials.Generate(password)

	err := dbx.WithSerializableTx(ctx, s.db, s.maxAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		_, err := repo.GetByUsername(ctx, lc)
		if err == nil {
			return common.ErrDuplicateAccount
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		return repo.Create(ctx, &models.User{Username: lc, Credential: blob, Balance: initialBalance})
	})

	if err != nil {
		if !errors.Is(err, common.ErrDuplicateAccount) {
			s.logger.Error(ctx, "account creation failed", "error", err, "username", lc)
		}
		return "Failed to create user"
	}

	return fmt.Sprintf("Created user %s", username)
}

// ClearTables wipes all reservations and users, keeping the flight catalog.
// Administrative/test use only.
func (s *Service) ClearTables(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Reservations(tx).Clear(ctx); err != nil {
			return err
		}
		return s.repos.Users(tx).Clear(ctx)
	})
}
