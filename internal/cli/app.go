package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/flightbook/internal/logging"
	"github.com/dmitrijs2005/flightbook/internal/session"
)

// bookingService is the surface of the booking facade the shell needs.
// Satisfied by *booking.Service; tests substitute a stub.
type bookingService interface {
	Login(ctx context.Context, sess *session.Session, username, password string) string
	CreateAccount(ctx context.Context, username, password string, initialBalance int) string
	Search(ctx context.Context, sess *session.Session, origin, dest string, directOnly bool, day, maxResults int) string
	Book(ctx context.Context, sess *session.Session, itineraryID int) string
	Pay(ctx context.Context, sess *session.Session, reservationID int) string
	Reservations(ctx context.Context, sess *session.Session) string
}

type App struct {
	svc    bookingService
	sess   *session.Session
	logger logging.Logger
	reader *bufio.Reader
}

func NewApp(svc bookingService, logger logging.Logger) *App {
	return &App{
		svc:    svc,
		sess:   session.New(),
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.sess.LoggedIn()
}

func (a *App) getStatus() string {
	if a.sess.LoggedIn() {
		return fmt.Sprintf("(%s)", a.sess.Username())
	}
	return ""
}

// Run starts the shell on stdin and blocks until the user quits or input
// is exhausted.
func (a *App) Run(ctx context.Context) {
	a.logger.Debug(ctx, "shell started", "session_id", a.sess.ID())
	printlnFn("Welcome to FlightBook (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	a.logger.Debug(ctx, "shell stopped", "session_id", a.sess.ID())
}
