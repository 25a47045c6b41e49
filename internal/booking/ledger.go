package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/flightbook/internal/common"
	"github.com/dmitrijs2005/flightbook/internal/dbx"
	"github.com/dmitrijs2005/flightbook/internal/models"
	"github.com/dmitrijs2005/flightbook/internal/repositories/reservations"
	"github.com/dmitrijs2005/flightbook/internal/session"
)

// Book reserves the itinerary at itineraryID in the session's last search
// result. The same-day check, per-leg capacity checks, id assignment, and
// insert all run in one serializable transaction, so racing bookers cannot
// oversell a flight or mint duplicate ids; conflicting attempts are rerun
// transparently. No partial booking: a two-leg itinerary whose second leg is
// full fails entirely.
//
// The id is the current reservation count plus one. That strategy is racy on
// its own and is safe only because the transaction is serializable.
func (s *Service) Book(ctx context.Context, sess *session.Session, itineraryID int) string {
	if !sess.LoggedIn() {
		return "Cannot book reservations, not logged in"
	}
	itinerary, ok := sess.ItineraryAt(itineraryID)
	if !ok {
		return fmt.Sprintf("No such itinerary %d", itineraryID)
	}
	username := sess.Username()

	var reservationID int
	err := dbx.WithSerializableTx(ctx, s.db, s.maxAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Reservations(tx)

		days, err := repo.FirstLegDays(ctx, username)
		if err != nil {
			return err
		}
		for _, day := range days {
			if day == itinerary.First.DayOfMonth {
				return common.ErrScheduleConflict
			}
		}

		if err := checkCapacity(ctx, repo, itinerary.First); err != nil {
			return err
		}

		total := itinerary.First.Price
		var secondID *int
		if !itinerary.Direct() {
			if err := checkCapacity(ctx, repo, *itinerary.Second); err != nil {
				return err
			}
			total += itinerary.Second.Price
			fid := itinerary.Second.FID
			secondID = &fid
		}

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		reservationID = count + 1

		return repo.Create(ctx, &models.Reservation{
			ID:             reservationID,
			Username:       username,
			TotalPrice:     total,
			FirstFlightID:  itinerary.First.FID,
			SecondFlightID: secondID,
		})
	})

	switch {
	case err == nil:
		return fmt.Sprintf("Booked flight(s), reservation ID: %d", reservationID)
	case errors.Is(err, common.ErrScheduleConflict):
		return "You cannot book two flights in the same day"
	case errors.Is(err, common.ErrCapacityExceeded):
		return "Booking failed"
	default:
		s.logger.Error(ctx, "booking failed", "error", err, "session_id", sess.ID())
		return "Booking failed"
	}
}

// Pay settles the unpaid reservation with the given id owned by the session
// user: the balance decrement and the paid flip happen in the same
// serializable transaction as the checks, with the same conflict-retry policy
// as Book.
func (s *Service) Pay(ctx context.Context, sess *session.Session, reservationID int) string {
	if !sess.LoggedIn() {
		return "Cannot pay, not logged in"
	}
	username := sess.Username()

	var newBalance, balance, cost int
	err := dbx.WithSerializableTx(ctx, s.db, s.maxAttempts, func(ctx context.Context, tx dbx.DBTX) error {
		resRepo := s.repos.Reservations(tx)

		res, err := resRepo.GetUnpaid(ctx, reservationID, username)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrReservationNotFound
			}
			return err
		}

		userRepo := s.repos.Users(tx)
		user, err := userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}

		if user.Balance < res.TotalPrice {
			balance, cost = user.Balance, res.TotalPrice
			return common.ErrInsufficientFunds
		}

		newBalance = user.Balance - res.TotalPrice
		if err := userRepo.UpdateBalance(ctx, username, newBalance); err != nil {
			return err
		}
		return resRepo.MarkPaid(ctx, reservationID)
	})

	switch {
	case err == nil:
		return fmt.Sprintf("Paid reservation: %d remaining balance: %d", reservationID, newBalance)
	case errors.Is(err, common.ErrReservationNotFound):
		return fmt.Sprintf("Cannot find unpaid reservation %d under user: %s", reservationID, username)
	case errors.Is(err, common.ErrInsufficientFunds):
		return fmt.Sprintf("User has only %d in account but itinerary costs %d", balance, cost)
	default:
		s.logger.Error(ctx, "payment failed", "error", err, "session_id", sess.ID())
		return fmt.Sprintf("Failed to pay for reservation %d", reservationID)
	}
}

// Reservations lists the session user's reservations, paid and unpaid, with
// full flight detail.
func (s *Service) Reservations(ctx context.Context, sess *session.Session) string {
	if !sess.LoggedIn() {
		return "Cannot view reservations, not logged in"
	}
	username := sess.Username()

	list, err := s.repos.Reservations(s.db).ListByUser(ctx, username)
	if err != nil {
		s.logger.Error(ctx, "listing reservations failed", "error", err, "session_id", sess.ID())
		return "Failed to retrieve reservations"
	}
	if len(list) == 0 {
		return "No reservations found"
	}

	flightRepo := s.repos.Flights(s.db)

	var sb strings.Builder
	for _, res := range list {
		fmt.Fprintf(&sb, "Reservation %d paid: %t:\n", res.ID, res.Paid)

		f1, err := flightRepo.GetByID(ctx, res.FirstFlightID)
		if err != nil {
			s.logger.Error(ctx, "loading reservation flight failed", "error", err, "fid", res.FirstFlightID)
			return "Failed to retrieve reservations"
		}
		sb.WriteString(f1.String() + "\n")

		if res.SecondFlightID != nil {
			f2, err := flightRepo.GetByID(ctx, *res.SecondFlightID)
			if err != nil {
				s.logger.Error(ctx, "loading reservation flight failed", "error", err, "fid", *res.SecondFlightID)
				return "Failed to retrieve reservations"
			}
			sb.WriteString(f2.String() + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func checkCapacity(ctx context.Context, repo reservations.Repository, f models.Flight) error {
	taken, err := repo.SeatsTaken(ctx, f.FID)
	if err != nil {
		return err
	}
	if taken >= f.Capacity {
		return common.ErrCapacityExceeded
	}
	return nil
}
