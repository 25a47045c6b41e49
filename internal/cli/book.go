package cli

import (
	"context"
	"os"
	"strconv"
)

// idArg resolves the numeric argument of "book" and "pay": taken from the
// command line when present, prompted for otherwise.
func (a *App) idArg(args []string, prompt string) (int, error) {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			printlnFn("Not a number:", args[0])
			return 0, err
		}
		return n, nil
	}
	n, err := getInt(a.reader, prompt, os.Stdout)
	if err != nil {
		a.logger.Debug(context.Background(), "bad numeric input", "error", err)
		printlnFn(err.Error())
		return 0, err
	}
	return n, nil
}

// Book reserves an itinerary from the last search by its printed index.
func (a *App) Book(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Itinerary number")
	if err != nil {
		return err
	}
	printlnFn(a.svc.Book(ctx, a.sess, id))
	return nil
}

// Pay settles a reservation by id.
func (a *App) Pay(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Reservation ID")
	if err != nil {
		return err
	}
	printlnFn(a.svc.Pay(ctx, a.sess, id))
	return nil
}

// Reservations lists the logged-in user's reservations.
func (a *App) Reservations(ctx context.Context) error {
	printlnFn(a.svc.Reservations(ctx, a.sess))
	return nil
}
