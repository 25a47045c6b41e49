package cli

import (
	"context"
	"os"
)

// Search prompts for the route, day and result count and prints the ranked
// itineraries. The result list stays attached to the session so a following
// "book" can address it by index.
func (a *App) Search(ctx context.Context) error {
	origin, err := getSimpleText(a.reader, "Origin city", os.Stdout)
	if err != nil {
		return err
	}
	dest, err := getSimpleText(a.reader, "Destination city", os.Stdout)
	if err != nil {
		return err
	}
	directOnly, err := getYesNo(a.reader, "Direct flights only?", os.Stdout)
	if err != nil {
		return err
	}
	day, err := getInt(a.reader, "Day of month", os.Stdout)
	if err != nil {
		return err
	}
	count, err := getInt(a.reader, "Number of itineraries", os.Stdout)
	if err != nil {
		return err
	}

	printlnFn(a.svc.Search(ctx, a.sess, origin, dest, directOnly, day, count))
	return nil
}
