package booking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/flightbook/internal/models"
	"github.com/dmitrijs2005/flightbook/internal/session"
)

// Search finds up to maxResults itineraries from origin to dest on the given
// day of month: direct flights first, then, unless directOnly is set, two-hop
// combinations to fill the remainder. The combined list is sorted by total
// duration ascending with flight-id tie-breaks and replaces the session's
// previous search result wholesale; indices into the old list become invalid.
//
// Search reads only the catalog and writes only the caller's session, so it
// needs no transaction and is safe to run concurrently with any operation.
func (s *Service) Search(ctx context.Context, sess *session.Session, origin, dest string, directOnly bool, day, maxResults int) string {
	repo := s.repos.Flights(s.db)

	direct, err := repo.FindDirect(ctx, origin, dest, day, maxResults)
	if err != nil {
		s.logger.Error(ctx, "direct flight search failed", "error", err, "session_id", sess.ID())
		return "Failed to search"
	}

	itineraries := make([]models.Itinerary, 0, maxResults)
	for _, f := range direct {
		itineraries = append(itineraries, models.NewDirectItinerary(f))
	}

	if left := maxResults - len(itineraries); !directOnly && left > 0 {
		pairs, err := repo.FindConnecting(ctx, origin, dest, day, left)
		if err != nil {
			s.logger.Error(ctx, "connecting flight search failed", "error", err, "session_id", sess.ID())
			return "Failed to search"
		}
		for _, p := range pairs {
			itineraries = append(itineraries, models.NewConnectingItinerary(p.First, p.Second))
		}
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].Less(itineraries[j])
	})

	sess.SetItineraries(itineraries)

	if len(itineraries) == 0 {
		return "No flights match your selection"
	}

	var sb strings.Builder
	for i, it := range itineraries {
		fmt.Fprintf(&sb, "Itinerary %d: %s\n", i, it)
	}
	return strings.TrimRight(sb.String(), "\n")
}
