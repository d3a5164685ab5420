package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
	"github.com/sagarvizla/indus-creator-portal/internal/youtube"
)

// CatalogService fetches one calendar month of uploads for the bound
// channel and swaps the result into the creator's session wholesale.
type CatalogService struct {
	catalog    CatalogProvider
	sessions   *SessionService
	maxResults int
}

func NewCatalogService(catalog CatalogProvider, sessions *SessionService, maxResults int) *CatalogService {
	if maxResults <= 0 {
		maxResults = 25
	}
	return &CatalogService{catalog: catalog, sessions: sessions, maxResults: maxResults}
}

// MonthWindow returns the inclusive UTC range spanning the first to last
// second of the given calendar month. month is 0-based (January = 0).
func MonthWindow(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// FetchMonth retrieves the month's uploads, newest first, capped at the
// provider limit (results beyond the cap are an accepted omission, not an
// error). The session's video set is fully replaced; no merge with the
// previous month. On provider failure the window is treated as empty.
// A fetch superseded by a newer one is discarded without touching state.
func (s *CatalogService) FetchMonth(ctx context.Context, userKey, channelID string, month, year int) ([]model.Video, error) {
	gen := s.sessions.NextFetchGeneration(userKey)
	after, before := MonthWindow(year, month)

	videos, err := s.catalog.SearchVideos(ctx, channelID, after, before, s.maxResults)
	if err != nil {
		// Failed window reads as empty; the stale set must not linger.
		s.sessions.ApplyFetch(userKey, gen, month, year, nil)
		if errors.Is(err, youtube.ErrMissingAPIKey) {
			return nil, ErrMissingCredential
		}
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	s.sessions.ApplyFetch(userKey, gen, month, year, videos)

	// Whether this fetch won or a newer one already landed, the session
	// now holds the authoritative set.
	return s.sessions.Videos(userKey), nil
}
