package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/sagarvizla/indus-creator-portal/internal/youtube"
)

const canonicalIDLen = 24

var (
	// channelURLRe extracts the canonical ID from a channel link
	// (youtube.com/channel/UC...).
	channelURLRe = regexp.MustCompile(`channel/(UC[a-zA-Z0-9_-]{22})`)
	// handleRe matches a handle token anywhere in the input, raw or
	// inside a URL (@creator, youtube.com/@creator).
	handleRe = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
)

// Resolver normalizes user-supplied channel references into a canonical
// channel ID. Patterns are tried in priority order; only the handle form
// costs an external lookup, and at most one.
type Resolver struct {
	catalog CatalogProvider
}

func NewResolver(catalog CatalogProvider) *Resolver {
	return &Resolver{catalog: catalog}
}

func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	// Raw canonical ID, accepted verbatim.
	if strings.HasPrefix(trimmed, "UC") && len(trimmed) == canonicalIDLen {
		return trimmed, nil
	}

	// Canonical ID embedded in a channel link.
	if m := channelURLRe.FindStringSubmatch(trimmed); m != nil {
		return m[1], nil
	}

	// Handle token: one search against the provider, first result wins.
	if m := handleRe.FindStringSubmatch(trimmed); m != nil {
		id, err := r.catalog.SearchChannelID(ctx, m[1])
		switch {
		case err == nil:
			return id, nil
		case errors.Is(err, youtube.ErrNoResults):
			return "", ErrHandleNotFound
		case errors.Is(err, youtube.ErrMissingAPIKey):
			return "", ErrMissingCredential
		default:
			return "", fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}
	}

	return "", ErrNoPattern
}
