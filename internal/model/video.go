package model

import "time"

// Format is the creator-assigned classification for a selected video.
// It is never inferred from upstream metadata; every fetched video starts
// as FormatVideo and only the creator changes it.
type Format string

const (
	FormatVideo  Format = "VIDEO"
	FormatShorts Format = "SHORTS"
	FormatLive   Format = "LIVE"
)

// ValidFormats enumerates the accepted format tags.
var ValidFormats = map[Format]bool{
	FormatVideo:  true,
	FormatShorts: true,
	FormatLive:   true,
}

// Video is one upload from the bound channel's month window, plus the
// creator's in-memory curation state. The whole set is rebuilt on every
// fetch; nothing here is persisted.
type Video struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Thumbnail   string    `json:"thumbnail"`
	PublishedAt time.Time `json:"publishedAt"`
	Selected    bool      `json:"selected"`
	Format      Format    `json:"format"`
}

// VideoListResponse is the API response for a month-window fetch.
type VideoListResponse struct {
	Month  int     `json:"month"`
	Year   int     `json:"year"`
	Videos []Video `json:"videos"`
}

// FormatRequest is the body of PUT /api/videos/:videoId/format.
type FormatRequest struct {
	Format Format `json:"format"`
}
