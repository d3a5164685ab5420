// Package youtube is the portal's client for the YouTube Data API v3:
// handle lookup, channel details, and month-window video search.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Sentinel errors for catalog operations.
var (
	ErrMissingAPIKey = errors.New("youtube: api key not configured")
	ErrNoResults     = errors.New("youtube: no results")
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

// SearchChannelID resolves a handle (without the leading @) to a canonical
// channel ID via one channel search, taking the first result.
func (c *Client) SearchChannelID(ctx context.Context, handle string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "channel")
	q.Set("q", handle)
	q.Set("key", c.apiKey)

	var resp searchResponse
	if err := c.get(ctx, "/search", q, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", ErrNoResults
	}

	if id := resp.Items[0].Snippet.ChannelID; id != "" {
		return id, nil
	}
	if id := resp.Items[0].ID.ChannelID; id != "" {
		return id, nil
	}
	return "", ErrNoResults
}

// ChannelTitle returns the display title for a channel ID.
func (c *Client) ChannelTitle(ctx context.Context, channelID string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("id", channelID)
	q.Set("key", c.apiKey)

	var resp channelListResponse
	if err := c.get(ctx, "/channels", q, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", ErrNoResults
	}
	return resp.Items[0].Snippet.Title, nil
}

// SearchVideos lists uploads of the channel published inside the inclusive
// window, newest first, capped at maxResults. There is no pagination: the
// provider cap is the portal's accepted limit per month.
func (c *Client) SearchVideos(ctx context.Context, channelID string, after, before time.Time, maxResults int) ([]model.Video, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("type", "video")
	q.Set("order", "date")
	q.Set("channelId", channelID)
	q.Set("publishedAfter", after.UTC().Format(time.RFC3339))
	q.Set("publishedBefore", before.UTC().Format(time.RFC3339))
	q.Set("maxResults", strconv.Itoa(maxResults))
	q.Set("key", c.apiKey)

	var resp searchResponse
	if err := c.get(ctx, "/search", q, &resp); err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID.VideoID == "" {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			continue
		}
		thumb := item.Snippet.Thumbnails.Medium.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, model.Video{
			ID:          item.ID.VideoID,
			URL:         "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			Title:       item.Snippet.Title,
			Thumbnail:   thumb,
			PublishedAt: publishedAt,
			Selected:    false,
			Format:      model.FormatVideo,
		})
	}
	return videos, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("youtube: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return fmt.Errorf("youtube: api status %d: %s", resp.StatusCode, apiErr.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("youtube: decode response: %w", err)
	}
	return nil
}
