// Package sink posts curated batches to the downstream spreadsheet
// webhook. The backend behind the URL is opaque; the portal only relies
// on the {status, message} reply contract.
package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

var ErrNotConfigured = errors.New("sink: webhook url not configured")

// Error is a failure reported by the sink itself, carrying its message
// for the user-facing notification.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return "sink: " + e.Message
}

type Client struct {
	webAppURL string
	http      *http.Client
}

func NewClient(webAppURL string) *Client {
	return &Client{
		webAppURL: webAppURL,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit dispatches one batch. The reply's status field is authoritative:
// anything other than "success" is an *Error even on HTTP 200. The caller
// makes at most one attempt per user action; there are no retries here.
func (c *Client) Submit(ctx context.Context, req model.SubmissionRequest) error {
	if c.webAppURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("sink: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webAppURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sink: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("sink: request failed: %w", err)
	}
	defer resp.Body.Close()

	var reply model.SinkResponse
	if resp.StatusCode != http.StatusOK {
		_ = json.NewDecoder(resp.Body).Decode(&reply)
		if reply.Message != "" {
			return &Error{Message: reply.Message}
		}
		return &Error{Message: fmt.Sprintf("submission endpoint returned status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return fmt.Errorf("sink: decode response: %w", err)
	}
	if reply.Status != "success" {
		msg := reply.Message
		if msg == "" {
			msg = "submission was rejected"
		}
		return &Error{Message: msg}
	}
	return nil
}
