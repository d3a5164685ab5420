package service

import (
	"context"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

// CatalogProvider is the upstream video catalog (YouTube Data API).
type CatalogProvider interface {
	SearchChannelID(ctx context.Context, handle string) (string, error)
	ChannelTitle(ctx context.Context, channelID string) (string, error)
	SearchVideos(ctx context.Context, channelID string, after, before time.Time, maxResults int) ([]model.Video, error)
}

// BindingStore is the durable single-row channel binding per creator.
type BindingStore interface {
	CurrentBinding(ctx context.Context, userKey string) (*model.ChannelBinding, error)
	TryBind(ctx context.Context, userKey, channelID string) (*model.ChannelBinding, error)
	MaxChanges() int
}

// SubmissionSink accepts one curated batch per call. A nil return means
// the sink explicitly confirmed the batch.
type SubmissionSink interface {
	Submit(ctx context.Context, req model.SubmissionRequest) error
}
