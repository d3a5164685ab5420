package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

// ErrChangeLimitExceeded means the creator has used up every allowed
// channel change. The limit is client-visible state, so callers surface
// a distinct message rather than a generic failure.
var ErrChangeLimitExceeded = errors.New("channel change limit exceeded")

type BindingRepo struct {
	pool       *pgxpool.Pool
	maxChanges int
}

func NewBindingRepo(pool *pgxpool.Pool, maxChanges int) *BindingRepo {
	if maxChanges <= 0 {
		maxChanges = model.MaxChannelChanges
	}
	return &BindingRepo{pool: pool, maxChanges: maxChanges}
}

func (r *BindingRepo) MaxChanges() int {
	return r.maxChanges
}

// CurrentBinding returns the creator's binding, or nil when unbound.
func (r *BindingRepo) CurrentBinding(ctx context.Context, userKey string) (*model.ChannelBinding, error) {
	query := `
		SELECT user_key, channel_id, change_count, updated_at
		FROM channel_bindings
		WHERE user_key = $1`

	var b model.ChannelBinding
	err := r.pool.QueryRow(ctx, query, userKey).Scan(
		&b.UserKey, &b.ChannelID, &b.ChangeCount, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	b.MaxChanges = r.maxChanges
	return &b, nil
}

// TryBind stores the channel ID and bumps the change counter in one
// statement. The WHERE guard on the upsert makes the cap atomic: a row
// already at the limit is left untouched and the call reports
// ErrChangeLimitExceeded. No partial update is ever visible.
func (r *BindingRepo) TryBind(ctx context.Context, userKey, channelID string) (*model.ChannelBinding, error) {
	query := `
		INSERT INTO channel_bindings (user_key, channel_id, change_count, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (user_key) DO UPDATE
		SET channel_id = EXCLUDED.channel_id,
		    change_count = channel_bindings.change_count + 1,
		    updated_at = NOW()
		WHERE channel_bindings.change_count < $3
		RETURNING user_key, channel_id, change_count, updated_at`

	var b model.ChannelBinding
	err := r.pool.QueryRow(ctx, query, userKey, channelID, r.maxChanges).Scan(
		&b.UserKey, &b.ChannelID, &b.ChangeCount, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Upsert guard rejected the update: the row exists and is at cap.
		return nil, ErrChangeLimitExceeded
	}
	if err != nil {
		return nil, err
	}
	b.MaxChanges = r.maxChanges
	return &b, nil
}
