package model

import "time"

// MaxChannelChanges is how many times a creator may set or change their
// bound channel. The cap is enforced client-side in the original portal;
// here it is also enforced atomically in the store.
const MaxChannelChanges = 2

// ChannelBinding is the single durable record tying a creator to a
// YouTube channel.
type ChannelBinding struct {
	UserKey     string    `json:"-"`
	ChannelID   string    `json:"channelId"`
	ChangeCount int       `json:"changeCount"`
	MaxChanges  int       `json:"maxChanges"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ChangesLeft returns how many rebinds the creator has remaining.
func (b *ChannelBinding) ChangesLeft() int {
	left := b.MaxChanges - b.ChangeCount
	if left < 0 {
		return 0
	}
	return left
}

// BindRequest is the body of POST /api/channel. Input may be a raw UC
// identifier, a channel URL, or a handle.
type BindRequest struct {
	Input string `json:"input"`
}

// BindingResponse is the API response for channel binding lookups.
type BindingResponse struct {
	Bound        bool   `json:"bound"`
	ChannelID    string `json:"channelId,omitempty"`
	ChannelTitle string `json:"channelTitle,omitempty"`
	ChangeCount  int    `json:"changeCount"`
	ChangesLeft  int    `json:"changesLeft"`
}
