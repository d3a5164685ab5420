package service

import "github.com/sagarvizla/indus-creator-portal/internal/model"

// notificationSlot is the two-state modal machine: Closed, or Open with
// one kind and message. Show from any state overwrites the slot; there
// is no queue, so callers wanting two outcomes in sequence must wait for
// the first dismissal.
type notificationSlot struct {
	current model.Notification
}

func (n *notificationSlot) Show(kind model.NotificationKind, message string) {
	n.current = model.Notification{IsOpen: true, Kind: kind, Message: message}
}

// Dismiss closes the slot. Dismissing a closed slot is a no-op.
func (n *notificationSlot) Dismiss() {
	n.current = model.Notification{}
}

func (n *notificationSlot) Current() model.Notification {
	return n.current
}
