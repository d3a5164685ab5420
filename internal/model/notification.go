package model

// NotificationKind is the severity of a portal notification.
type NotificationKind string

const (
	NotifyError   NotificationKind = "error"
	NotifySuccess NotificationKind = "success"
	NotifyInfo    NotificationKind = "info"
)

// Notification is the single-slot modal state surfaced to the creator.
// A new Show overwrites whatever is open; there is no queue.
type Notification struct {
	IsOpen  bool             `json:"isOpen"`
	Kind    NotificationKind `json:"kind,omitempty"`
	Message string           `json:"message,omitempty"`
}
