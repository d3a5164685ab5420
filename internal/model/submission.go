package model

import "time"

// SubmissionEntry is one selected video flattened for the downstream
// sheet. Entries are built transiently per submit call and not retained.
type SubmissionEntry struct {
	Link        string    `json:"link"`
	Title       string    `json:"title"`
	Format      Format    `json:"format"`
	Month       string    `json:"month"`
	PublishedAt time.Time `json:"publishedAt"`
}

// SubmissionRequest is the payload posted to the submission sink.
// SheetName is the resolved channel title; the sink files entries under
// a tab of that name.
type SubmissionRequest struct {
	SheetName string            `json:"sheetName"`
	Entries   []SubmissionEntry `json:"entries"`
}

// SinkResponse is the sink's reply. Status is authoritative: "success"
// commits the batch, anything else is a failure even on HTTP 200.
type SinkResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// SubmitResponse is the API response for a completed submission.
type SubmitResponse struct {
	SubmittedCount int    `json:"submittedCount"`
	SheetName      string `json:"sheetName"`
}
