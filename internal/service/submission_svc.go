package service

import (
	"context"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

// SubmissionService turns the current selection into one sink dispatch.
// At most one attempt per user action, no dedup against prior batches:
// resubmitting the same selection produces a duplicate downstream row,
// which is accepted behavior.
type SubmissionService struct {
	sessions *SessionService
	sink     SubmissionSink
}

func NewSubmissionService(sessions *SessionService, sink SubmissionSink) *SubmissionService {
	return &SubmissionService{sessions: sessions, sink: sink}
}

// Submit checks preconditions in order (channel ready, then non-empty
// selection), builds one entry per selected video in selection order,
// and dispatches a single request. Selected flags are cleared only on
// the sink's explicit success; formats are left as the creator set them.
func (s *SubmissionService) Submit(ctx context.Context, userKey, channelTitle string) (*model.SubmitResponse, error) {
	if channelTitle == "" {
		return nil, ErrChannelNotReady
	}

	if !s.sessions.BeginSubmit(userKey) {
		return nil, ErrSubmitInFlight
	}
	defer s.sessions.EndSubmit(userKey)

	selection := s.sessions.Selected(userKey)
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	month := s.sessions.MonthName(userKey)
	entries := make([]model.SubmissionEntry, 0, len(selection))
	for _, v := range selection {
		entries = append(entries, model.SubmissionEntry{
			Link:        v.URL,
			Title:       v.Title,
			Format:      v.Format,
			Month:       month,
			PublishedAt: v.PublishedAt,
		})
	}

	req := model.SubmissionRequest{
		SheetName: channelTitle,
		Entries:   entries,
	}
	if err := s.sink.Submit(ctx, req); err != nil {
		return nil, err
	}

	s.sessions.ClearSelected(userKey)

	return &model.SubmitResponse{
		SubmittedCount: len(entries),
		SheetName:      channelTitle,
	}, nil
}
