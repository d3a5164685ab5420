package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
	"github.com/sagarvizla/indus-creator-portal/internal/sink"
)

type fakeSink struct {
	calls   int
	err     error
	lastReq model.SubmissionRequest
	blockOn chan struct{} // when set, Submit waits until closed
	started chan struct{} // signals a call entered Submit
}

func (f *fakeSink) Submit(ctx context.Context, req model.SubmissionRequest) error {
	f.calls++
	f.lastReq = req
	if f.started != nil {
		close(f.started)
		f.started = nil
	}
	if f.blockOn != nil {
		<-f.blockOn
	}
	return f.err
}

func seedSelection(t *testing.T, sessions *SessionService, userKey string) {
	t.Helper()
	published := time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)
	videos := []model.Video{
		mkVideo("a", published),
		mkVideo("b", published.Add(time.Hour)),
		mkVideo("c", published.Add(2*time.Hour)),
	}
	gen := sessions.NextFetchGeneration(userKey)
	if !sessions.ApplyFetch(userKey, gen, 4, 2025, videos) {
		t.Fatal("seed fetch did not apply")
	}
}

func TestSubmit_ChannelNotReady(t *testing.T) {
	snk := &fakeSink{}
	sessions := NewSessionService()
	svc := NewSubmissionService(sessions, snk)

	_, err := svc.Submit(context.Background(), "user1", "")
	if !errors.Is(err, ErrChannelNotReady) {
		t.Fatalf("err = %v, want ErrChannelNotReady", err)
	}
	if snk.calls != 0 {
		t.Errorf("sink called %d times, want 0", snk.calls)
	}
}

func TestSubmit_EmptySelection_NoDispatch(t *testing.T) {
	snk := &fakeSink{}
	sessions := NewSessionService()
	seedSelection(t, sessions, "user1")
	svc := NewSubmissionService(sessions, snk)

	_, err := svc.Submit(context.Background(), "user1", "My Channel")
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("err = %v, want ErrEmptySelection", err)
	}
	if snk.calls != 0 {
		t.Errorf("sink called %d times, want 0 for empty selection", snk.calls)
	}
}

func TestSubmit_Success_EntriesAndClear(t *testing.T) {
	snk := &fakeSink{}
	sessions := NewSessionService()
	seedSelection(t, sessions, "user1")
	sessions.Toggle("user1", "a")
	sessions.Toggle("user1", "c")
	sessions.SetFormat("user1", "c", model.FormatShorts)

	svc := NewSubmissionService(sessions, snk)
	resp, err := svc.Submit(context.Background(), "user1", "My Channel")
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if resp.SubmittedCount != 2 {
		t.Errorf("SubmittedCount = %d, want 2", resp.SubmittedCount)
	}
	if snk.calls != 1 {
		t.Fatalf("sink called %d times, want exactly 1", snk.calls)
	}
	if snk.lastReq.SheetName != "My Channel" {
		t.Errorf("SheetName = %q, want %q", snk.lastReq.SheetName, "My Channel")
	}
	if len(snk.lastReq.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(snk.lastReq.Entries))
	}
	if snk.lastReq.Entries[0].Link != "https://www.youtube.com/watch?v=a" {
		t.Errorf("entry 0 link = %q", snk.lastReq.Entries[0].Link)
	}
	if snk.lastReq.Entries[1].Format != model.FormatShorts {
		t.Errorf("entry 1 format = %s, want SHORTS", snk.lastReq.Entries[1].Format)
	}
	if snk.lastReq.Entries[0].Month != "May" {
		t.Errorf("entry month = %q, want May", snk.lastReq.Entries[0].Month)
	}

	// All three videos are deselected afterwards, formats preserved.
	videos := sessions.Videos("user1")
	for _, v := range videos {
		if v.Selected {
			t.Errorf("video %s still selected after success", v.ID)
		}
	}
	if videos[2].Format != model.FormatShorts {
		t.Error("formats must survive the post-success clear")
	}
}

func TestSubmit_SinkError_KeepsSelection(t *testing.T) {
	snk := &fakeSink{err: &sink.Error{Message: "db down"}}
	sessions := NewSessionService()
	seedSelection(t, sessions, "user1")
	sessions.Toggle("user1", "a")
	sessions.Toggle("user1", "b")

	svc := NewSubmissionService(sessions, snk)
	_, err := svc.Submit(context.Background(), "user1", "My Channel")

	var sinkErr *sink.Error
	if !errors.As(err, &sinkErr) || sinkErr.Message != "db down" {
		t.Fatalf("err = %v, want sink error carrying %q", err, "db down")
	}

	if got := sessions.Selected("user1"); len(got) != 2 {
		t.Errorf("selection = %d videos after failure, want 2 unchanged", len(got))
	}
}

func TestSubmit_NonReentrant(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	snk := &fakeSink{blockOn: release, started: started}
	sessions := NewSessionService()
	seedSelection(t, sessions, "user1")
	sessions.Toggle("user1", "a")

	svc := NewSubmissionService(sessions, snk)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "user1", "My Channel")
		done <- err
	}()
	<-started

	// Second submit while the first is blocked inside the sink.
	_, err := svc.Submit(context.Background(), "user1", "My Channel")
	if !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("err = %v, want ErrSubmitInFlight", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit returned error: %v", err)
	}
	if snk.calls != 1 {
		t.Errorf("sink called %d times, want 1", snk.calls)
	}
}
