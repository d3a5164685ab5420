package service

import (
	"testing"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

func seedSession(t *testing.T, s *SessionService, userKey string, ids ...string) {
	t.Helper()
	videos := make([]model.Video, 0, len(ids))
	for _, id := range ids {
		videos = append(videos, mkVideo(id, time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)))
	}
	gen := s.NextFetchGeneration(userKey)
	if !s.ApplyFetch(userKey, gen, 2, 2025, videos) {
		t.Fatal("seed fetch did not apply")
	}
}

func TestToggle_SelfInverse(t *testing.T) {
	s := NewSessionService()
	seedSession(t, s, "user1", "a", "b", "c")

	s.Toggle("user1", "b")
	videos := s.Videos("user1")
	if !videos[1].Selected {
		t.Fatal("toggle did not select b")
	}
	if videos[0].Selected || videos[2].Selected {
		t.Error("toggle must leave other videos untouched")
	}

	s.Toggle("user1", "b")
	videos = s.Videos("user1")
	if videos[0].Selected || videos[1].Selected || videos[2].Selected {
		t.Error("double toggle must restore the original state")
	}
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	s := NewSessionService()
	seedSession(t, s, "user1", "a", "b")
	before := s.Videos("user1")

	s.Toggle("user1", "nope")

	after := s.Videos("user1")
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("video %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestSetFormat_IdempotentAndScoped(t *testing.T) {
	s := NewSessionService()
	seedSession(t, s, "user1", "a", "b")

	s.SetFormat("user1", "a", model.FormatShorts)
	s.SetFormat("user1", "a", model.FormatShorts)

	videos := s.Videos("user1")
	if videos[0].Format != model.FormatShorts {
		t.Errorf("a format = %s, want SHORTS", videos[0].Format)
	}
	if videos[1].Format != model.FormatVideo {
		t.Errorf("b format = %s, want default VIDEO", videos[1].Format)
	}

	s.SetFormat("user1", "nope", model.FormatLive)
	if got := s.Videos("user1"); got[0].Format != model.FormatShorts || got[1].Format != model.FormatVideo {
		t.Error("unknown ID must be a no-op")
	}
}

func TestSelected_PreservesFetchOrder(t *testing.T) {
	s := NewSessionService()
	seedSession(t, s, "user1", "a", "b", "c", "d")

	s.Toggle("user1", "d")
	s.Toggle("user1", "a")
	s.Toggle("user1", "c")

	selected := s.Selected("user1")
	if len(selected) != 3 {
		t.Fatalf("selected %d videos, want 3", len(selected))
	}
	want := []string{"a", "c", "d"}
	for i, id := range want {
		if selected[i].ID != id {
			t.Errorf("selected[%d] = %s, want %s (fetch order)", i, selected[i].ID, id)
		}
	}
}

func TestClearSelected_KeepsFormats(t *testing.T) {
	s := NewSessionService()
	seedSession(t, s, "user1", "a", "b")

	s.Toggle("user1", "a")
	s.SetFormat("user1", "a", model.FormatLive)
	s.ClearSelected("user1")

	videos := s.Videos("user1")
	if videos[0].Selected {
		t.Error("clear must reset the selected flag")
	}
	if videos[0].Format != model.FormatLive {
		t.Errorf("format = %s, want LIVE preserved across clear", videos[0].Format)
	}
}

func TestBeginSubmit_NonReentrant(t *testing.T) {
	s := NewSessionService()

	if !s.BeginSubmit("user1") {
		t.Fatal("first BeginSubmit must succeed")
	}
	if s.BeginSubmit("user1") {
		t.Error("second BeginSubmit must fail while in flight")
	}
	if !s.BeginSubmit("user2") {
		t.Error("other creators are unaffected")
	}

	s.EndSubmit("user1")
	if !s.BeginSubmit("user1") {
		t.Error("BeginSubmit must succeed again after EndSubmit")
	}
}

func TestSessions_IsolatedPerUser(t *testing.T) {
	s := NewSessionService()
	seedSession(t, s, "user1", "a")
	seedSession(t, s, "user2", "x", "y")

	s.Toggle("user1", "a")

	if got := s.Selected("user2"); len(got) != 0 {
		t.Errorf("user2 selection = %d videos, want 0", len(got))
	}
	if got := s.Videos("user2"); len(got) != 2 {
		t.Errorf("user2 videos = %d, want 2", len(got))
	}
}
