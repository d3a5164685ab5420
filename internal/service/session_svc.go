package service

import (
	"sync"
	"time"

	"github.com/sagarvizla/indus-creator-portal/internal/model"
)

// session is one creator's in-memory curation state: the videos of the
// last applied month fetch, the fetch generation counters, the submit
// in-flight flag, and the notification slot. Nothing here survives a
// restart; only the channel binding is durable.
type session struct {
	videos     []model.Video
	month      int
	year       int
	issuedGen  uint64
	appliedGen uint64
	inFlight   bool
	notify     notificationSlot
}

// SessionService owns per-creator sessions keyed by user key. A single
// mutex is enough: selection mutations are tiny and strictly ordered per
// creator by their own UI events.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*session)}
}

func (s *SessionService) get(userKey string) *session {
	sess, ok := s.sessions[userKey]
	if !ok {
		sess = &session{}
		s.sessions[userKey] = sess
	}
	return sess
}

// NextFetchGeneration issues a token for a new month fetch. A response
// is applied only while its token is still the newest issued one, so a
// slow older fetch can never overwrite a newer month's videos.
func (s *SessionService) NextFetchGeneration(userKey string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	sess.issuedGen++
	return sess.issuedGen
}

// ApplyFetch replaces the whole video set for the given month window.
// Stale generations are discarded and reported false. Replacement is
// wholesale: prior selection flags and formats are gone.
func (s *SessionService) ApplyFetch(userKey string, gen uint64, month, year int, videos []model.Video) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	if gen != sess.issuedGen || gen <= sess.appliedGen {
		return false
	}
	sess.appliedGen = gen
	sess.month = month
	sess.year = year
	sess.videos = make([]model.Video, len(videos))
	copy(sess.videos, videos)
	return true
}

// Videos returns a copy of the current video set in fetch order.
func (s *SessionService) Videos(userKey string) []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	out := make([]model.Video, len(sess.videos))
	copy(out, sess.videos)
	return out
}

// MonthName returns the English month name of the last applied fetch,
// or "" when nothing has been fetched yet.
func (s *SessionService) MonthName(userKey string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	if sess.appliedGen == 0 {
		return ""
	}
	return time.Month(sess.month + 1).String()
}

// Toggle flips exactly the named video's selected flag. Unknown IDs are
// a no-op: the UI only references IDs it rendered.
func (s *SessionService) Toggle(userKey, videoID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	for i := range sess.videos {
		if sess.videos[i].ID == videoID {
			sess.videos[i].Selected = !sess.videos[i].Selected
			return
		}
	}
}

// SetFormat tags the named video. Unknown IDs are a no-op.
func (s *SessionService) SetFormat(userKey, videoID string, format model.Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	for i := range sess.videos {
		if sess.videos[i].ID == videoID {
			sess.videos[i].Format = format
			return
		}
	}
}

// Selected returns the selected subsequence in fetch order.
func (s *SessionService) Selected(userKey string) []model.Video {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	var out []model.Video
	for _, v := range sess.videos {
		if v.Selected {
			out = append(out, v)
		}
	}
	return out
}

// ClearSelected resets every selected flag after a confirmed submission.
// Formats stay as the creator set them.
func (s *SessionService) ClearSelected(userKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	for i := range sess.videos {
		sess.videos[i].Selected = false
	}
}

// BeginSubmit marks a submission in flight. It returns false if one is
// already outstanding, making submit non-reentrant per creator.
func (s *SessionService) BeginSubmit(userKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.get(userKey)
	if sess.inFlight {
		return false
	}
	sess.inFlight = true
	return true
}

func (s *SessionService) EndSubmit(userKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userKey).inFlight = false
}

// Notify overwrites the creator's notification slot.
func (s *SessionService) Notify(userKey string, kind model.NotificationKind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userKey).notify.Show(kind, message)
}

func (s *SessionService) Notification(userKey string) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(userKey).notify.Current()
}

func (s *SessionService) Dismiss(userKey string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userKey).notify.Dismiss()
}
