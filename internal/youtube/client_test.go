package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearchChannelID_MissingKey(t *testing.T) {
	c := NewClient("")
	_, err := c.SearchChannelID(context.Background(), "creator")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestSearchChannelID_FirstResultWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %s, want /search", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("type") != "channel" || q.Get("q") != "VizlaGaming" {
			t.Errorf("unexpected query: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"snippet":{"channelId":"UCfirstFirstFirstFirstXX"}},
			{"snippet":{"channelId":"UCsecondSecondSecondSeXX"}}
		]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	id, err := c.SearchChannelID(context.Background(), "VizlaGaming")
	if err != nil {
		t.Fatalf("SearchChannelID returned error: %v", err)
	}
	if id != "UCfirstFirstFirstFirstXX" {
		t.Errorf("id = %q, want first result", id)
	}
}

func TestSearchChannelID_NoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.SearchChannelID(context.Background(), "nobody")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("err = %v, want ErrNoResults", err)
	}
}

func TestChannelTitle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/channels" {
			t.Errorf("path = %s, want /channels", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "UCAbCdEfGhIjKlMnOpQrStUv" {
			t.Errorf("id = %q", got)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"UCAbCdEfGhIjKlMnOpQrStUv","snippet":{"title":"Vizla Gaming"}}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	title, err := c.ChannelTitle(context.Background(), "UCAbCdEfGhIjKlMnOpQrStUv")
	if err != nil {
		t.Fatalf("ChannelTitle returned error: %v", err)
	}
	if title != "Vizla Gaming" {
		t.Errorf("title = %q, want Vizla Gaming", title)
	}
}

func TestSearchVideos_QueryAndMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("type") != "video" || q.Get("order") != "date" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("publishedAfter") != "2025-01-01T00:00:00Z" {
			t.Errorf("publishedAfter = %q", q.Get("publishedAfter"))
		}
		if q.Get("publishedBefore") != "2025-01-31T23:59:59Z" {
			t.Errorf("publishedBefore = %q", q.Get("publishedBefore"))
		}
		if q.Get("maxResults") != "25" {
			t.Errorf("maxResults = %q", q.Get("maxResults"))
		}
		_, _ = w.Write([]byte(`{"items":[
			{"id":{"videoId":"abc123"},"snippet":{
				"title":"A video",
				"publishedAt":"2025-01-15T10:00:00Z",
				"thumbnails":{"medium":{"url":"https://i.ytimg.com/vi/abc123/mqdefault.jpg"}}
			}},
			{"id":{"channelId":"UCnotAVideoNotAVideoNoXX"},"snippet":{"title":"not a video"}}
		]}`))
	}))
	defer srv.Close()

	after := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	c := NewClientWithBaseURL("test-key", srv.URL)
	videos, err := c.SearchVideos(context.Background(), "UCAbCdEfGhIjKlMnOpQrStUv", after, before, 25)
	if err != nil {
		t.Fatalf("SearchVideos returned error: %v", err)
	}

	if len(videos) != 1 {
		t.Fatalf("videos = %d, want 1 (items without a videoId are skipped)", len(videos))
	}
	v := videos[0]
	if v.ID != "abc123" || v.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("video = %+v", v)
	}
	if v.Selected {
		t.Error("fetched videos must start unselected")
	}
	if string(v.Format) != "VIDEO" {
		t.Errorf("format = %s, want default VIDEO", v.Format)
	}
	if v.Thumbnail != "https://i.ytimg.com/vi/abc123/mqdefault.jpg" {
		t.Errorf("thumbnail = %q", v.Thumbnail)
	}
	if !v.PublishedAt.Equal(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("publishedAt = %v", v.PublishedAt)
	}
}

func TestSearchVideos_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	_, err := c.SearchVideos(context.Background(), "UCAbCdEfGhIjKlMnOpQrStUv", time.Now().Add(-time.Hour), time.Now(), 25)
	if err == nil {
		t.Fatal("expected error on 403")
	}
}
