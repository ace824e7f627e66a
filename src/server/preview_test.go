package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPreviewServesLatestPage(t *testing.T) {
	t.Parallel()

	preview := NewPreview(DefaultPreviewUrl)
	opt := DefaultOptions()
	opt.Preview = preview
	h := newTestServer(opt)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/preview", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status before first page = %d, want 503", rec.Code)
	}

	preview.SetPage("<p>one</p>")
	preview.SetPage("<p>two</p>")

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/preview", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "<p>two</p>" {
		t.Fatalf("preview = %d %q", rec.Code, rec.Body.String())
	}

	if preview.EventsUrl() != "/preview/events" {
		t.Fatalf("events url = %q", preview.EventsUrl())
	}

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("API behind preview: status %d", rec.Code)
	}
}

func TestBroadcaster(t *testing.T) {
	t.Parallel()

	b := newBroadcaster()

	first := make(chan string, 1)
	second := make(chan string, 1)
	b.AddClient(first)
	b.AddClient(second)

	b.Broadcast("reload")
	// second is full, so this one is dropped for it
	<-first
	b.Broadcast("again")

	if got := <-first; got != "again" {
		t.Fatalf("first got %q", got)
	}

	if got := <-second; got != "reload" {
		t.Fatalf("second got %q", got)
	}

	b.RemoveClient(first)
	if _, ok := <-first; ok {
		t.Fatal("removed client channel still open")
	}

	if b.Clients() != 1 {
		t.Fatalf("clients = %d, want 1", b.Clients())
	}
}

func TestBroadcasterStream(t *testing.T) {
	t.Parallel()

	b := newBroadcaster()
	srv := httptest.NewServer(b)
	defer srv.Close()

	res, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()

	if ct := res.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	buf := make([]byte, 5)
	if _, err := io.ReadFull(res.Body, buf); err != nil || string(buf) != ":ok\n\n" {
		t.Fatalf("preamble = %q, %v", buf, err)
	}

	for b.Clients() == 0 {
		time.Sleep(time.Millisecond)
	}
	b.Broadcast("reload")

	var got strings.Builder
	chunk := make([]byte, 64)
	for !strings.Contains(got.String(), "data: reload\n\n") {
		n, err := res.Body.Read(chunk)
		if err != nil {
			t.Fatalf("read: %v (so far %q)", err, got.String())
		}
		got.Write(chunk[:n])
	}

	if !strings.HasPrefix(got.String(), "event: update\n") {
		t.Fatalf("event = %q", got.String())
	}
}

func TestWatchFile(t *testing.T) {
	t.Parallel()

	name := filepath.Join(t.TempDir(), "openapi.yaml")
	if err := os.WriteFile(name, []byte("a: 1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher, err := WatchFile(name, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("WatchFile: %v", err)
	}
	defer watcher.Close()

	if err := os.WriteFile(name, []byte("a: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-watcher.Update:
		if err != nil {
			t.Fatalf("update error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no update after write")
	}
}

func TestWatchFileMissingDirectory(t *testing.T) {
	t.Parallel()

	if _, err := WatchFile(filepath.Join(t.TempDir(), "nope", "openapi.yaml"), DEFAULT_DEBOUNCE_TIME); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}

// stallingWriter blocks in Write until release is closed.
type stallingWriter struct {
	header  http.Header
	writing chan struct{}
	release chan struct{}
}

func (w *stallingWriter) Header() http.Header { return w.header }

func (w *stallingWriter) WriteHeader(int) {}

func (w *stallingWriter) Write(b []byte) (int, error) {
	close(w.writing)
	<-w.release
	return len(b), nil
}

func TestPreviewSlowClientDoesNotBlockSetPage(t *testing.T) {
	t.Parallel()

	preview := NewPreview(DefaultPreviewUrl)
	preview.SetPage("<p>one</p>")

	w := &stallingWriter{
		header:  http.Header{},
		writing: make(chan struct{}),
		release: make(chan struct{}),
	}
	defer close(w.release)

	go preview.Handler(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/preview", nil))
	<-w.writing

	done := make(chan struct{})
	go func() {
		preview.SetPage("<p>two</p>")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("SetPage blocked behind a slow preview client")
	}

	if got := string(preview.Page()); got != "<p>two</p>" {
		t.Fatalf("page = %q", got)
	}
}
