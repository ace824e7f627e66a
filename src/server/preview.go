package server

import (
	"net/http"
	"path"
	"sync"
)

type previewUrls struct {
	Page   string
	Events string
}

func makePreviewUrls(base string) previewUrls {
	return previewUrls{
		Page:   path.Clean(base),
		Events: path.Join(base, "events"),
	}
}

// Preview serves one rendered page and tells connected browsers to reload
// whenever the page is replaced.
type Preview struct {
	broadcaster *broadcaster
	urls        previewUrls
	mu          sync.RWMutex
	page        []byte
}

const DefaultPreviewUrl = "/preview"

func NewPreview(base string) *Preview {
	return &Preview{
		broadcaster: newBroadcaster(),
		urls:        makePreviewUrls(base),
	}
}

// EventsUrl is the server-sent events stream the page should listen on.
func (p *Preview) EventsUrl() string {
	return p.urls.Events
}

func (p *Preview) SetPage(page string) {
	p.mu.Lock()
	p.page = []byte(page)
	p.mu.Unlock()
	p.broadcaster.Broadcast("reload")
}

// Page returns the current page, nil before the first SetPage.
func (p *Preview) Page() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.page
}

// Handler serves the preview routes and hands everything else to h.
func (p *Preview) Handler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case p.urls.Page:
			page := p.Page()

			if page == nil {
				http.Error(w, "preview not ready", http.StatusServiceUnavailable)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(page)
		case p.urls.Events:
			p.broadcaster.ServeHTTP(w, r)
		default:
			if h != nil {
				h.ServeHTTP(w, r)
			} else {
				http.NotFound(w, r)
			}
		}
	})
}
