package server

import (
	"net/http"
	"slices"
	"sync"
)

type broadcaster struct {
	m       sync.Mutex
	clients []chan<- string
}

func newBroadcaster() *broadcaster {
	return &broadcaster{
		clients: make([]chan<- string, 0),
	}
}

func (b *broadcaster) AddClient(ch chan<- string) {
	b.m.Lock()
	b.clients = append(b.clients, ch)
	b.m.Unlock()
}

func (b *broadcaster) RemoveClient(ch chan<- string) {
	b.m.Lock()
	defer b.m.Unlock()

	idx := slices.Index(b.clients, ch)
	if idx == -1 {
		return
	}
	close(b.clients[idx])
	b.clients = slices.Delete(b.clients, idx, idx+1)
}

func (b *broadcaster) Clients() int {
	b.m.Lock()
	defer b.m.Unlock()
	return len(b.clients)
}

// Broadcast hands msg to every client that is ready for it. Slow clients
// miss the message rather than block the sender.
func (b *broadcaster) Broadcast(msg string) {
	b.m.Lock()
	for _, ch := range b.clients {
		select {
		case ch <- msg:
		default:
		}
	}
	b.m.Unlock()
}

func (b *broadcaster) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	msgCh := make(chan string, 1)
	b.AddClient(msgCh)
	defer b.RemoveClient(msgCh)

	notify := r.Context().Done()

	w.Write([]byte(":ok\n\n"))
	flusher.Flush()

	for {
		select {
		case <-notify:
			return
		case msg := <-msgCh:
			w.Write([]byte("event: update\n"))
			w.Write([]byte("data: " + msg + "\n\n"))
			flusher.Flush()
		}
	}
}

var _ http.Handler = (*broadcaster)(nil)
