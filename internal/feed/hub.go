// Package feed streams pipeline messages to HTTP clients as server-sent events.
package feed

import (
	"sync"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/core"
)

// subscriberBuffer is how many messages a slow subscriber may lag behind
// before messages to it are dropped.
const subscriberBuffer = 32

// Hub broadcasts messages to all subscribed listeners. It implements
// core.Sink.
type Hub struct {
	mu        sync.RWMutex
	listeners map[chan core.Message]struct{}
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	return &Hub{
		listeners: make(map[chan core.Message]struct{}),
	}
}

// Subscribe returns a channel that receives broadcast messages.
// The caller must call Unsubscribe when done to prevent goroutine leaks.
func (h *Hub) Subscribe() chan core.Message {
	ch := make(chan core.Message, subscriberBuffer)
	h.mu.Lock()
	h.listeners[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener channel and closes it.
func (h *Hub) Unsubscribe(ch chan core.Message) {
	h.mu.Lock()
	delete(h.listeners, ch)
	h.mu.Unlock()
	close(ch)
}

// Subscribers returns the number of current listeners.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

// Notify sends msg to all listeners.
// Non-blocking: if a listener's channel is full, the message is dropped for it.
func (h *Hub) Notify(msg core.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.listeners {
		select {
		case ch <- msg:
		default:
		}
	}
}
