// Package resize fans terminal size changes out to individual components.
//
// The program receives a single tea.WindowSizeMsg; components that track
// their own geometry subscribe to a Hub instead of relying on the host to
// forward the message, and unsubscribe when they are torn down.
package resize

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Msg carries a size notification to the subscription identified by ID.
type Msg struct {
	ID   int
	Size tea.WindowSizeMsg
}

// Hub distributes size notifications to its subscribers.
type Hub struct {
	mu     sync.Mutex
	subs   map[int]*Subscription
	nextID int
	last   *tea.WindowSizeMsg
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]*Subscription)}
}

// Subscription receives the latest size published after it was created.
type Subscription struct {
	ID   int
	C    <-chan tea.WindowSizeMsg
	Done <-chan struct{}

	ch   chan tea.WindowSizeMsg
	done chan struct{}
	hub  *Hub
	once sync.Once
}

// Subscribe registers a new subscriber.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	s := &Subscription{
		ID:   h.nextID,
		ch:   make(chan tea.WindowSizeMsg, 1),
		done: make(chan struct{}),
		hub:  h,
	}
	s.C = s.ch
	s.Done = s.done
	h.subs[s.ID] = s
	return s
}

// Publish delivers size to every subscriber without blocking. A subscriber
// that has not consumed the previous size only sees the newest one.
func (h *Hub) Publish(size tea.WindowSizeMsg) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = &size
	for _, s := range h.subs {
		s.offer(size)
	}
}

// Last returns the most recently published size.
func (h *Hub) Last() (tea.WindowSizeMsg, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return tea.WindowSizeMsg{}, false
	}
	return *h.last, true
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) remove(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

func (s *Subscription) offer(size tea.WindowSizeMsg) {
	// Drop the stale size, if any, so the buffer always holds the latest.
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- size:
	default:
	}
}

// Unsubscribe removes the subscription from its hub and signals Done.
// Safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.remove(s.ID)
		close(s.done)
	})
}

// Wait returns a command that blocks until the next size notification.
// It yields nil once the subscription is closed.
func (s *Subscription) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case size := <-s.ch:
			return Msg{ID: s.ID, Size: size}
		case <-s.done:
			return nil
		}
	}
}
