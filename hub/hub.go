package hub

import (
	"sync"
)

const (
	EventHelpAccepted         = "help.accepted"
	EventHelpCancelled        = "help.cancelled"
	EventLinkShared           = "session.link_shared"
	EventLinkConfirmed        = "session.link_confirmed"
	EventSessionEnded         = "session.ended"
	EventInstructionsSent     = "payment.instructions_sent"
	EventStudentPaid          = "payment.student_paid"
	EventPaymentConfirmed     = "payment.confirmed"
	EventMessageCreated       = "message.created"
	EventVouchAwarded         = "vouch.awarded"
	defaultSubscriberCapacity = 64
)

// Event is one change of a gig pushed to its subscribers
type Event struct {
	Type  string      `json:"type"`
	GigID string      `json:"gig_id"`
	Data  interface{} `json:"data,omitempty"`
}

// Subscriber receives the events of one gig. Send is closed on unsubscribe.
type Subscriber struct {
	GigID string
	Email string
	Send  chan Event
}

// Hub fans gig events out to the subscribers of each gig. A subscriber that
// does not keep up misses events instead of blocking publishers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*Subscriber]struct{}
	capacity    int
}

func New() *Hub {
	return &Hub{
		subscribers: map[string]map[*Subscriber]struct{}{},
		capacity:    defaultSubscriberCapacity,
	}
}

func (h *Hub) Subscribe(gigID, email string) *Subscriber {
	s := &Subscriber{
		GigID: gigID,
		Email: email,
		Send:  make(chan Event, h.capacity),
	}

	h.mu.Lock()
	if h.subscribers[gigID] == nil {
		h.subscribers[gigID] = map[*Subscriber]struct{}{}
	}
	h.subscribers[gigID][s] = struct{}{}
	h.mu.Unlock()

	return s
}

// Unsubscribe removes s and closes its channel. It is safe to call twice.
func (h *Hub) Unsubscribe(s *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.subscribers[s.GigID]
	if !ok {
		return
	}

	if _, ok := set[s]; !ok {
		return
	}

	delete(set, s)
	if len(set) == 0 {
		delete(h.subscribers, s.GigID)
	}
	close(s.Send)
}

// Publish delivers ev to every subscriber of gigID and returns how many
// subscribers received it.
func (h *Hub) Publish(gigID string, ev Event) int {
	ev.GigID = gigID

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for s := range h.subscribers[gigID] {
		select {
		case s.Send <- ev:
			delivered++
		default:
			// full buffer, the client re-fetches state on its next event
		}
	}

	return delivered
}

// Count returns the number of subscribers of gigID
func (h *Hub) Count(gigID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[gigID])
}
