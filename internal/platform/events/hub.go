// Package events is the in-process replacement for the per-table change
// channels the admin UI subscribes to. Mutating services publish after a
// successful write; subscribers re-fetch the whole collection on any event.
package events

import "sync"

const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Event seq is monotonically increasing across all tables so clients can
// discard results of re-fetches that were overtaken by a newer event.
type Event struct {
	Seq   uint64 `json:"seq"`
	Table string `json:"table"`
	Op    string `json:"op"`
}

type subscriber struct {
	tables map[string]struct{}
	ch     chan Event
}

type Hub struct {
	mu   sync.Mutex
	seq  uint64
	subs map[*subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*subscriber]struct{})}
}

// Subscribe registers interest in the given tables (all tables when empty)
// and returns the event channel plus a cancel func. Events for slow
// consumers are dropped rather than blocking the publisher.
func (h *Hub) Subscribe(tables []string) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, 16)}
	if len(tables) > 0 {
		sub.tables = make(map[string]struct{}, len(tables))
		for _, t := range tables {
			if t != "" {
				sub.tables[t] = struct{}{}
			}
		}
	}

	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[sub]; ok {
			delete(h.subs, sub)
			close(sub.ch)
		}
		h.mu.Unlock()
	}
	return sub.ch, cancel
}

func (h *Hub) Publish(table, op string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	ev := Event{Seq: h.seq, Table: table, Op: op}
	for sub := range h.subs {
		if sub.tables != nil {
			if _, ok := sub.tables[table]; !ok {
				continue
			}
		}
		select {
		case sub.ch <- ev:
		default: // drop; the client re-fetches fully anyway
		}
	}
}
