package events

import (
	"encoding/json"
	"sync"
	"time"
)

const (
	EventFetchCompleted  = "fetch_completed"
	EventActionDispatch  = "action_dispatched"
	EventBulkCompleted   = "bulk_completed"
	EventExportCompleted = "export_completed"
	EventViewSaved       = "view_saved"
)

// FetchPayload is the snapshot published after a list fetch succeeds.
type FetchPayload struct {
	Entity string `json:"entity"`
	Rows   int    `json:"rows"`
	Total  int    `json:"total"`
}

// ActionPayload describes one dispatched state transition.
type ActionPayload struct {
	Entity  string `json:"entity"`
	Action  string `json:"action"`
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// BulkPayload summarizes a finished bulk dispatch.
type BulkPayload struct {
	Entity    string `json:"entity"`
	Action    string `json:"action"`
	Succeeded int    `json:"succeeded"`
	Failed    int    `json:"failed"`
}

// ExportPayload describes a completed export file.
type ExportPayload struct {
	Entity string `json:"entity"`
	Rows   int    `json:"rows"`
	Path   string `json:"path"`
}

// Event represents a lightweight engine event.
type Event struct {
	Type      string
	Payload   []byte
	CreatedAt time.Time
}

// EventHandler reacts to an event.
type EventHandler func(event *Event) error

// EventBus provides in-process pub/sub for engine events. The console uses
// it to decouple audit logging from the table and action layers.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type. Handlers run synchronously;
// the caller decides the concurrency model.
func (b *EventBus) Publish(event *Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	for _, handler := range handlers {
		_ = handler(event)
	}
}

// PublishJSON serializes the payload and publishes an event.
func (b *EventBus) PublishJSON(eventType string, payload any) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Type: eventType, Payload: raw, CreatedAt: time.Now()})
	return nil
}
