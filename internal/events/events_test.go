package events

import (
	"encoding/json"
	"testing"
)

func TestEventBusPublishSubscribe(t *testing.T) {
	bus := NewEventBus()

	var received *Event
	var callCount int
	bus.Subscribe(EventActionDispatch, func(event *Event) error {
		received = event
		callCount++
		return nil
	})

	payload := ActionPayload{Entity: "products", Action: "approve", ID: "p1", Success: true}
	if err := bus.PublishJSON(EventActionDispatch, payload); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if callCount != 1 {
		t.Fatalf("expected 1 call, got %d", callCount)
	}
	if received.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	var decoded ActionPayload
	if err := json.Unmarshal(received.Payload, &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.ID != "p1" || !decoded.Success {
		t.Errorf("unexpected payload: %+v", decoded)
	}
}

func TestEventBusNoSubscribers(t *testing.T) {
	bus := NewEventBus()
	if err := bus.PublishJSON(EventExportCompleted, ExportPayload{Entity: "users"}); err != nil {
		t.Fatalf("publish without subscribers: %v", err)
	}
}

func TestEventBusNilReceiver(t *testing.T) {
	var bus *EventBus
	if err := bus.PublishJSON(EventViewSaved, nil); err != nil {
		t.Fatalf("nil bus publish: %v", err)
	}
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus()
	calls := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(EventBulkCompleted, func(*Event) error {
			calls++
			return nil
		})
	}

	bus.Publish(&Event{Type: EventBulkCompleted})
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}
