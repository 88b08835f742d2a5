package events

import (
	"encoding/json"
	"testing"
)

func TestHub_FanOutAndDrop(t *testing.T) {
	h := NewHub()
	a := h.Subscribe()
	b := h.Subscribe()
	defer h.Unsubscribe(b)

	h.Publish("one")
	if got := <-a; got != "one" {
		t.Fatalf("a got %q", got)
	}
	if got := <-b; got != "one" {
		t.Fatalf("b got %q", got)
	}

	// Unsubscribed channels stop receiving; publishing must not panic.
	h.Unsubscribe(a)
	h.Publish("two")
	if got := <-b; got != "two" {
		t.Fatalf("b got %q", got)
	}

	// A full buffer drops instead of blocking the publisher.
	for i := 0; i < 40; i++ {
		h.Publish("flood")
	}
}

func TestMakeEvent_Envelope(t *testing.T) {
	raw := MakeEvent("req-1", TypeUnreadCount, 1, map[string]any{"count": 3})

	var evt Event
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if evt.Type != TypeUnreadCount || evt.Version != 1 || evt.RequestID != "req-1" {
		t.Fatalf("envelope = %+v", evt)
	}
	var data map[string]int
	if err := json.Unmarshal(evt.Data, &data); err != nil || data["count"] != 3 {
		t.Fatalf("data = %s, %v", evt.Data, err)
	}
	if evt.At.IsZero() {
		t.Error("At not stamped")
	}
}

func TestMakeToast(t *testing.T) {
	raw := MakeToast("", "error", "Something went wrong")
	var evt Event
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatalf("not valid JSON: %v", err)
	}
	if evt.Type != TypeToast {
		t.Fatalf("type = %q", evt.Type)
	}
	var toast Toast
	if err := json.Unmarshal(evt.Data, &toast); err != nil || toast.Level != "error" {
		t.Fatalf("toast = %+v, %v", toast, err)
	}
}
