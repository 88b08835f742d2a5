package events

import (
	"encoding/json"
	"time"
)

// Event types the shell listens for.
const (
	TypeSessionChanged = "session_changed"
	TypeUnreadCount    = "unread_count"
	TypeToast          = "toast"
	TypeJobSaved       = "job_saved"
	TypeJobUnsaved     = "job_unsaved"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// Toast is a transient, non-blocking notification for a user-initiated
// action. Level is "success" or "error".
type Toast struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func MakeToast(reqID, level, message string) string {
	return MakeEvent(reqID, TypeToast, 1, Toast{Level: level, Message: message})
}
