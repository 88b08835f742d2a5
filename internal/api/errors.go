package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Error is a non-2xx backend response. The server-provided message is kept
// verbatim so pages can show it unchanged; Message is empty when the body
// carried nothing usable.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %d %s", e.Status, http.StatusText(e.Status))
}

// DisplayMessage is what a toast should show: the server message when
// available, otherwise a generic fallback.
func (e *Error) DisplayMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "Something went wrong. Please try again."
}

func IsStatus(err error, status int) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Status == status
}

func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }
func IsNotFound(err error) bool     { return IsStatus(err, http.StatusNotFound) }

// parseError digs the message out of the backend's error envelope. The
// backend is not consistent: auth endpoints use {"error": "..."} while the
// generic handler uses {"message": "..."}.
func parseError(res *http.Response) error {
	e := &Error{Status: res.StatusCode}

	b, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
	if len(b) == 0 {
		return e
	}

	var envelope struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return e
	}

	if len(envelope.Error) > 0 {
		var s string
		if json.Unmarshal(envelope.Error, &s) == nil {
			e.Message = strings.TrimSpace(s)
		} else {
			var nested struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(envelope.Error, &nested) == nil {
				e.Message = strings.TrimSpace(nested.Message)
			}
		}
	}
	if e.Message == "" {
		e.Message = strings.TrimSpace(envelope.Message)
	}
	return e
}
