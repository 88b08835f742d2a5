package api

import (
	"context"
	"net/http"
	"strconv"

	"jobconnect-client/internal/domain"
)

// NotificationsService wraps the /notifications endpoints.
type NotificationsService struct {
	c *Client
}

func (s *NotificationsService) List(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	if err := s.c.do(ctx, http.MethodGet, "/notifications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *NotificationsService) UnreadCount(ctx context.Context) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodPost, "/notifications/"+strconv.FormatInt(id, 10)+"/read", nil, nil, nil)
}

func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.c.do(ctx, http.MethodPost, "/notifications/read-all", nil, nil, nil)
}
