package api

import (
	"context"
	"net/http"
	"strconv"

	"jobconnect-client/internal/domain"
)

// ApplicationsService wraps the /applications endpoints.
type ApplicationsService struct {
	c *Client
}

func (s *ApplicationsService) Apply(ctx context.Context, req domain.ApplicationCreateRequest) (*domain.Application, error) {
	var out domain.Application
	if err := s.c.do(ctx, http.MethodPost, "/applications/apply", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ApplicationsService) Withdraw(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/applications/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (s *ApplicationsService) UpdateStatus(ctx context.Context, id int64, upd domain.ApplicationStatusUpdate) (*domain.Application, error) {
	var out domain.Application
	if err := s.c.do(ctx, http.MethodPut, "/applications/"+strconv.FormatInt(id, 10)+"/status", nil, upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine lists the authenticated applicant's applications.
func (s *ApplicationsService) Mine(ctx context.Context, page, size int) (*domain.Page[domain.Application], error) {
	var out domain.Page[domain.Application]
	if err := s.c.do(ctx, http.MethodGet, "/applications/my", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForJob lists applications to one of the employer's jobs.
func (s *ApplicationsService) ForJob(ctx context.Context, jobID int64) ([]domain.Application, error) {
	var out []domain.Application
	if err := s.c.do(ctx, http.MethodGet, "/applications/job/"+strconv.FormatInt(jobID, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ForEmployer lists applications across all of the employer's jobs.
func (s *ApplicationsService) ForEmployer(ctx context.Context, page, size int) (*domain.Page[domain.Application], error) {
	var out domain.Page[domain.Application]
	if err := s.c.do(ctx, http.MethodGet, "/applications/employer", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ApplicationsService) Get(ctx context.Context, id int64) (*domain.Application, error) {
	var out domain.Application
	if err := s.c.do(ctx, http.MethodGet, "/applications/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HasApplied reports whether the authenticated applicant already applied to
// the job.
func (s *ApplicationsService) HasApplied(ctx context.Context, jobID int64) (bool, error) {
	var out struct {
		HasApplied bool `json:"hasApplied"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/applications/check/"+strconv.FormatInt(jobID, 10), nil, nil, &out); err != nil {
		return false, err
	}
	return out.HasApplied, nil
}

func (s *ApplicationsService) Count(ctx context.Context, jobID int64) (int64, error) {
	var out struct {
		Count int64 `json:"count"`
	}
	if err := s.c.do(ctx, http.MethodGet, "/applications/job/"+strconv.FormatInt(jobID, 10)+"/count", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (s *ApplicationsService) ByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error) {
	var out []domain.Application
	if err := s.c.do(ctx, http.MethodGet, "/applications/status/"+string(status), nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
