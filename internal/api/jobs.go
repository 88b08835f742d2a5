package api

import (
	"context"
	"net/http"
	"strconv"

	"jobconnect-client/internal/domain"
)

// JobsService wraps the /jobs endpoints.
type JobsService struct {
	c *Client
}

func (s *JobsService) List(ctx context.Context, page, size int) (*domain.Page[domain.Job], error) {
	var out domain.Page[domain.Job]
	if err := s.c.do(ctx, http.MethodGet, "/jobs", pageQuery(page, size), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *JobsService) Search(ctx context.Context, req domain.JobSearchRequest) (*domain.Page[domain.Job], error) {
	if req.Page < 0 {
		req.Page = 0
	}
	if req.Size <= 0 {
		req.Size = 10
	}
	var out domain.Page[domain.Job]
	if err := s.c.do(ctx, http.MethodPost, "/jobs/search", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *JobsService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	var out domain.Job
	if err := s.c.do(ctx, http.MethodGet, "/jobs/"+strconv.FormatInt(id, 10), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *JobsService) Create(ctx context.Context, job domain.Job) (*domain.Job, error) {
	var out domain.Job
	if err := s.c.do(ctx, http.MethodPost, "/jobs", nil, job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *JobsService) Update(ctx context.Context, id int64, job domain.Job) (*domain.Job, error) {
	var out domain.Job
	if err := s.c.do(ctx, http.MethodPut, "/jobs/"+strconv.FormatInt(id, 10), nil, job, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *JobsService) Delete(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/jobs/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

func (s *JobsService) Close(ctx context.Context, id int64) (*domain.Job, error) {
	var out domain.Job
	if err := s.c.do(ctx, http.MethodPut, "/jobs/"+strconv.FormatInt(id, 10)+"/close", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EmployerJobs lists the jobs posted by the authenticated employer.
func (s *JobsService) EmployerJobs(ctx context.Context) ([]domain.Job, error) {
	var out []domain.Job
	if err := s.c.do(ctx, http.MethodGet, "/jobs/employer/my-jobs", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *JobsService) Save(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodPost, "/jobs/"+strconv.FormatInt(id, 10)+"/save", nil, nil, nil)
}

func (s *JobsService) Unsave(ctx context.Context, id int64) error {
	return s.c.do(ctx, http.MethodDelete, "/jobs/"+strconv.FormatInt(id, 10)+"/save", nil, nil, nil)
}

func (s *JobsService) SavedJobs(ctx context.Context) ([]domain.Job, error) {
	var out []domain.Job
	if err := s.c.do(ctx, http.MethodGet, "/jobs/saved", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
