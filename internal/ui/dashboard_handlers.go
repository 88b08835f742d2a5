package ui

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"jobconnect-client/internal/domain"
)

// DashboardHandler aggregates the fan-out each role's landing page needs
// into one response, so the shell issues a single request on navigation.
type DashboardHandler struct {
	Deps
}

type applicantDashboard struct {
	User         *domain.UserSummary              `json:"user"`
	Applications *domain.Page[domain.Application] `json:"applications"`
	SavedJobs    []jobItem                        `json:"savedJobs"`
	UnreadCount  int64                            `json:"unreadCount"`
}

func (h DashboardHandler) Applicant(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.requireRole(w, r, domain.RoleApplicant)
	if !ok {
		return
	}

	out := applicantDashboard{User: snap.User}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		apps, err := h.API.Applications.Mine(ctx, 0, 5)
		if err != nil {
			return err
		}
		out.Applications = apps
		return nil
	})
	g.Go(func() error {
		jobs, err := h.API.Jobs.SavedJobs(ctx)
		if err != nil {
			return err
		}
		out.SavedJobs = h.enrichSaved(r, jobs)
		return nil
	})
	g.Go(func() error {
		// badge is cosmetic, ignore its error
		if n, err := h.API.Notifications.UnreadCount(ctx); err == nil {
			out.UnreadCount = n
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// enrichSaved mirrors the server's saved set locally and marks every item
// saved, since the input is the saved list itself.
func (h DashboardHandler) enrichSaved(r *http.Request, jobs []domain.Job) []jobItem {
	if h.Cache != nil {
		_ = h.Cache.ReplaceSavedJobs(r.Context(), jobs)
	}
	items := make([]jobItem, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, jobItem{Job: j, Saved: true})
	}
	return items
}

type employerJobRow struct {
	domain.Job
	ApplicationCount int64 `json:"applicationCount"`
}

type employerDashboard struct {
	User         *domain.UserSummary              `json:"user"`
	Jobs         []employerJobRow                 `json:"jobs"`
	Applications *domain.Page[domain.Application] `json:"applications"`
	UnreadCount  int64                            `json:"unreadCount"`
}

func (h DashboardHandler) Employer(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.requireRole(w, r, domain.RoleEmployer)
	if !ok {
		return
	}

	out := employerDashboard{User: snap.User}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		jobs, err := h.API.Jobs.EmployerJobs(ctx)
		if err != nil {
			return err
		}
		out.Jobs = h.withCounts(ctx, jobs)
		return nil
	})
	g.Go(func() error {
		apps, err := h.API.Applications.ForEmployer(ctx, 0, 5)
		if err != nil {
			return err
		}
		out.Applications = apps
		return nil
	})
	g.Go(func() error {
		if n, err := h.API.Notifications.UnreadCount(ctx); err == nil {
			out.UnreadCount = n
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, out)
}

// withCounts fetches per-job application counts in parallel, capped so a
// long posting list does not burst the rate limiter.
func (h DashboardHandler) withCounts(ctx context.Context, jobs []domain.Job) []employerJobRow {
	rows := make([]employerJobRow, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			n, err := h.API.Applications.Count(ctx, j.ID)
			if err != nil {
				n = 0 // count stays zero, the row still shows
			}
			rows[i] = employerJobRow{Job: j, ApplicationCount: n}
			return nil
		})
	}
	_ = g.Wait()
	return rows
}
