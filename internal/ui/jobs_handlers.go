package ui

import (
	"log"
	"net/http"

	"golang.org/x/sync/errgroup"

	"jobconnect-client/internal/domain"
	"jobconnect-client/internal/events"
	"jobconnect-client/internal/htmltext"
)

const snippetLen = 240

// JobsHandler backs the browse/search/detail pages plus the employer's
// posting screens.
type JobsHandler struct {
	Deps
}

// jobItem is a Job enriched with the applicant's local saved flag.
type jobItem struct {
	domain.Job
	Saved bool `json:"saved"`
}

func (h JobsHandler) enrich(r *http.Request, jobs []domain.Job) []jobItem {
	snap := h.Sessions.Snapshot()

	var saved map[int64]bool
	if snap.Role() == domain.RoleApplicant && h.Cache != nil {
		var err error
		saved, err = h.Cache.SavedJobIDs(r.Context())
		if err != nil {
			log.Printf("[jobs] saved-set read failed: %v", err)
		}
	}

	items := make([]jobItem, 0, len(jobs))
	for _, j := range jobs {
		j.Snippet = htmltext.Snippet(j.Description, snippetLen)
		items = append(items, jobItem{Job: j, Saved: saved[j.ID]})
	}

	if h.Cache != nil {
		if err := h.Cache.CacheJobs(r.Context(), jobs); err != nil {
			log.Printf("[jobs] cache write failed: %v", err)
		}
	}
	return items
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	res, err := h.API.Jobs.List(r.Context(), page, size)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, domain.Page[jobItem]{
		Content:       h.enrich(r, res.Content),
		TotalElements: res.TotalElements,
		TotalPages:    res.TotalPages,
		Number:        res.Number,
		Size:          res.Size,
	})
}

func (h JobsHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req domain.JobSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid search payload")
		return
	}
	res, err := h.API.Jobs.Search(r.Context(), req)
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, domain.Page[jobItem]{
		Content:       h.enrich(r, res.Content),
		TotalElements: res.TotalElements,
		TotalPages:    res.TotalPages,
		Number:        res.Number,
		Size:          res.Size,
	})
}

// Cached serves the last fetched jobs so the shell can paint instantly
// while a live fetch is in flight.
func (h JobsHandler) Cached(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Cache.CachedJobs(r.Context(), 50)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "cache_error", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, h.enrich(r, jobs))
}

type jobDetail struct {
	domain.Job
	Saved      bool `json:"saved"`
	HasApplied bool `json:"hasApplied"`
}

func (h JobsHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := idFromPath(r.URL.Path, "/jobs/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}

	snap := h.Sessions.Snapshot()
	var detail jobDetail

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		job, err := h.API.Jobs.Get(ctx, id)
		if err != nil {
			return err
		}
		detail.Job = *job
		return nil
	})
	if snap.Role() == domain.RoleApplicant {
		g.Go(func() error {
			applied, err := h.API.Applications.HasApplied(ctx, id)
			if err != nil {
				// flags are best-effort; the page still renders
				return nil
			}
			detail.HasApplied = applied
			return nil
		})
		g.Go(func() error {
			saved, err := h.Cache.IsSaved(ctx, id)
			if err == nil {
				detail.Saved = saved
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

func (h JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	var job domain.Job
	if err := decodeJSON(r, &job); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job payload")
		return
	}
	created, err := h.API.Jobs.Create(r.Context(), job)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Job posted")
	WriteJSON(w, http.StatusOK, created)
}

func (h JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/jobs/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}
	var job domain.Job
	if err := decodeJSON(r, &job); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job payload")
		return
	}
	updated, err := h.API.Jobs.Update(r.Context(), id, job)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Job updated")
	WriteJSON(w, http.StatusOK, updated)
}

func (h JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/jobs/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}
	if err := h.API.Jobs.Delete(r.Context(), id); err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Job deleted")
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (h JobsHandler) Close(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/jobs/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}
	job, err := h.API.Jobs.Close(r.Context(), id)
	if err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}
	h.toast(r, "success", "Job closed")
	WriteJSON(w, http.StatusOK, job)
}

func (h JobsHandler) EmployerJobs(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleEmployer); !ok {
		return
	}
	jobs, err := h.API.Jobs.EmployerJobs(r.Context())
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, jobs)
}

// Save and Unsave write through to the backend first; the local mirror only
// reflects the server's answer, so a double toggle lands in request order.
func (h JobsHandler) Save(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/jobs/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}
	if err := h.API.Jobs.Save(r.Context(), id); err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}

	job := domain.Job{ID: id}
	if cached, err := h.Cache.CachedJob(r.Context(), id); err == nil {
		job = *cached
	}
	if err := h.Cache.MarkSaved(r.Context(), job); err != nil {
		log.Printf("[jobs] saved-set write failed: %v", err)
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeJobSaved, 1, map[string]any{"id": id}))
	h.toast(r, "success", "Job saved")
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id, "saved": true})
}

func (h JobsHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	id, ok := idFromPath(r.URL.Path, "/jobs/")
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "invalid job id")
		return
	}
	if err := h.API.Jobs.Unsave(r.Context(), id); err != nil {
		h.toastBackendErr(r, err)
		writeBackendError(w, r, err)
		return
	}

	if err := h.Cache.MarkUnsaved(r.Context(), id); err != nil {
		log.Printf("[jobs] saved-set write failed: %v", err)
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeJobUnsaved, 1, map[string]any{"id": id}))
	h.toast(r, "success", "Job removed from saved")
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id, "saved": false})
}

func (h JobsHandler) SavedJobs(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireRole(w, r, domain.RoleApplicant); !ok {
		return
	}
	jobs, err := h.API.Jobs.SavedJobs(r.Context())
	if err != nil {
		writeBackendError(w, r, err)
		return
	}
	// server's set is authoritative; resync the mirror
	if err := h.Cache.ReplaceSavedJobs(r.Context(), jobs); err != nil {
		log.Printf("[jobs] saved-set resync failed: %v", err)
	}
	WriteJSON(w, http.StatusOK, h.enrich(r, jobs))
}
