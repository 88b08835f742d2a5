package domain

// ApplicationStatus transitions are server-decided; the client only requests
// a transition and re-renders on the returned value.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "PENDING"
	StatusReviewed    ApplicationStatus = "REVIEWED"
	StatusShortlisted ApplicationStatus = "SHORTLISTED"
	StatusAccepted    ApplicationStatus = "ACCEPTED"
	StatusRejected    ApplicationStatus = "REJECTED"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	ID          int64             `json:"id"`
	Job         *Job              `json:"job,omitempty"`
	Applicant   *UserSummary      `json:"applicant,omitempty"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	ResumeURL   string            `json:"resumeUrl,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	AppliedAt   string            `json:"appliedAt,omitempty"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

type ApplicationCreateRequest struct {
	JobID       int64  `json:"jobId"`
	CoverLetter string `json:"coverLetter,omitempty"`
	ResumeURL   string `json:"resumeUrl,omitempty"`
}

type ApplicationStatusUpdate struct {
	Status ApplicationStatus `json:"status"`
	Notes  string            `json:"notes,omitempty"`
}
