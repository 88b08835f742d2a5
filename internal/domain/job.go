package domain

// Job is server-owned; the client never mutates one directly. All changes go
// through facade calls that return the server's authoritative copy.
// Timestamps stay as the backend's ISO strings; the client only displays them.
type Job struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Company             string `json:"company"`
	Location            string `json:"location"`
	JobType             string `json:"jobType"`         // FULL_TIME, PART_TIME, CONTRACT, INTERNSHIP
	WorkMode            string `json:"workMode"`        // ONSITE, REMOTE, HYBRID
	ExperienceLevel     string `json:"experienceLevel"` // ENTRY, MID, SENIOR, EXECUTIVE
	Description         string `json:"description"`
	Requirements        string `json:"requirements,omitempty"`
	Responsibilities    string `json:"responsibilities,omitempty"`
	Salary              string `json:"salary,omitempty"`
	Skills              string `json:"skills,omitempty"`
	MinExperience       *int   `json:"minExperience,omitempty"`
	MaxExperience       *int   `json:"maxExperience,omitempty"`
	Education           string `json:"education,omitempty"`
	Industry            string `json:"industry,omitempty"`
	Benefits            string `json:"benefits,omitempty"`
	ApplicationDeadline string `json:"applicationDeadline,omitempty"`
	Status              string `json:"status"` // ACTIVE, CLOSED, DRAFT
	CreatedAt           string `json:"createdAt,omitempty"`
	UpdatedAt           string `json:"updatedAt,omitempty"`

	// filled in locally, never sent to the backend
	Snippet string `json:"snippet,omitempty"`
}

// JobSearchRequest mirrors POST /jobs/search. Zero values mean "no filter".
type JobSearchRequest struct {
	Keyword         string `json:"keyword,omitempty"`
	Location        string `json:"location,omitempty"`
	JobType         string `json:"jobType,omitempty"`
	WorkMode        string `json:"workMode,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	MinExperience   *int   `json:"minExperience,omitempty"`
	MaxExperience   *int   `json:"maxExperience,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Industry        string `json:"industry,omitempty"`
	SalaryMin       string `json:"salaryMin,omitempty"`
	SalaryMax       string `json:"salaryMax,omitempty"`
	SortBy          string `json:"sortBy,omitempty"`    // createdAt, salary, company
	SortOrder       string `json:"sortOrder,omitempty"` // ASC, DESC
	Page            int    `json:"page"`
	Size            int    `json:"size"`
}
