package domain

// Role determines which page set and API endpoints a session may use.
// Immutable after registration.
type Role string

const (
	RoleApplicant Role = "APPLICANT"
	RoleEmployer  Role = "EMPLOYER"
)

func (r Role) Valid() bool {
	return r == RoleApplicant || r == RoleEmployer
}

// Home is the role's landing route.
func (r Role) Home() string {
	if r == RoleEmployer {
		return "/employer/dashboard"
	}
	return "/applicant/dashboard"
}

// UserSummary is the account record the backend returns on login/validate.
// Applicant and employer fields share one struct; the backend omits the
// fields that don't apply to the role.
type UserSummary struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Name     string `json:"name,omitempty"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`

	// applicant profile
	Bio        string `json:"bio,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	ResumeURL  string `json:"resumeUrl,omitempty"`

	// employer profile
	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyLocation    string `json:"companyLocation,omitempty"`
}

// DisplayName picks the best human-readable name for the UI shell.
func (u UserSummary) DisplayName() string {
	switch {
	case u.Role == RoleEmployer && u.CompanyName != "":
		return u.CompanyName
	case u.FullName != "":
		return u.FullName
	case u.Name != "":
		return u.Name
	}
	return u.Email
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            Role   `json:"role"`
	Phone           string `json:"phone,omitempty"`
	CompanyName     string `json:"companyName,omitempty"`
	CompanyLocation string `json:"companyLocation,omitempty"`
}

type ApplicantProfile struct {
	FullName   string `json:"fullName,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
	ResumeURL  string `json:"resumeUrl,omitempty"`
}

type EmployerProfile struct {
	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
	CompanyWebsite     string `json:"companyWebsite,omitempty"`
	CompanyLocation    string `json:"companyLocation,omitempty"`
	Phone              string `json:"phone,omitempty"`
}
