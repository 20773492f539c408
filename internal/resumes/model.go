package resumes

import "time"

// PersonalInfo is the contact block of a resume. No field is validated; the
// editor treats every entry as free text.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Linkedin string `json:"linkedin"`
	Website  string `json:"website"`
}

// Education is one schooling entry.
type Education struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current,omitempty"`
	Description  string `json:"description,omitempty"`
	Hidden       bool   `json:"hidden,omitempty"`
}

// Experience is one employment entry.
type Experience struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// Skill pairs a name with a free-text proficiency label.
type Skill struct {
	Name   string `json:"name"`
	Level  string `json:"level,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Project is one portfolio entry.
type Project struct {
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
	Hidden       bool   `json:"hidden,omitempty"`
}

// Responsibility is one volunteering/role entry.
type Responsibility struct {
	Role         string `json:"role,omitempty"`
	Organization string `json:"organization,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Description  string `json:"description,omitempty"`
	Hidden       bool   `json:"hidden,omitempty"`
}

// Achievement is one award entry.
type Achievement struct {
	Title       string `json:"title,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// Resume is the persisted document. UserID is caller-supplied and never
// verified; it scopes list queries and nothing else.
type Resume struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	Title            string           `json:"title"`
	PersonalInfo     PersonalInfo     `json:"personalInfo"`
	Summary          string           `json:"summary"`
	Education        []Education      `json:"education"`
	Experience       []Experience     `json:"experience"`
	Skills           []Skill          `json:"skills"`
	Projects         []Project        `json:"projects"`
	Responsibilities []Responsibility `json:"responsibilities"`
	Achievements     []Achievement    `json:"achievements"`
	ThemeColor       string           `json:"themeColor"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// DefaultTitle is used when a create request omits the title.
const DefaultTitle = "Untitled Resume"

// DefaultThemeColor is the cosmetic accent applied to new resumes.
const DefaultThemeColor = "#2563eb"

// EnsureSections backfills nil section slices with empty ones so documents
// round-trip as [] rather than null.
func (r *Resume) EnsureSections() {
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Skills == nil {
		r.Skills = []Skill{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.Responsibilities == nil {
		r.Responsibilities = []Responsibility{}
	}
	if r.Achievements == nil {
		r.Achievements = []Achievement{}
	}
}

// Clone returns a deep copy of the resume.
func (r Resume) Clone() Resume {
	out := r
	out.Education = append([]Education(nil), r.Education...)
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Skills = append([]Skill(nil), r.Skills...)
	out.Projects = append([]Project(nil), r.Projects...)
	out.Responsibilities = append([]Responsibility(nil), r.Responsibilities...)
	out.Achievements = append([]Achievement(nil), r.Achievements...)
	return out
}
