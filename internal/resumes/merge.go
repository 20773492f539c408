package resumes

// UpdateRequest carries the top-level fields a PUT may replace. String fields
// overwrite only when non-empty and the pointer/slice fields only when present
// in the request body, mirroring the original API's truthy merge: clearing a
// string to "" is indistinguishable from omitting it and will not persist,
// while a present array (even an empty one) always replaces the stored one.
type UpdateRequest struct {
	Title            string           `json:"title"`
	PersonalInfo     *PersonalInfo    `json:"personalInfo"`
	Summary          string           `json:"summary"`
	Education        []Education      `json:"education"`
	Experience       []Experience     `json:"experience"`
	Skills           []Skill          `json:"skills"`
	Projects         []Project        `json:"projects"`
	Responsibilities []Responsibility `json:"responsibilities"`
	Achievements     []Achievement    `json:"achievements"`
	ThemeColor       string           `json:"themeColor"`
}

// ApplyTo merges the request into the stored resume. ID, UserID and the
// store-maintained timestamps are never touched.
func (u UpdateRequest) ApplyTo(r *Resume) {
	if u.Title != "" {
		r.Title = u.Title
	}
	if u.PersonalInfo != nil {
		r.PersonalInfo = *u.PersonalInfo
	}
	if u.Summary != "" {
		r.Summary = u.Summary
	}
	if u.Education != nil {
		r.Education = u.Education
	}
	if u.Experience != nil {
		r.Experience = u.Experience
	}
	if u.Skills != nil {
		r.Skills = u.Skills
	}
	if u.Projects != nil {
		r.Projects = u.Projects
	}
	if u.Responsibilities != nil {
		r.Responsibilities = u.Responsibilities
	}
	if u.Achievements != nil {
		r.Achievements = u.Achievements
	}
	if u.ThemeColor != "" {
		r.ThemeColor = u.ThemeColor
	}
}
