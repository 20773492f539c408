package editor

import (
	"errors"
	"fmt"

	"resume-builder/internal/resumes"
)

// ErrIndexOutOfRange indicates a section edit addressed a missing item.
var ErrIndexOutOfRange = errors.New("index out of range")

// Section names a resume section holding an ordered list of records.
type Section string

const (
	SectionEducation        Section = "education"
	SectionExperience       Section = "experience"
	SectionSkills           Section = "skills"
	SectionProjects         Section = "projects"
	SectionResponsibilities Section = "responsibilities"
	SectionAchievements     Section = "achievements"
)

// Session holds the in-memory editing state for one resume. Every mutation
// replaces the affected slice or record with a fresh copy, so snapshots handed
// out earlier are never changed underneath the caller. Saving is explicit;
// nothing here talks to the network.
type Session struct {
	doc   resumes.Resume
	dirty bool
}

// NewSession starts an editing session from a freshly fetched document.
// Missing section arrays are backfilled with empty ones.
func NewSession(doc resumes.Resume) *Session {
	doc = doc.Clone()
	doc.EnsureSections()
	return &Session{doc: doc}
}

// Document returns a deep copy of the current state.
func (s *Session) Document() resumes.Resume {
	return s.doc.Clone()
}

// Dirty reports whether the session has unsaved edits.
func (s *Session) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the dirty flag after a successful save.
func (s *Session) MarkSaved() {
	s.dirty = false
}

// SetTitle replaces the resume title.
func (s *Session) SetTitle(title string) {
	s.doc.Title = title
	s.dirty = true
}

// SetSummary replaces the summary text. Also used to apply a generated
// summary returned by the text-assist endpoint.
func (s *Session) SetSummary(summary string) {
	s.doc.Summary = summary
	s.dirty = true
}

// SetThemeColor replaces the cosmetic accent color.
func (s *Session) SetThemeColor(color string) {
	s.doc.ThemeColor = color
	s.dirty = true
}

// SetPersonalInfo replaces the contact block.
func (s *Session) SetPersonalInfo(info resumes.PersonalInfo) {
	s.doc.PersonalInfo = info
	s.dirty = true
}

// AddEducation appends an education entry.
func (s *Session) AddEducation(e resumes.Education) {
	s.doc.Education = append(cloneSlice(s.doc.Education), e)
	s.dirty = true
}

// UpdateEducation replaces the education entry at index i.
func (s *Session) UpdateEducation(i int, e resumes.Education) error {
	out, err := replaceAt(s.doc.Education, i, e)
	if err != nil {
		return err
	}
	s.doc.Education = out
	s.dirty = true
	return nil
}

// AddExperience appends an experience entry.
func (s *Session) AddExperience(e resumes.Experience) {
	s.doc.Experience = append(cloneSlice(s.doc.Experience), e)
	s.dirty = true
}

// UpdateExperience replaces the experience entry at index i.
func (s *Session) UpdateExperience(i int, e resumes.Experience) error {
	out, err := replaceAt(s.doc.Experience, i, e)
	if err != nil {
		return err
	}
	s.doc.Experience = out
	s.dirty = true
	return nil
}

// AddSkill appends a skill entry.
func (s *Session) AddSkill(sk resumes.Skill) {
	s.doc.Skills = append(cloneSlice(s.doc.Skills), sk)
	s.dirty = true
}

// UpdateSkill replaces the skill entry at index i.
func (s *Session) UpdateSkill(i int, sk resumes.Skill) error {
	out, err := replaceAt(s.doc.Skills, i, sk)
	if err != nil {
		return err
	}
	s.doc.Skills = out
	s.dirty = true
	return nil
}

// AddProject appends a project entry.
func (s *Session) AddProject(p resumes.Project) {
	s.doc.Projects = append(cloneSlice(s.doc.Projects), p)
	s.dirty = true
}

// UpdateProject replaces the project entry at index i.
func (s *Session) UpdateProject(i int, p resumes.Project) error {
	out, err := replaceAt(s.doc.Projects, i, p)
	if err != nil {
		return err
	}
	s.doc.Projects = out
	s.dirty = true
	return nil
}

// AddResponsibility appends a responsibility entry.
func (s *Session) AddResponsibility(r resumes.Responsibility) {
	s.doc.Responsibilities = append(cloneSlice(s.doc.Responsibilities), r)
	s.dirty = true
}

// UpdateResponsibility replaces the responsibility entry at index i.
func (s *Session) UpdateResponsibility(i int, r resumes.Responsibility) error {
	out, err := replaceAt(s.doc.Responsibilities, i, r)
	if err != nil {
		return err
	}
	s.doc.Responsibilities = out
	s.dirty = true
	return nil
}

// AddAchievement appends an achievement entry.
func (s *Session) AddAchievement(a resumes.Achievement) {
	s.doc.Achievements = append(cloneSlice(s.doc.Achievements), a)
	s.dirty = true
}

// UpdateAchievement replaces the achievement entry at index i.
func (s *Session) UpdateAchievement(i int, a resumes.Achievement) error {
	out, err := replaceAt(s.doc.Achievements, i, a)
	if err != nil {
		return err
	}
	s.doc.Achievements = out
	s.dirty = true
	return nil
}

// RemoveItem deletes the record at index i from the named section.
func (s *Session) RemoveItem(section Section, i int) error {
	var err error
	switch section {
	case SectionEducation:
		s.doc.Education, err = removeAt(s.doc.Education, i)
	case SectionExperience:
		s.doc.Experience, err = removeAt(s.doc.Experience, i)
	case SectionSkills:
		s.doc.Skills, err = removeAt(s.doc.Skills, i)
	case SectionProjects:
		s.doc.Projects, err = removeAt(s.doc.Projects, i)
	case SectionResponsibilities:
		s.doc.Responsibilities, err = removeAt(s.doc.Responsibilities, i)
	case SectionAchievements:
		s.doc.Achievements, err = removeAt(s.doc.Achievements, i)
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	if err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// SetHidden flags the record at index i of the named section as hidden or
// visible. Hiding is non-destructive: the record stays in the underlying
// array and is only filtered from the preview projection.
func (s *Session) SetHidden(section Section, i int, hidden bool) error {
	var err error
	switch section {
	case SectionEducation:
		s.doc.Education, err = mapAt(s.doc.Education, i, func(e resumes.Education) resumes.Education {
			e.Hidden = hidden
			return e
		})
	case SectionExperience:
		s.doc.Experience, err = mapAt(s.doc.Experience, i, func(e resumes.Experience) resumes.Experience {
			e.Hidden = hidden
			return e
		})
	case SectionSkills:
		s.doc.Skills, err = mapAt(s.doc.Skills, i, func(sk resumes.Skill) resumes.Skill {
			sk.Hidden = hidden
			return sk
		})
	case SectionProjects:
		s.doc.Projects, err = mapAt(s.doc.Projects, i, func(p resumes.Project) resumes.Project {
			p.Hidden = hidden
			return p
		})
	case SectionResponsibilities:
		s.doc.Responsibilities, err = mapAt(s.doc.Responsibilities, i, func(r resumes.Responsibility) resumes.Responsibility {
			r.Hidden = hidden
			return r
		})
	case SectionAchievements:
		s.doc.Achievements, err = mapAt(s.doc.Achievements, i, func(a resumes.Achievement) resumes.Achievement {
			a.Hidden = hidden
			return a
		})
	default:
		return fmt.Errorf("unknown section %q", section)
	}
	if err != nil {
		return err
	}
	s.dirty = true
	return nil
}

// UpdateRequest converts the current state into the wire-level update payload
// for a manual save.
func (s *Session) UpdateRequest() resumes.UpdateRequest {
	doc := s.doc.Clone()
	info := doc.PersonalInfo
	return resumes.UpdateRequest{
		Title:            doc.Title,
		PersonalInfo:     &info,
		Summary:          doc.Summary,
		Education:        doc.Education,
		Experience:       doc.Experience,
		Skills:           doc.Skills,
		Projects:         doc.Projects,
		Responsibilities: doc.Responsibilities,
		Achievements:     doc.Achievements,
		ThemeColor:       doc.ThemeColor,
	}
}

func cloneSlice[T any](items []T) []T {
	return append([]T(nil), items...)
}

func replaceAt[T any](items []T, i int, v T) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := cloneSlice(items)
	out[i] = v
	return out, nil
}

func removeAt[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, nil
}

func mapAt[T any](items []T, i int, fn func(T) T) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := cloneSlice(items)
	out[i] = fn(out[i])
	return out, nil
}
