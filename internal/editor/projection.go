package editor

import "resume-builder/internal/resumes"

// Project computes the preview view of a document: a pure function of the
// input with every hidden record filtered out of the section arrays. The
// source document is never modified, so hiding stays reversible.
func Project(doc resumes.Resume) resumes.Resume {
	out := doc.Clone()
	out.Education = filterHidden(doc.Education, func(e resumes.Education) bool { return e.Hidden })
	out.Experience = filterHidden(doc.Experience, func(e resumes.Experience) bool { return e.Hidden })
	out.Skills = filterHidden(doc.Skills, func(s resumes.Skill) bool { return s.Hidden })
	out.Projects = filterHidden(doc.Projects, func(p resumes.Project) bool { return p.Hidden })
	out.Responsibilities = filterHidden(doc.Responsibilities, func(r resumes.Responsibility) bool { return r.Hidden })
	out.Achievements = filterHidden(doc.Achievements, func(a resumes.Achievement) bool { return a.Hidden })
	return out
}

func filterHidden[T any](items []T, hidden func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !hidden(item) {
			out = append(out, item)
		}
	}
	return out
}
