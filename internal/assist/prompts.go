package assist

import (
	"encoding/json"
	"fmt"

	"resume-builder/internal/resumes"
)

// SummaryPrompt builds the generate-summary prompt. Experience and skills are
// embedded as serialized JSON; absent lists fall back to neutral phrasing.
func SummaryPrompt(jobTitle string, experience []resumes.Experience, skills []resumes.Skill) string {
	skillsPart := "general skills"
	if len(skills) > 0 {
		if raw, err := json.Marshal(skills); err == nil {
			skillsPart = string(raw)
		}
	}

	experiencePart := "No explicit experience provided"
	if len(experience) > 0 {
		if raw, err := json.Marshal(experience); err == nil {
			experiencePart = string(raw)
		}
	}

	return fmt.Sprintf(
		"Write a professional resume summary for a %s with these skills: %s. \nExperience details: %s. \nKeep it professional, engaging, and under 400 characters.",
		jobTitle, skillsPart, experiencePart,
	)
}

// ImprovePrompt builds the improve-text rewrite prompt for a section type.
func ImprovePrompt(text, sectionType string) string {
	if sectionType == "" {
		sectionType = "text"
	}
	return fmt.Sprintf(
		"Improve the following resume %s to be more impactful, using action verbs and result-oriented language. \nOriginal text: %q. \nReturn only the improved text, no conversational filler.",
		sectionType, text,
	)
}
