package resumes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/extract"
)

// importTextLimit caps the extracted text embedded in the structuring prompt.
const importTextLimit = 30000

const importPromptHeader = `You are an expert resume parser. Extract the following information from the resume text below and return ONLY VALID JSON formatted exactly as follows:
{
    "personalInfo": {
        "fullName": "Name",
        "email": "Email",
        "phone": "Phone",
        "address": "Address",
        "linkedin": "LinkedIn URL",
        "website": "Website URL"
    },
    "summary": "Professional Summary",
    "education": [
        { "institution": "School", "degree": "Degree", "startDate": "Year", "endDate": "Year", "description": "Details" }
    ],
    "experience": [
        { "company": "Company", "position": "Title", "startDate": "Date", "endDate": "Date", "description": "Details" }
    ],
    "skills": [
        { "name": "Skill Name" }
    ],
    "projects": [
        { "name": "Project Name", "description": "Details", "technologies": "Tech Stack", "link": "URL" }
    ]
}
Do not include markdown formatting like ` + "```json" + `. Just the raw JSON.
Resume Text:
`

// importedFields is the subset of the schema the structuring model returns.
type importedFields struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// ImportPDF extracts text from an uploaded PDF, asks the model to structure it
// as a resume document and persists the result as a new resume.
func (s *Service) ImportPDF(ctx context.Context, ownerID string, data []byte) (Resume, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Resume{}, ErrInvalidInput
	}
	if len(data) == 0 {
		return Resume{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	text, err := extract.PDFText(ctx, data)
	if err != nil {
		return Resume{}, err
	}
	if len(text) > importTextLimit {
		text = text[:importTextLimit]
	}

	raw, err := s.LLM.GenerateJSON(ctx, importPromptHeader+text)
	if err != nil {
		return Resume{}, err
	}

	var parsed importedFields
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Resume{}, fmt.Errorf("parse structured resume: %w", err)
	}

	now := time.Now().UTC()
	doc := Resume{
		ID:           uuid.NewString(),
		UserID:       ownerID,
		Title:        "Uploaded Resume - " + now.Format("1/2/2006"),
		PersonalInfo: parsed.PersonalInfo,
		Summary:      parsed.Summary,
		Education:    parsed.Education,
		Experience:   parsed.Experience,
		Skills:       parsed.Skills,
		Projects:     parsed.Projects,
		ThemeColor:   DefaultThemeColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	doc.EnsureSections()

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Resume{}, err
	}
	return doc, nil
}
