package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Structured sections are stored as
// JSONB columns; the row is always written wholesale.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, personal_info, summary, education, experience, skills, projects, responsibilities, achievements, theme_color, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, doc Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    title,
    personal_info,
    summary,
    education,
    experience,
    skills,
    projects,
    responsibilities,
    achievements,
    theme_color,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	cols, err := marshalSections(doc)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.Title,
		cols.personalInfo,
		doc.Summary,
		cols.education,
		cols.experience,
		cols.skills,
		cols.projects,
		cols.responsibilities,
		cols.achievements,
		doc.ThemeColor,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

// GetByID fetches a resume by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, id)
	doc, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return doc, nil
}

// ListByOwner lists resumes for an owner, most recently updated first.
func (r *PGRepo) ListByOwner(ctx context.Context, userID string) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		doc, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// Update overwrites every mutable column of the stored resume.
func (r *PGRepo) Update(ctx context.Context, doc Resume) error {
	const query = `
UPDATE resumes
SET title = $2,
    personal_info = $3,
    summary = $4,
    education = $5,
    experience = $6,
    skills = $7,
    projects = $8,
    responsibilities = $9,
    achievements = $10,
    theme_color = $11,
    updated_at = $12
WHERE id = $1`

	cols, err := marshalSections(doc)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.Title,
		cols.personalInfo,
		doc.Summary,
		cols.education,
		cols.experience,
		cols.skills,
		cols.projects,
		cols.responsibilities,
		cols.achievements,
		doc.ThemeColor,
		doc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a resume permanently.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type sectionColumns struct {
	personalInfo     []byte
	education        []byte
	experience       []byte
	skills           []byte
	projects         []byte
	responsibilities []byte
	achievements     []byte
}

func marshalSections(doc Resume) (sectionColumns, error) {
	doc.EnsureSections()
	var cols sectionColumns
	var err error
	if cols.personalInfo, err = json.Marshal(doc.PersonalInfo); err != nil {
		return cols, fmt.Errorf("marshal personal_info: %w", err)
	}
	if cols.education, err = json.Marshal(doc.Education); err != nil {
		return cols, fmt.Errorf("marshal education: %w", err)
	}
	if cols.experience, err = json.Marshal(doc.Experience); err != nil {
		return cols, fmt.Errorf("marshal experience: %w", err)
	}
	if cols.skills, err = json.Marshal(doc.Skills); err != nil {
		return cols, fmt.Errorf("marshal skills: %w", err)
	}
	if cols.projects, err = json.Marshal(doc.Projects); err != nil {
		return cols, fmt.Errorf("marshal projects: %w", err)
	}
	if cols.responsibilities, err = json.Marshal(doc.Responsibilities); err != nil {
		return cols, fmt.Errorf("marshal responsibilities: %w", err)
	}
	if cols.achievements, err = json.Marshal(doc.Achievements); err != nil {
		return cols, fmt.Errorf("marshal achievements: %w", err)
	}
	return cols, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var doc Resume
	var personalInfo, education, experience, skills, projects, responsibilities, achievements []byte
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.Title,
		&personalInfo,
		&doc.Summary,
		&education,
		&experience,
		&skills,
		&projects,
		&responsibilities,
		&achievements,
		&doc.ThemeColor,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	); err != nil {
		return Resume{}, err
	}

	if err := json.Unmarshal(personalInfo, &doc.PersonalInfo); err != nil {
		return Resume{}, fmt.Errorf("unmarshal personal_info: %w", err)
	}
	if err := json.Unmarshal(education, &doc.Education); err != nil {
		return Resume{}, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(experience, &doc.Experience); err != nil {
		return Resume{}, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(skills, &doc.Skills); err != nil {
		return Resume{}, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(projects, &doc.Projects); err != nil {
		return Resume{}, fmt.Errorf("unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(responsibilities, &doc.Responsibilities); err != nil {
		return Resume{}, fmt.Errorf("unmarshal responsibilities: %w", err)
	}
	if err := json.Unmarshal(achievements, &doc.Achievements); err != nil {
		return Resume{}, fmt.Errorf("unmarshal achievements: %w", err)
	}

	doc.EnsureSections()
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
