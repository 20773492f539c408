package resumes

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
)

// Service contains business logic for resumes. No authorization is applied:
// the owner id is caller-supplied and acts purely as a list filter, and anyone
// holding a resume id may read, update or delete it.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// List returns the owner's resumes, most recently updated first.
func (s *Service) List(ctx context.Context, ownerID string) ([]Resume, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByOwner(ctx, ownerID)
}

// Get fetches one resume by id.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Resume{}, ErrMalformedID
	}
	return s.Repo.GetByID(ctx, id)
}

// Create produces a fresh resume with defaulted title, empty personal info and
// empty section arrays.
func (s *Service) Create(ctx context.Context, ownerID, title string) (Resume, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Resume{}, ErrInvalidInput
	}
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}

	now := time.Now().UTC()
	doc := Resume{
		ID:         uuid.NewString(),
		UserID:     ownerID,
		Title:      title,
		ThemeColor: DefaultThemeColor,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	doc.EnsureSections()

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Resume{}, err
	}
	return doc, nil
}

// Update merges the request into the stored resume and persists it wholesale.
// Last writer wins: concurrent sessions overwrite each other silently.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Resume, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Resume{}, ErrMalformedID
	}

	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Resume{}, err
	}

	req.ApplyTo(&doc)
	doc.UpdatedAt = time.Now().UTC()

	if err := s.Repo.Update(ctx, doc); err != nil {
		return Resume{}, err
	}
	return doc, nil
}

// Delete removes a resume permanently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrMalformedID
	}
	return s.Repo.Delete(ctx, id)
}
