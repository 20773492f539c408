package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/llm"
)

func newTestService() (*Service, *MemoryRepo) {
	repo := NewMemoryRepo()
	return &Service{Repo: repo, LLM: llm.PlaceholderClient{}}, repo
}

func TestServiceCreateDefaults(t *testing.T) {
	svc, _ := newTestService()

	doc, err := svc.Create(context.Background(), "user-1", "  ")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.Title != DefaultTitle {
		t.Fatalf("expected default title, got %q", doc.Title)
	}
	if doc.ThemeColor != DefaultThemeColor {
		t.Fatalf("expected default theme color, got %q", doc.ThemeColor)
	}
	if _, err := uuid.Parse(doc.ID); err != nil {
		t.Fatalf("expected uuid id, got %q", doc.ID)
	}
	if doc.Skills == nil || doc.Education == nil || doc.Achievements == nil {
		t.Fatalf("expected section arrays backfilled: %+v", doc)
	}
	if doc.PersonalInfo != (PersonalInfo{}) {
		t.Fatalf("expected empty personal info, got %+v", doc.PersonalInfo)
	}
	if !doc.CreatedAt.Equal(doc.UpdatedAt) {
		t.Fatalf("expected createdAt == updatedAt on create")
	}
}

func TestServiceCreateRequiresOwner(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Create(context.Background(), "  ", "Title"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceListRequiresOwner(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.List(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestServiceGetMalformedID(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}

func TestServiceUpdateAdvancesUpdatedAt(t *testing.T) {
	svc, _ := newTestService()

	doc, err := svc.Create(context.Background(), "user-1", "Title")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	updated, err := svc.Update(context.Background(), doc.ID, UpdateRequest{Summary: "New"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.UpdatedAt.After(doc.UpdatedAt) {
		t.Fatalf("expected updatedAt to advance: %v !> %v", updated.UpdatedAt, doc.UpdatedAt)
	}
	if updated.Summary != "New" {
		t.Fatalf("summary not applied: %q", updated.Summary)
	}

	fetched, err := svc.Get(context.Background(), doc.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched.Summary != "New" {
		t.Fatalf("update not persisted: %q", fetched.Summary)
	}
}

func TestServiceUpdateUnknownID(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateRequest{Title: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceDeleteRemovesDocument(t *testing.T) {
	svc, _ := newTestService()

	doc, err := svc.Create(context.Background(), "user-1", "Title")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Delete(context.Background(), doc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), doc.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestServiceDeleteMalformedID(t *testing.T) {
	svc, _ := newTestService()

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, ErrMalformedID) {
		t.Fatalf("expected ErrMalformedID, got %v", err)
	}
}
