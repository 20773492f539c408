package resumes

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/extract"
)

type fakeLLM struct {
	textResponse string
	jsonResponse string
	err          error
	lastPrompt   string
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.textResponse, f.err
}

func (f *fakeLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.jsonResponse, f.err
}

func TestImportPDFRequiresOwner(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}}

	_, err := svc.ImportPDF(context.Background(), "  ", []byte("%PDF-1.4"))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestImportPDFRejectsEmptyFile(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}}

	_, err := svc.ImportPDF(context.Background(), "user-1", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestImportPDFRejectsNonPDF(t *testing.T) {
	svc := &Service{Repo: NewMemoryRepo(), LLM: &fakeLLM{}}

	_, err := svc.ImportPDF(context.Background(), "user-1", []byte("just some text"))
	if !errors.Is(err, extract.ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}
