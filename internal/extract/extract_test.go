package extract

import (
	"context"
	"errors"
	"testing"
)

func TestPDFTextRejectsNonPDF(t *testing.T) {
	_, err := PDFText(context.Background(), []byte("plain text resume"))
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}

func TestPDFTextRejectsEmptyPayload(t *testing.T) {
	_, err := PDFText(context.Background(), nil)
	if !errors.Is(err, ErrNotPDF) {
		t.Fatalf("expected ErrNotPDF, got %v", err)
	}
}

func TestPDFTextRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PDFText(ctx, []byte("%PDF-1.4"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
