package extract

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotPDF is returned when the payload does not look like a PDF.
var ErrNotPDF = errors.New("only PDF files are allowed")

// PDFText pulls plain text from an in-memory PDF payload.
// Library: github.com/ledongthuc/pdf.
func PDFText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !looksLikePDF(data) {
		return "", ErrNotPDF
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func looksLikePDF(data []byte) bool {
	return strings.HasPrefix(string(data), "%PDF-")
}
