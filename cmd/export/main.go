package main

// Render a resume to PDF through the preview pipeline:
//   go run ./cmd/export -api http://localhost:5000 -id <resume-id> -out resume.pdf

import (
	"context"
	"flag"
	"log"
	"os"

	"resume-builder/internal/editor"
	"resume-builder/internal/export"
)

func main() {
	apiURL := flag.String("api", "http://localhost:5000", "API base URL")
	id := flag.String("id", "", "resume id")
	userID := flag.String("user", "", "owner id (used for listing only)")
	token := flag.String("token", "", "optional bearer token")
	out := flag.String("out", "resume.pdf", "output file")
	flag.Parse()

	if *id == "" {
		log.Fatal("resume id is required")
	}

	ctx := context.Background()
	client := editor.NewClient(*apiURL, editor.Identity{UserID: *userID, Token: *token})

	doc, err := client.Get(ctx, *id)
	if err != nil {
		log.Fatalf("fetch resume: %v", err)
	}

	html, err := editor.Render(doc, editor.DefaultFormatOptions())
	if err != nil {
		log.Fatalf("render preview: %v", err)
	}

	pdf, err := export.PrintHTML(ctx, html, export.DefaultOptions())
	if err != nil {
		log.Fatalf("print pdf: %v", err)
	}

	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(pdf))
}
