package assist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/llm"
	"resume-builder/internal/resumes"
)

const defaultTimeout = 60 * time.Second

// Service proxies prompt-shaped requests to the generative-text provider.
// Each call is a single cancellable round trip bounded by Timeout; there is
// no retry and no caching of identical prompts.
type Service struct {
	LLM     llm.Client
	Timeout time.Duration
}

// GenerateSummary asks the model for a professional summary. The raw text
// response is returned unmodified; the prompt's brevity request is not
// enforced on the output.
func (s *Service) GenerateSummary(ctx context.Context, jobTitle string, experience []resumes.Experience, skills []resumes.Skill) (string, error) {
	if strings.TrimSpace(jobTitle) == "" {
		return "", ErrInvalidInput
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	text, err := s.LLM.GenerateText(ctx, SummaryPrompt(jobTitle, experience, skills))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}
	return text, nil
}

// ImproveText asks the model to rewrite a section's text.
func (s *Service) ImproveText(ctx context.Context, text, sectionType string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrInvalidInput
	}

	ctx, cancel := s.bound(ctx)
	defer cancel()

	improved, err := s.LLM.GenerateText(ctx, ImprovePrompt(text, sectionType))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, err.Error())
	}
	return improved, nil
}

func (s *Service) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
