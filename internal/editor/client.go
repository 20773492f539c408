package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-builder/internal/resumes"
)

// Identity is the caller-supplied identity attached to outgoing requests.
// It is passed explicitly into the client rather than read from any ambient
// store; the Token, when present, goes out as a bearer Authorization header
// even though no server route currently validates it.
type Identity struct {
	UserID string
	Token  string
}

// APIError is a non-2xx response decoded from the server's {message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client is the typed REST client the editor uses to round-trip documents
// and call the text-assist endpoints.
type Client struct {
	baseURL  string
	identity Identity
	http     *http.Client
}

// NewClient constructs a Client for the given API base URL.
func NewClient(baseURL string, identity Identity) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		identity: identity,
		http:     &http.Client{Timeout: 90 * time.Second},
	}
}

// List fetches the identity's resumes, newest update first.
func (c *Client) List(ctx context.Context) ([]resumes.Resume, error) {
	var out []resumes.Resume
	err := c.do(ctx, http.MethodGet, "/api/resumes?userId="+c.identity.UserID, nil, &out)
	return out, err
}

// Get fetches one resume by id.
func (c *Client) Get(ctx context.Context, id string) (resumes.Resume, error) {
	var out resumes.Resume
	if err := c.do(ctx, http.MethodGet, "/api/resumes/"+id, nil, &out); err != nil {
		return resumes.Resume{}, err
	}
	// Older documents may round-trip with null sections.
	out.EnsureSections()
	return out, nil
}

// Create makes a new resume owned by the identity.
func (c *Client) Create(ctx context.Context, title string) (resumes.Resume, error) {
	body := map[string]string{"userId": c.identity.UserID, "title": title}
	var out resumes.Resume
	if err := c.do(ctx, http.MethodPost, "/api/resumes", body, &out); err != nil {
		return resumes.Resume{}, err
	}
	out.EnsureSections()
	return out, nil
}

// Save writes the session's full state back to the server.
func (c *Client) Save(ctx context.Context, id string, req resumes.UpdateRequest) (resumes.Resume, error) {
	var out resumes.Resume
	if err := c.do(ctx, http.MethodPut, "/api/resumes/"+id, req, &out); err != nil {
		return resumes.Resume{}, err
	}
	out.EnsureSections()
	return out, nil
}

// Delete removes a resume permanently.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/resumes/"+id, nil, nil)
}

type assistResult struct {
	Result string `json:"result"`
}

// GenerateSummary requests a generated professional summary.
func (c *Client) GenerateSummary(ctx context.Context, jobTitle string, experience []resumes.Experience, skills []resumes.Skill) (string, error) {
	body := map[string]any{
		"jobTitle":   jobTitle,
		"experience": experience,
		"skills":     skills,
	}
	var out assistResult
	if err := c.do(ctx, http.MethodPost, "/api/ai/generate-summary", body, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

// ImproveText requests a rewrite of one section's text.
func (c *Client) ImproveText(ctx context.Context, text, sectionType string) (string, error) {
	body := map[string]string{"text": text, "type": sectionType}
	var out assistResult
	if err := c.do(ctx, http.MethodPost, "/api/ai/improve-text", body, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.identity.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.identity.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &APIError{Status: resp.StatusCode, Message: body.Message}
}
