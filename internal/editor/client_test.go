package editor

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/assist"
	"resume-builder/internal/resumes"
)

type cannedLLM struct {
	response string
}

func (c cannedLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.response, nil
}

func (c cannedLLM) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.response, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	llmStub := cannedLLM{response: "Generated summary."}
	resumeSvc := &resumes.Service{Repo: resumes.NewMemoryRepo(), LLM: llmStub}
	assistSvc := &assist.Service{LLM: llmStub}

	router := gin.New()
	api := router.Group("/api")
	resumes.NewHandler(resumeSvc).RegisterRoutes(api)
	assist.NewHandler(assistSvc).RegisterRoutes(api)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientDocumentRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, Identity{UserID: "user_abc123"})
	ctx := context.Background()

	created, err := client.Create(ctx, "New Edition")
	require.NoError(t, err)
	assert.Equal(t, "New Edition", created.Title)
	assert.Equal(t, "user_abc123", created.UserID)
	require.NotNil(t, created.Skills)

	session := NewSession(created)
	session.AddSkill(resumes.Skill{Name: "Go, SQL", Level: "Technical"})
	session.SetPersonalInfo(resumes.PersonalInfo{FullName: "Ada Lovelace"})

	saved, err := client.Save(ctx, created.ID, session.UpdateRequest())
	require.NoError(t, err)
	session.MarkSaved()
	assert.False(t, session.Dirty())
	require.Len(t, saved.Skills, 1)
	assert.Equal(t, "Go, SQL", saved.Skills[0].Name)

	fetched, err := client.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", fetched.PersonalInfo.FullName)
	require.Len(t, fetched.Skills, 1)

	listed, err := client.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	require.NoError(t, client.Delete(ctx, created.ID))

	_, err = client.Get(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "Resume not found", apiErr.Message)
}

func TestClientAssistCalls(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, Identity{UserID: "user-1"})
	ctx := context.Background()

	summary, err := client.GenerateSummary(ctx, "Backend Engineer", nil, []resumes.Skill{{Name: "Go"}})
	require.NoError(t, err)
	assert.Equal(t, "Generated summary.", summary)

	improved, err := client.ImproveText(ctx, "Did server stuff", "experience description")
	require.NoError(t, err)
	assert.Equal(t, "Generated summary.", improved)
}

func TestClientSurfacesValidationErrors(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, Identity{UserID: "user-1"})

	_, err := client.GenerateSummary(context.Background(), "", nil, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Job title is required", apiErr.Message)
}

func TestClientMalformedIDError(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, Identity{UserID: "user-1"})

	_, err := client.Get(context.Background(), "not-a-uuid")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Invalid resume id", apiErr.Message)
}
