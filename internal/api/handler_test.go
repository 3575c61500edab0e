package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gitscout/gitscout/internal/gitlab"
	"github.com/gitscout/gitscout/internal/models"
	"github.com/gitscout/gitscout/internal/search"
)

// MockProvider is a mock implementation of models.Provider
type MockProvider struct {
	mock.Mock
	name models.ProviderType
}

func (m *MockProvider) Name() models.ProviderType {
	return m.name
}

func (m *MockProvider) SearchUsers(ctx context.Context, query string) []models.SearchResult {
	args := m.Called(ctx, query)
	return args.Get(0).([]models.SearchResult)
}

func (m *MockProvider) GetUser(ctx context.Context, username string) (*models.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProvider) GetUserRepos(ctx context.Context, username string) ([]json.RawMessage, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockProvider) GetRepo(ctx context.Context, ref models.RepoRef) (json.RawMessage, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockProvider) GetRepoCommits(ctx context.Context, ref models.RepoRef) ([]json.RawMessage, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func setupTestRouter() (*gin.Engine, *MockProvider, *MockProvider) {
	gin.SetMode(gin.TestMode)

	githubMock := &MockProvider{name: models.ProviderGitHub}
	gitlabMock := &MockProvider{name: models.ProviderGitLab}

	logger := logrus.New()
	logger.SetOutput(bytes.NewBuffer(nil)) // Discard logs during tests

	searchService := search.NewService(githubMock, gitlabMock, logger)
	handler := NewHandler(searchService, githubMock, gitlabMock, logger)

	return SetupRouter(handler), githubMock, gitlabMock
}

func doRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearch_MissingQuery(t *testing.T) {
	router, githubMock, gitlabMock := setupTestRouter()

	w := doRequest(router, "/api/search")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Query parameter 'q' is required"}`, w.Body.String())

	githubMock.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything)
	gitlabMock.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything)
}

func TestSearch_MergedResults(t *testing.T) {
	router, githubMock, gitlabMock := setupTestRouter()

	githubMock.On("SearchUsers", mock.Anything, "cat").Return([]models.SearchResult{
		{Provider: models.ProviderGitHub, Username: "octocat", Avatar: "x", URL: "y"},
	})
	gitlabMock.On("SearchUsers", mock.Anything, "cat").Return([]models.SearchResult{
		{Provider: models.ProviderGitLab, Username: "gitlabuser", Avatar: "a", URL: "b"},
	})

	w := doRequest(router, "/api/search?q=cat")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[
		{"provider":"github","username":"octocat","avatar":"x","url":"y"},
		{"provider":"gitlab","username":"gitlabuser","avatar":"a","url":"b"}
	]}`, w.Body.String())
}

func TestGetUser_GitHubProfile(t *testing.T) {
	router, githubMock, _ := setupTestRouter()

	name := "The Octocat"
	githubMock.On("GetUser", mock.Anything, "octocat").Return(&models.UserProfile{
		Provider:  models.ProviderGitHub,
		Username:  "octocat",
		AvatarURL: "https://avatars.test/octocat",
		HTMLURL:   "https://github.test/octocat",
		Name:      &name,
	}, nil)

	w := doRequest(router, "/api/github/users/octocat")

	assert.Equal(t, http.StatusOK, w.Code)
	// web_url must be absent for a GitHub profile; name and bio pass
	// through, null included.
	assert.JSONEq(t, `{
		"provider":"github",
		"username":"octocat",
		"avatar_url":"https://avatars.test/octocat",
		"html_url":"https://github.test/octocat",
		"name":"The Octocat",
		"bio":null
	}`, w.Body.String())
}

func TestGetUser_GitLabNotFound(t *testing.T) {
	router, _, gitlabMock := setupTestRouter()

	gitlabMock.On("GetUser", mock.Anything, "nonexistent").Return(nil, gitlab.ErrUserNotFound)

	w := doRequest(router, "/api/gitlab/users/nonexistent")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestGetUserRepos_RawPassthrough(t *testing.T) {
	router, githubMock, _ := setupTestRouter()

	raw := `{"id":1,"name":"repo-a","html_url":"https://github.test/octocat/repo-a","created_at":"2020-01-01T00:00:00Z","updated_at":"2021-01-01T00:00:00Z","description":null}`
	githubMock.On("GetUserRepos", mock.Anything, "octocat").Return([]json.RawMessage{json.RawMessage(raw)}, nil)

	w := doRequest(router, "/api/github/users/octocat/repos")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "["+raw+"]", w.Body.String())
}

func TestGetRepo_GitLabRefDispatch(t *testing.T) {
	router, _, gitlabMock := setupTestRouter()

	raw := `{"id":42,"name":"project-a","web_url":"https://gitlab.test/gitlabuser/project-a"}`
	gitlabMock.On("GetRepo", mock.Anything, models.GitLabRepoRef{ProjectID: "42"}).Return(json.RawMessage(raw), nil)

	w := doRequest(router, "/api/gitlab/repos/42")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, raw, w.Body.String())
	gitlabMock.AssertExpectations(t)
}

func TestGetRepoCommits_GitHub(t *testing.T) {
	router, githubMock, _ := setupTestRouter()

	raw := `{"sha":"abc123","commit":{"message":"initial commit","author":{"date":"2024-01-01T00:00:00Z"}}}`
	githubMock.On("GetRepoCommits", mock.Anything, models.GitHubRepoRef{Owner: "octocat", Name: "repo-a"}).
		Return([]json.RawMessage{json.RawMessage(raw)}, nil)

	w := doRequest(router, "/api/github/repos/octocat/repo-a/commits")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "["+raw+"]", w.Body.String())
	githubMock.AssertExpectations(t)
}

func TestGetRepoCommits_UpstreamErrorSurfaces(t *testing.T) {
	router, githubMock, _ := setupTestRouter()

	githubMock.On("GetRepoCommits", mock.Anything, mock.Anything).
		Return(nil, assertableError("GitHub API error (status 403): rate limit exceeded"))

	w := doRequest(router, "/api/github/repos/octocat/repo-a/commits")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "GitHub API error (status 403): rate limit exceeded", body["error"])
}

type assertableError string

func (e assertableError) Error() string { return string(e) }
