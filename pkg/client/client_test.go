package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscout/gitscout/internal/models"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "cat", r.URL.Query().Get("q"))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"results":[{"provider":"github","username":"octocat","avatar":"x","url":"y"}]}`))
	}))
	defer server.Close()

	results, err := NewClient(server.URL).Search("cat")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.ProviderGitHub, results[0].Provider)
	assert.Equal(t, "octocat", results[0].Username)
}

func TestClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/gitlab/users/gitlabuser", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"provider":"gitlab","username":"gitlabuser","avatar_url":"a","web_url":"b","name":null,"bio":null}`))
	}))
	defer server.Close()

	profile, err := NewClient(server.URL).GetUser(models.ProviderGitLab, "gitlabuser")
	require.NoError(t, err)
	assert.Equal(t, "gitlabuser", profile.Username)
	assert.Equal(t, "b", profile.WebURL)
	assert.Nil(t, profile.Name)
}

func TestClient_ErrorBodySurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"User not found"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetUser(models.ProviderGitLab, "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "User not found")
	assert.Contains(t, err.Error(), "500")
}

func TestClient_GetGitHubRepoCommits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/github/repos/octocat/repo-a/commits", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[{"sha":"abc","commit":{"message":"m","author":{"date":"2024-01-01T00:00:00Z"}}}]`))
	}))
	defer server.Close()

	commits, err := NewClient(server.URL).GetGitHubRepoCommits("octocat", "repo-a")
	require.NoError(t, err)
	assert.Len(t, commits, 1)
}
