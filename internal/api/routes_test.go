package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gitscout/gitscout/internal/models"
)

func TestRouteRegistration(t *testing.T) {
	router, githubMock, gitlabMock := setupTestRouter()

	githubMock.On("SearchUsers", mock.Anything, mock.Anything).Return([]models.SearchResult{})
	gitlabMock.On("SearchUsers", mock.Anything, mock.Anything).Return([]models.SearchResult{})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "health check",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "search without query",
			path:           "/api/search",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "search with query",
			path:           "/api/search?q=cat",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown api path",
			path:           "/api/bitbucket/users/someone",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.path)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "/health")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSecurityHeaders(t *testing.T) {
	router, _, _ := setupTestRouter()

	w := doRequest(router, "/health")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
