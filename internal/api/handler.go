package api

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gitscout/gitscout/internal/errors"
	"github.com/gitscout/gitscout/internal/models"
	"github.com/gitscout/gitscout/internal/search"
)

// SearchService is the aggregation gateway consumed by the search
// endpoint.
type SearchService interface {
	Search(ctx context.Context, query string) (*search.Response, error)
}

// ErrorResponse is the structured error body returned by every
// failing endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler dispatches API requests to the gateway and the provider
// adapters.
type Handler struct {
	searchService SearchService
	providers     map[models.ProviderType]models.Provider
	logger        *logrus.Logger
}

// NewHandler creates a new API handler.
func NewHandler(searchService SearchService, github, gitlab models.Provider, logger *logrus.Logger) *Handler {
	return &Handler{
		searchService: searchService,
		providers: map[models.ProviderType]models.Provider{
			models.ProviderGitHub: github,
			models.ProviderGitLab: gitlab,
		},
		logger: logger,
	}
}

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Search godoc
// @Summary Search users across GitHub and GitLab
// @Description Returns up to 5 matches per provider, GitHub results first
// @Tags search
// @Produce json
// @Param q query string true "Username to search for"
// @Success 200 {object} search.Response
// @Failure 400 {object} ErrorResponse
// @Router /search [get]
func (h *Handler) Search(c *gin.Context) {
	res, err := h.searchService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetUser godoc
// @Summary Get a user profile from one provider
// @Tags users
// @Produce json
// @Param provider path string true "Provider" Enums(github, gitlab)
// @Param username path string true "Username"
// @Success 200 {object} models.UserProfile
// @Failure 500 {object} ErrorResponse
// @Router /{provider}/users/{username} [get]
func (h *Handler) GetUser(pt models.ProviderType) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile, err := h.providers[pt].GetUser(c.Request.Context(), c.Param("username"))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// GetUserRepos godoc
// @Summary List a user's repositories in the provider's raw shape
// @Tags users
// @Produce json
// @Param provider path string true "Provider" Enums(github, gitlab)
// @Param username path string true "Username"
// @Success 200 {array} object
// @Failure 500 {object} ErrorResponse
// @Router /{provider}/users/{username}/repos [get]
func (h *Handler) GetUserRepos(pt models.ProviderType) gin.HandlerFunc {
	return func(c *gin.Context) {
		repos, err := h.providers[pt].GetUserRepos(c.Request.Context(), c.Param("username"))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, repos)
	}
}

// GetGitHubRepo godoc
// @Summary Get a GitHub repository in its raw shape
// @Tags repositories
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} object
// @Failure 500 {object} ErrorResponse
// @Router /github/repos/{owner}/{repo} [get]
func (h *Handler) GetGitHubRepo(c *gin.Context) {
	ref := models.GitHubRepoRef{Owner: c.Param("owner"), Name: c.Param("repo")}
	h.respondRepo(c, models.ProviderGitHub, ref)
}

// GetGitHubRepoCommits godoc
// @Summary Get the last 5 commits of a GitHub repository
// @Tags repositories
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {array} object
// @Failure 500 {object} ErrorResponse
// @Router /github/repos/{owner}/{repo}/commits [get]
func (h *Handler) GetGitHubRepoCommits(c *gin.Context) {
	ref := models.GitHubRepoRef{Owner: c.Param("owner"), Name: c.Param("repo")}
	h.respondRepoCommits(c, models.ProviderGitHub, ref)
}

// GetGitLabRepo godoc
// @Summary Get a GitLab project in its raw shape
// @Tags repositories
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {object} object
// @Failure 500 {object} ErrorResponse
// @Router /gitlab/repos/{projectId} [get]
func (h *Handler) GetGitLabRepo(c *gin.Context) {
	ref := models.GitLabRepoRef{ProjectID: c.Param("projectId")}
	h.respondRepo(c, models.ProviderGitLab, ref)
}

// GetGitLabRepoCommits godoc
// @Summary Get the last 5 commits of a GitLab project
// @Tags repositories
// @Produce json
// @Param projectId path string true "Project ID"
// @Success 200 {array} object
// @Failure 500 {object} ErrorResponse
// @Router /gitlab/repos/{projectId}/commits [get]
func (h *Handler) GetGitLabRepoCommits(c *gin.Context) {
	ref := models.GitLabRepoRef{ProjectID: c.Param("projectId")}
	h.respondRepoCommits(c, models.ProviderGitLab, ref)
}

func (h *Handler) respondRepo(c *gin.Context, pt models.ProviderType, ref models.RepoRef) {
	repo, err := h.providers[pt].GetRepo(c.Request.Context(), ref)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, repo)
}

func (h *Handler) respondRepoCommits(c *gin.Context, pt models.ProviderType, ref models.RepoRef) {
	commits, err := h.providers[pt].GetRepoCommits(c.Request.Context(), ref)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, commits)
}

// respondError translates an error into the structured {"error": ...}
// body. Validation errors are the only client errors; everything else,
// not-found included, surfaces as 500 with the underlying message.
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		status = appErr.StatusCode()
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		h.logger.WithFields(logrus.Fields{
			"request_id": c.GetString(requestIDKey),
			"path":       c.Request.URL.Path,
		}).Errorf("Request failed: %v", err)
	}

	c.JSON(status, ErrorResponse{Error: message})
}
