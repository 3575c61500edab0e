package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/gitscout/gitscout/internal/models"
)

// maxResults caps search and commit listings.
const maxResults = 5

// Client talks to the GitLab REST API v4.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a new GitLab client with the given base URL and token.
func NewClient(baseURL, token string, timeout time.Duration, logger *logrus.Logger) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = timeout

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Name returns the provider tag used in unified responses.
func (c *Client) Name() models.ProviderType {
	return models.ProviderGitLab
}

type user struct {
	Username  string  `json:"username"`
	AvatarURL string  `json:"avatar_url"`
	WebURL    string  `json:"web_url"`
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
}

// SearchUsers searches GitLab accounts matching the query. The API
// honors per_page, so no client-side truncation is needed. Failures
// are not propagated: a failing provider degrades the aggregate search
// instead of blanking it.
func (c *Client) SearchUsers(ctx context.Context, query string) []models.SearchResult {
	params := url.Values{}
	params.Set("search", query)
	params.Set("per_page", "5")

	var users []user
	if err := c.get(ctx, "/users?"+params.Encode(), &users); err != nil {
		c.logger.Warnf("Error searching users on GitLab: %v", err)
		return []models.SearchResult{}
	}

	results := make([]models.SearchResult, 0, len(users))
	for _, u := range users {
		results = append(results, models.SearchResult{
			Provider: models.ProviderGitLab,
			Username: u.Username,
			Avatar:   u.AvatarURL,
			URL:      u.WebURL,
		})
	}
	return results
}

// GetUser fetches a single account by username. The GitLab user API has
// no path lookup by username, so this filters the user list and takes
// the first match. An empty list yields ErrUserNotFound.
func (c *Client) GetUser(ctx context.Context, username string) (*models.UserProfile, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	params := url.Values{}
	params.Set("username", username)

	var users []user
	if err := c.get(ctx, "/users?"+params.Encode(), &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}

	u := users[0]
	return &models.UserProfile{
		Provider:  models.ProviderGitLab,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		WebURL:    u.WebURL,
		Name:      u.Name,
		Bio:       u.Bio,
	}, nil
}

// GetUserRepos lists the projects owned by a user. The payload is
// passed through with GitLab's own field names.
func (c *Client) GetUserRepos(ctx context.Context, username string) ([]json.RawMessage, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	var projects []json.RawMessage
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/projects", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetRepo fetches a single project. The ref must be a GitLabRepoRef.
func (c *Client) GetRepo(ctx context.Context, ref models.RepoRef) (json.RawMessage, error) {
	glRef, err := refOf(ref)
	if err != nil {
		return nil, err
	}

	var project json.RawMessage
	if err := c.get(ctx, "/projects/"+url.PathEscape(glRef.ProjectID), &project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetRepoCommits fetches the most recent commits of a project, capped
// at maxResults.
func (c *Client) GetRepoCommits(ctx context.Context, ref models.RepoRef) ([]json.RawMessage, error) {
	glRef, err := refOf(ref)
	if err != nil {
		return nil, err
	}

	var commits []json.RawMessage
	path := "/projects/" + url.PathEscape(glRef.ProjectID) + "/repository/commits?per_page=5"
	if err := c.get(ctx, path, &commits); err != nil {
		return nil, err
	}
	if len(commits) > maxResults {
		commits = commits[:maxResults]
	}
	return commits, nil
}

func refOf(ref models.RepoRef) (models.GitLabRepoRef, error) {
	glRef, ok := ref.(models.GitLabRepoRef)
	if !ok {
		return models.GitLabRepoRef{}, NewValidationError("ref", "expected a project ID reference")
	}
	if glRef.ProjectID == "" {
		return models.GitLabRepoRef{}, NewValidationError("projectId", "cannot be empty")
	}
	return glRef, nil
}

// get performs a GET request against the API and decodes the response
// body into result.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return NewAPIError(0, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewAPIError(resp.StatusCode, "failed to read response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return NewAPIError(resp.StatusCode, string(body), nil)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return NewAPIError(resp.StatusCode, "failed to decode response", err)
	}
	return nil
}
