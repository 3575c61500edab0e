package github

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

// maxResults caps search and commit listings. The search endpoint does
// not honor per_page exactly, so results are truncated client-side too.
const maxResults = 5

// Client talks to the GitHub REST API v3.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a new GitHub client with the given base URL and token.
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
	return models.ProviderGitHub
}

type searchUsersResponse struct {
	Items []searchUser `json:"items"`
}

type searchUser struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// SearchUsers searches GitHub accounts matching the query and returns
// at most maxResults entries. Failures are not propagated: a failing
// provider degrades the aggregate search instead of blanking it.
func (c *Client) SearchUsers(ctx context.Context, query string) []models.SearchResult {
	params := url.Values{}
	params.Set("q", query)
	params.Set("per_page", "5")

	var res searchUsersResponse
	if err := c.get(ctx, "/search/users?"+params.Encode(), &res); err != nil {
		c.logger.Warnf("Error searching users on GitHub: %v", err)
		return []models.SearchResult{}
	}

	items := res.Items
	if len(items) > maxResults {
		items = items[:maxResults]
	}

	results := make([]models.SearchResult, 0, len(items))
	for _, u := range items {
		results = append(results, models.SearchResult{
			Provider: models.ProviderGitHub,
			Username: u.Login,
			Avatar:   u.AvatarURL,
			URL:      u.HTMLURL,
		})
	}
	return results
}

type userResponse struct {
	Login     string  `json:"login"`
	AvatarURL string  `json:"avatar_url"`
	HTMLURL   string  `json:"html_url"`
	Name      *string `json:"name"`
	Bio       *string `json:"bio"`
}

// GetUser fetches a single account by username. A 404 from GitHub
// propagates to the caller.
func (c *Client) GetUser(ctx context.Context, username string) (*models.UserProfile, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	var u userResponse
	if err := c.get(ctx, "/users/"+url.PathEscape(username), &u); err != nil {
		return nil, err
	}

	return &models.UserProfile{
		Provider:  models.ProviderGitHub,
		Username:  u.Login,
		AvatarURL: u.AvatarURL,
		HTMLURL:   u.HTMLURL,
		Name:      u.Name,
		Bio:       u.Bio,
	}, nil
}

// GetUserRepos lists the repositories owned by a user. The payload is
// passed through with GitHub's own field names.
func (c *Client) GetUserRepos(ctx context.Context, username string) ([]json.RawMessage, error) {
	if username == "" {
		return nil, NewValidationError("username", "cannot be empty")
	}

	var repos []json.RawMessage
	if err := c.get(ctx, "/users/"+url.PathEscape(username)+"/repos", &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepo fetches a single repository. The ref must be a GitHubRepoRef.
func (c *Client) GetRepo(ctx context.Context, ref models.RepoRef) (json.RawMessage, error) {
	ghRef, err := refOf(ref)
	if err != nil {
		return nil, err
	}

	var repo json.RawMessage
	path := fmt.Sprintf("/repos/%s/%s", url.PathEscape(ghRef.Owner), url.PathEscape(ghRef.Name))
	if err := c.get(ctx, path, &repo); err != nil {
		return nil, err
	}
	return repo, nil
}

// GetRepoCommits fetches the most recent commits of a repository,
// capped at maxResults.
func (c *Client) GetRepoCommits(ctx context.Context, ref models.RepoRef) ([]json.RawMessage, error) {
	ghRef, err := refOf(ref)
	if err != nil {
		return nil, err
	}

	var commits []json.RawMessage
	path := fmt.Sprintf("/repos/%s/%s/commits?per_page=5", url.PathEscape(ghRef.Owner), url.PathEscape(ghRef.Name))
	if err := c.get(ctx, path, &commits); err != nil {
		return nil, err
	}
	if len(commits) > maxResults {
		commits = commits[:maxResults]
	}
	return commits, nil
}

func refOf(ref models.RepoRef) (models.GitHubRepoRef, error) {
	ghRef, ok := ref.(models.GitHubRepoRef)
	if !ok {
		return models.GitHubRepoRef{}, NewValidationError("ref", "expected an owner/name repository reference")
	}
	if ghRef.Owner == "" {
		return models.GitHubRepoRef{}, NewValidationError("owner", "cannot be empty")
	}
	if ghRef.Name == "" {
		return models.GitHubRepoRef{}, NewValidationError("repo", "cannot be empty")
	}
	return ghRef, nil
}

// get performs a GET request against the API and decodes the response
// body into result.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

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
