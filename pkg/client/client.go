package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/gitscout/gitscout/internal/models"
	"github.com/gitscout/gitscout/internal/search"
)

// Client is the API client for a running gitscout server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Search runs a unified user search.
func (c *Client) Search(query string) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)

	var response search.Response
	if err := c.get("/api/search", params, &response); err != nil {
		return nil, err
	}
	return response.Results, nil
}

// GetUser retrieves a user profile from one provider.
func (c *Client) GetUser(provider models.ProviderType, username string) (*models.UserProfile, error) {
	path := fmt.Sprintf("/api/%s/users/%s", provider, url.PathEscape(username))

	var profile models.UserProfile
	if err := c.get(path, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserRepos retrieves a user's repositories in the provider's raw shape.
func (c *Client) GetUserRepos(provider models.ProviderType, username string) ([]json.RawMessage, error) {
	path := fmt.Sprintf("/api/%s/users/%s/repos", provider, url.PathEscape(username))

	var repos []json.RawMessage
	if err := c.get(path, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetGitHubRepoCommits retrieves the last commits of a GitHub repository.
func (c *Client) GetGitHubRepoCommits(owner, repo string) ([]json.RawMessage, error) {
	path := fmt.Sprintf("/api/github/repos/%s/%s/commits", url.PathEscape(owner), url.PathEscape(repo))

	var commits []json.RawMessage
	if err := c.get(path, nil, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// GetGitLabRepoCommits retrieves the last commits of a GitLab project.
func (c *Client) GetGitLabRepoCommits(projectID string) ([]json.RawMessage, error) {
	path := fmt.Sprintf("/api/gitlab/repos/%s/commits", url.PathEscape(projectID))

	var commits []json.RawMessage
	if err := c.get(path, nil, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

func (c *Client) get(path string, params url.Values, result interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	resp, err := c.httpClient.Get(u)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
			return fmt.Errorf("API error (status %d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("API error (status %d)", resp.StatusCode)
	}

	return json.Unmarshal(body, result)
}
