package models

import (
	"context"
	"encoding/json"
)

// ProviderType identifies one of the supported code-hosting platforms.
type ProviderType string

const (
	ProviderGitHub ProviderType = "github"
	ProviderGitLab ProviderType = "gitlab"
)

// SearchResult is a single entry in the unified user search response.
type SearchResult struct {
	Provider ProviderType `json:"provider"`
	Username string       `json:"username"`
	Avatar   string       `json:"avatar"`
	URL      string       `json:"url"`
}

// UserProfile is the normalized account profile returned by the user
// detail endpoints. HTMLURL is set for GitHub accounts and WebURL for
// GitLab accounts; the other field is omitted. Name and Bio pass
// through exactly as the provider returned them, null included.
type UserProfile struct {
	Provider  ProviderType `json:"provider"`
	Username  string       `json:"username"`
	AvatarURL string       `json:"avatar_url"`
	HTMLURL   string       `json:"html_url,omitempty"`
	WebURL    string       `json:"web_url,omitempty"`
	Name      *string      `json:"name"`
	Bio       *string      `json:"bio"`
}

// RepoRef identifies a repository in provider-native terms. GitHub
// addresses a repository by owner and name while GitLab uses a single
// project ID, so callers must construct the variant matching the
// provider they are talking to.
type RepoRef interface {
	isRepoRef()
}

// GitHubRepoRef identifies a GitHub repository.
type GitHubRepoRef struct {
	Owner string
	Name  string
}

func (GitHubRepoRef) isRepoRef() {}

// GitLabRepoRef identifies a GitLab project by its numeric ID (kept as
// a string because it travels through URL path segments unchanged).
type GitLabRepoRef struct {
	ProjectID string
}

func (GitLabRepoRef) isRepoRef() {}

// Provider is the operation contract implemented by both platform
// adapters.
//
// SearchUsers is best-effort: transport and upstream failures are
// logged and yield an empty slice, so one provider outage cannot blank
// the aggregate search. Every other operation propagates its error.
//
// Repository and commit payloads are returned unmodified from the
// provider; consumers branch on the provider to read them.
type Provider interface {
	Name() ProviderType
	SearchUsers(ctx context.Context, query string) []SearchResult
	GetUser(ctx context.Context, username string) (*UserProfile, error)
	GetUserRepos(ctx context.Context, username string) ([]json.RawMessage, error)
	GetRepo(ctx context.Context, ref RepoRef) (json.RawMessage, error)
	GetRepoCommits(ctx context.Context, ref RepoRef) ([]json.RawMessage, error)
}
