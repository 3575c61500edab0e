package config

import (
	"os"
	"strconv"
	"time"
)

const (
	defaultGitHubBaseURL = "https://api.github.com"
	defaultGitLabBaseURL = "https://gitlab.com/api/v4"
)

type Config struct {
	Port          string
	Env           string
	GitHubToken   string
	GitLabToken   string
	GitHubBaseURL string
	GitLabBaseURL string
	// RequestTimeout bounds every outbound call to a provider.
	RequestTimeout time.Duration
	// StaticDir is the built web client served in production.
	StaticDir string
}

func Load() (*Config, error) {
	port := getEnv("PORT", "5000")
	env := getEnv("ENV", "development")
	githubToken := getEnv("GITHUB_API_TOKEN", "")
	gitlabToken := getEnv("GITLAB_API_TOKEN", "")
	githubBaseURL := getEnv("GITHUB_API_BASE_URL", defaultGitHubBaseURL)
	gitlabBaseURL := getEnv("GITLAB_API_BASE_URL", defaultGitLabBaseURL)
	staticDir := getEnv("STATIC_DIR", "client/build")

	timeoutSeconds, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT_SECONDS", "5"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           port,
		Env:            env,
		GitHubToken:    githubToken,
		GitLabToken:    gitlabToken,
		GitHubBaseURL:  githubBaseURL,
		GitLabBaseURL:  gitlabBaseURL,
		RequestTimeout: time.Duration(timeoutSeconds) * time.Second,
		StaticDir:      staticDir,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
