package search

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/gitscout/gitscout/internal/errors"
	"github.com/gitscout/gitscout/internal/models"
)

// Response is the unified search payload: GitHub matches first, then
// GitLab matches, each preserving the upstream order.
type Response struct {
	Results []models.SearchResult `json:"results"`
}

// Service fans a user search out to both providers and merges the
// results.
type Service struct {
	github models.Provider
	gitlab models.Provider
	logger *logrus.Logger
}

// NewService creates a new search service over the given providers.
func NewService(github, gitlab models.Provider, logger *logrus.Logger) *Service {
	return &Service{
		github: github,
		gitlab: gitlab,
		logger: logger,
	}
}

// Search queries both providers concurrently. An empty query fails
// fast with a validation error before any upstream call; a provider
// outage never fails the search because the adapters swallow their
// own search errors.
func (s *Service) Search(ctx context.Context, query string) (*Response, error) {
	if query == "" {
		return nil, errors.NewValidationError("Query parameter 'q' is required")
	}

	var (
		githubResults []models.SearchResult
		gitlabResults []models.SearchResult
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		githubResults = s.github.SearchUsers(ctx, query)
	}()
	go func() {
		defer wg.Done()
		gitlabResults = s.gitlab.SearchUsers(ctx, query)
	}()
	wg.Wait()

	s.logger.WithFields(logrus.Fields{
		"query":  query,
		"github": len(githubResults),
		"gitlab": len(gitlabResults),
	}).Debug("Search completed")

	results := make([]models.SearchResult, 0, len(githubResults)+len(gitlabResults))
	results = append(results, githubResults...)
	results = append(results, gitlabResults...)

	return &Response{Results: results}, nil
}
