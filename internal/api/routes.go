package api

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gitscout/gitscout/internal/models"
)

// SetupRouter configures the API routes
func SetupRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(SecurityHeaders())

	r.GET("/health", h.Health)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/search", h.Search)

		github := api.Group("/github")
		{
			github.GET("/users/:username", h.GetUser(models.ProviderGitHub))
			github.GET("/users/:username/repos", h.GetUserRepos(models.ProviderGitHub))
			github.GET("/repos/:owner/:repo", h.GetGitHubRepo)
			github.GET("/repos/:owner/:repo/commits", h.GetGitHubRepoCommits)
		}

		gitlab := api.Group("/gitlab")
		{
			gitlab.GET("/users/:username", h.GetUser(models.ProviderGitLab))
			gitlab.GET("/users/:username/repos", h.GetUserRepos(models.ProviderGitLab))
			gitlab.GET("/repos/:projectId", h.GetGitLabRepo)
			gitlab.GET("/repos/:projectId/commits", h.GetGitLabRepoCommits)
		}
	}

	return r
}

// ServeStatic serves the built web client with an index.html fallback
// for client-side routes. API paths keep their JSON 404s.
func ServeStatic(r *gin.Engine, dir string) {
	r.Static("/static", filepath.Join(dir, "static"))
	r.StaticFile("/", filepath.Join(dir, "index.html"))
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
