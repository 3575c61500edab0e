package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gitscout/gitscout/internal/models"
	"github.com/gitscout/gitscout/pkg/client"
)

var (
	apiEndpoint string
	outputJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "gitscout",
	Short: "Search developers across GitHub and GitLab",
	Long: `A CLI client for the gitscout API.

Searches a username across GitHub and GitLab and browses the matched
accounts' profiles, repositories and recent commits.`,
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search users on both providers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var userCmd = &cobra.Command{
	Use:   "user [provider] [username]",
	Short: "Show a user profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runUser,
}

var reposCmd = &cobra.Command{
	Use:   "repos [provider] [username]",
	Short: "List a user's repositories",
	Args:  cobra.ExactArgs(2),
	RunE:  runRepos,
}

var commitsCmd = &cobra.Command{
	Use:   "commits [provider] [owner repo | projectId]",
	Short: "Show the last 5 commits of a repository",
	Long: `Show the last 5 commits of a repository.

GitHub repositories are addressed by owner and name, GitLab projects
by a single project ID:

  gitscout commits github torvalds linux
  gitscout commits gitlab 278964`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runCommits,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiEndpoint, "api", "", "API endpoint (default $API_ENDPOINT or http://localhost:5000)")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output raw JSON")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(commitsCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() *client.Client {
	endpoint := apiEndpoint
	if endpoint == "" {
		endpoint = os.Getenv("API_ENDPOINT")
	}
	if endpoint == "" {
		endpoint = "http://localhost:5000"
	}
	return client.NewClient(endpoint)
}

func parseProvider(arg string) (models.ProviderType, error) {
	switch arg {
	case "github":
		return models.ProviderGitHub, nil
	case "gitlab":
		return models.ProviderGitLab, nil
	default:
		return "", fmt.Errorf("unknown provider %q (expected github or gitlab)", arg)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	results, err := newClient().Search(args[0])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(results)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Provider", "Username", "URL"})
	for _, r := range results {
		table.Append([]string{string(r.Provider), r.Username, r.URL})
	}
	table.Render()
	return nil
}

func runUser(cmd *cobra.Command, args []string) error {
	provider, err := parseProvider(args[0])
	if err != nil {
		return err
	}

	profile, err := newClient().GetUser(provider, args[1])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(profile)
	}

	url := profile.HTMLURL
	if profile.Provider == models.ProviderGitLab {
		url = profile.WebURL
	}

	fmt.Printf("Provider: %s\n", profile.Provider)
	fmt.Printf("Username: %s\n", profile.Username)
	fmt.Printf("URL:      %s\n", url)
	fmt.Printf("Name:     %s\n", stringOrDash(profile.Name))
	fmt.Printf("Bio:      %s\n", stringOrDash(profile.Bio))
	return nil
}

// repoRow carries both providers' repository fields; which ones are
// populated depends on the provider the payload came from.
type repoRow struct {
	Name           string  `json:"name"`
	HTMLURL        string  `json:"html_url"`
	WebURL         string  `json:"web_url"`
	UpdatedAt      string  `json:"updated_at"`
	LastActivityAt string  `json:"last_activity_at"`
	Description    *string `json:"description"`
}

func runRepos(cmd *cobra.Command, args []string) error {
	provider, err := parseProvider(args[0])
	if err != nil {
		return err
	}

	repos, err := newClient().GetUserRepos(provider, args[1])
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(repos)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "URL", "Updated", "Description"})
	for _, raw := range repos {
		var row repoRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("unexpected repository payload: %w", err)
		}
		url, updated := row.HTMLURL, row.UpdatedAt
		if provider == models.ProviderGitLab {
			url, updated = row.WebURL, row.LastActivityAt
		}
		table.Append([]string{row.Name, url, updated, stringOrDash(row.Description)})
	}
	table.Render()
	return nil
}

// commitRow carries both providers' commit fields.
type commitRow struct {
	// GitHub
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	// GitLab
	ID            string `json:"id"`
	Message       string `json:"message"`
	CommittedDate string `json:"committed_date"`
}

func runCommits(cmd *cobra.Command, args []string) error {
	provider, err := parseProvider(args[0])
	if err != nil {
		return err
	}

	c := newClient()
	var commits []json.RawMessage
	switch provider {
	case models.ProviderGitHub:
		if len(args) != 3 {
			return fmt.Errorf("github commits require owner and repo arguments")
		}
		commits, err = c.GetGitHubRepoCommits(args[1], args[2])
	case models.ProviderGitLab:
		if len(args) != 2 {
			return fmt.Errorf("gitlab commits require a single projectId argument")
		}
		commits, err = c.GetGitLabRepoCommits(args[1])
	}
	if err != nil {
		return err
	}

	if outputJSON {
		return printJSON(commits)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Commit", "Date", "Message"})
	for _, raw := range commits {
		var row commitRow
		if err := json.Unmarshal(raw, &row); err != nil {
			return fmt.Errorf("unexpected commit payload: %w", err)
		}
		id, date, message := row.SHA, row.Commit.Author.Date, row.Commit.Message
		if provider == models.ProviderGitLab {
			id, date, message = row.ID, row.CommittedDate, row.Message
		}
		if len(id) > 8 {
			id = id[:8]
		}
		table.Append([]string{id, date, firstLine(message)})
	}
	table.Render()
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
