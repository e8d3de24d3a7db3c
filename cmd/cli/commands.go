package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	playerName     string
	playerGender   string
	playerSort     string
	playerPage     int
	playerPageSize int

	teamName    string
	teamSection string
	teamLevel   string

	rankingCategory string
	rankingSection  string
	rankingAgeGroup string
	rankingGender   string
)

func init() {
	playersCmd.Flags().StringVar(&playerName, "name", "", "Filter by name substring")
	playersCmd.Flags().StringVar(&playerGender, "gender", "", "Filter by gender (M/F)")
	playersCmd.Flags().StringVar(&playerSort, "sort", "", "Sort key: name, rating or matches")
	playersCmd.Flags().IntVar(&playerPage, "page", 1, "1-based page number")
	playersCmd.Flags().IntVar(&playerPageSize, "page-size", 20, "Page size")

	teamsCmd.Flags().StringVar(&teamName, "name", "", "Filter by name substring")
	teamsCmd.Flags().StringVar(&teamSection, "section", "", "Filter by section")
	teamsCmd.Flags().StringVar(&teamLevel, "level", "", "Filter by league level")

	rankingsCmd.Flags().StringVar(&rankingCategory, "category", "Adult", "Ranking category: Adult or Junior")
	rankingsCmd.Flags().StringVar(&rankingSection, "section", "", "Filter by section")
	rankingsCmd.Flags().StringVar(&rankingAgeGroup, "age-group", "", "Filter by age group")
	rankingsCmd.Flags().StringVar(&rankingGender, "gender", "", "Filter by gender (M/F)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(ratingCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "Search players with filters, sort and pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		setIf(query, "name", playerName)
		setIf(query, "gender", playerGender)
		setIf(query, "sortBy", playerSort)
		query.Set("page", fmt.Sprint(playerPage))
		query.Set("pageSize", fmt.Sprint(playerPageSize))
		return performGetRequest("/api/players?" + query.Encode())
	},
}

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Get one player's detail, including recent matches",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players/" + url.PathEscape(args[0]))
	},
}

var ratingCmd = &cobra.Command{
	Use:   "rating <query>",
	Short: "Look up the first player whose name matches the query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		query.Set("q", args[0])
		return performGetRequest("/api/players/rating?" + query.Encode())
	},
}

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Search teams with filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		setIf(query, "name", teamName)
		setIf(query, "section", teamSection)
		setIf(query, "leagueLevel", teamLevel)
		return performGetRequest("/api/teams?" + query.Encode())
	},
}

var teamCmd = &cobra.Command{
	Use:   "team <id>",
	Short: "Get one team with its full roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/teams/" + url.PathEscape(args[0]))
	},
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "List ranking rows for a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		setIf(query, "category", rankingCategory)
		setIf(query, "section", rankingSection)
		setIf(query, "ageGroup", rankingAgeGroup)
		setIf(query, "gender", rankingGender)
		return performGetRequest("/api/rankings?" + query.Encode())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func setIf(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
