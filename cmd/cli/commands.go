package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

var (
	competition string
	matchday    int
	round       string
	dryRun      bool
)

func init() {
	simulateCmd.Flags().IntVar(&matchday, "matchday", 0, "The matchday to simulate")
	simulateCmd.MarkFlagRequired("matchday")
	fixturesCmd.Flags().IntVar(&matchday, "matchday", 0, "Only list fixtures of this matchday")
	fixturesCmd.Flags().StringVar(&round, "round", "", "Only list fixtures of this round")
	cupSimulateCmd.Flags().StringVar(&round, "round", "", "The cup round to simulate (R32, R16, QF, SF, F)")
	cupSimulateCmd.MarkFlagRequired("round")
	cupAdvanceCmd.Flags().StringVar(&round, "round", "", "The finished round to advance")
	cupAdvanceCmd.MarkFlagRequired("round")

	for _, cmd := range []*cobra.Command{
		healthCmd, setupCmd, simulateCmd, standingsCmd, fixturesCmd,
		cupSetupCmd, cupSimulateCmd, cupAdvanceCmd, rolloverCmd, metricsCmd, clearCmd,
	} {
		cmd.Flags().StringVar(&competition, "competition", "", "Competition code (defaults to the server's configured one)")
		cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Skip notifications and persistence side effects")
		rootCmd.AddCommand(cmd)
	}
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health", nil)
	},
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate the league schedule for the season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/setup-season", commonParams())
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one league matchday",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := commonParams()
		params.Set("matchday", fmt.Sprint(matchday))
		return performGetRequest("/simulate-matchday", params)
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the current league table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings", commonParams())
	},
}

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List fixtures, optionally narrowed to a matchday or round",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := commonParams()
		if matchday > 0 {
			params.Set("matchday", fmt.Sprint(matchday))
		}
		if round != "" {
			params.Set("round", round)
		}
		return performGetRequest("/fixtures", params)
	},
}

var cupSetupCmd = &cobra.Command{
	Use:   "cup-setup",
	Short: "Draw the opening cup round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/cup/setup", commonParams())
	},
}

var cupSimulateCmd = &cobra.Command{
	Use:   "cup-simulate",
	Short: "Simulate one cup round",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := commonParams()
		params.Set("round", round)
		return performGetRequest("/cup/simulate-round", params)
	},
}

var cupAdvanceCmd = &cobra.Command{
	Use:   "cup-advance",
	Short: "Draw the next cup round from a finished one",
	RunE: func(cmd *cobra.Command, args []string) error {
		params := commonParams()
		params.Set("round", round)
		return performGetRequest("/cup/advance", params)
	},
}

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Age the rosters into the next season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rollover-season", commonParams())
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics", nil)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the entire store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/clear", nil)
	},
}

func commonParams() url.Values {
	params := url.Values{}
	if competition != "" {
		params.Set("competition", competition)
	}
	if dryRun {
		params.Set("dry_run", "true")
	}
	return params
}

func performGetRequest(endpoint string, params url.Values) error {
	url := host + endpoint
	if len(params) > 0 {
		url += "?" + params.Encode()
	}
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
