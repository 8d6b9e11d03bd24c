package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	recordMode       string
	recordPlayer1    string
	recordPlayer2    string
	recordWinner     string
	recordScore1     int
	recordScore2     int
	recordDifficulty string
	recordDuration   int
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(bestStreaksCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(metricsCmd)

	recordCmd.Flags().StringVar(&recordMode, "mode", "multiplayer", "Game mode: multiplayer or single_player")
	recordCmd.Flags().StringVar(&recordPlayer1, "player1", "", "Name of player one")
	recordCmd.Flags().StringVar(&recordPlayer2, "player2", "", "Name of player two (multiplayer only)")
	recordCmd.Flags().StringVar(&recordWinner, "winner", "", "Name of the winner")
	recordCmd.Flags().IntVar(&recordScore1, "score1", 0, "Score of player one")
	recordCmd.Flags().IntVar(&recordScore2, "score2", 0, "Score of player two")
	recordCmd.Flags().StringVar(&recordDifficulty, "difficulty", "", "Bot difficulty: easy, medium or hard (single player only)")
	recordCmd.Flags().IntVar(&recordDuration, "duration", 0, "Game duration in seconds")
	recordCmd.MarkFlagRequired("player1")
	recordCmd.MarkFlagRequired("winner")
	recordCmd.MarkFlagRequired("duration")
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/health")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the current win streak leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/leaderboard")
	},
}

var bestStreaksCmd = &cobra.Command{
	Use:   "best-streaks",
	Short: "Show the all-time best streak leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/leaderboard/best-streaks")
	},
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List the most recently recorded game sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/games")
	},
}

var playerCmd = &cobra.Command{
	Use:   "player [name]",
	Short: "Show one player's statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/players/" + args[0])
	},
}

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record a finished game session",
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]any{
			"mode":          recordMode,
			"player1_name":  recordPlayer1,
			"winner":        recordWinner,
			"player1_score": recordScore1,
			"player2_score": recordScore2,
			"game_duration": recordDuration,
		}
		if recordPlayer2 != "" {
			payload["player2_name"] = recordPlayer2
		}
		if recordDifficulty != "" {
			payload["bot_difficulty"] = recordDifficulty
		}
		return performPostRequest("/api/games", payload)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint string, payload any) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
