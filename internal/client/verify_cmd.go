package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/imagebed/service/internal/auth"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(pingCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check whether the stored upload token is still valid",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Token == "" {
			return fmt.Errorf("no token stored, run \"imgbed login\" first")
		}

		header := http.Header{auth.TokenHeader: []string{cfg.Token}}
		resp, err := dispatcher().Do(context.Background(), http.MethodPost, "/api/verify", header, nil)
		if err != nil {
			return fmt.Errorf("verify request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		var result struct {
			Valid bool `json:"valid"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("decode verify response: %w", err)
		}

		if !result.Valid {
			return fmt.Errorf("token is invalid or expired, log in again")
		}
		fmt.Println("token is valid")
		return nil
	},
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check server health",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := dispatcher().Do(context.Background(), http.MethodGet, "/api/health", nil, nil)
		if err != nil {
			return fmt.Errorf("health request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		var result struct {
			Status    string `json:"status"`
			Timestamp string `json:"timestamp"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("decode health response: %w", err)
		}
		fmt.Printf("server status: %s (%s)\n", result.Status, result.Timestamp)
		return nil
	},
}
