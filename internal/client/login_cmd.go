package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username (omit in single-password deployments)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "password")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store an upload token",
	RunE: func(cmd *cobra.Command, args []string) error {
		body, _ := json.Marshal(map[string]string{
			"username": loginUsername,
			"password": loginPassword,
		})

		header := http.Header{"Content-Type": []string{"application/json"}}
		resp, err := dispatcher().Do(context.Background(), http.MethodPost, "/api/login", header, body)
		if err != nil {
			return fmt.Errorf("login request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("login failed: %s", readError(resp))
		}

		var result struct {
			Token    string `json:"token"`
			Username string `json:"username"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("decode login response: %w", err)
		}

		cfg.Token = result.Token
		cfg.Username = result.Username
		if err := saveConfig(); err != nil {
			return err
		}

		fmt.Printf("logged in as %s\n", result.Username)
		return nil
	},
}
