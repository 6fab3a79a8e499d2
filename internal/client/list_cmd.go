package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	listLimit  int
	listCursor string
)

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum number of files to return (max 1000)")
	listCmd.Flags().StringVar(&listCursor, "cursor", "", "resume listing after this key")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List files stored on the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(listLimit))
		if listCursor != "" {
			q.Set("cursor", listCursor)
		}

		resp, err := dispatcher().Do(context.Background(), http.MethodGet, "/api/list?"+q.Encode(), nil, nil)
		if err != nil {
			return fmt.Errorf("list request failed: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("list failed: %s", readError(resp))
		}

		var result struct {
			Files []struct {
				FileID   string `json:"fileId"`
				Size     int64  `json:"size"`
				Uploaded string `json:"uploaded"`
				URL      string `json:"url"`
			} `json:"files"`
			Truncated bool   `json:"truncated"`
			Cursor    string `json:"cursor"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("decode list response: %w", err)
		}

		if len(result.Files) == 0 {
			fmt.Println("no files stored")
			return nil
		}
		for _, f := range result.Files {
			fmt.Printf("%-20s %10d  %s  %s\n", f.FileID, f.Size, f.Uploaded, f.URL)
		}
		if result.Truncated {
			fmt.Printf("more available, continue with --cursor %s\n", result.Cursor)
		}
		return nil
	},
}
