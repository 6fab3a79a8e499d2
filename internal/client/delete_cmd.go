package client

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/imagebed/service/internal/auth"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete FILE_ID...",
	Short: "Delete uploaded files by their identifier",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Token == "" {
			return fmt.Errorf("not logged in, run \"imgbed login\" first")
		}

		header := http.Header{auth.TokenHeader: []string{cfg.Token}}
		failed := 0
		for _, fileID := range args {
			resp, err := dispatcher().Do(context.Background(), http.MethodDelete, "/api/delete/"+fileID, header, nil)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: request failed: %v\n", fileID, err)
				failed++
				continue
			}
			if resp.StatusCode != http.StatusOK {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fileID, readError(resp))
				failed++
			} else {
				fmt.Printf("%s deleted\n", fileID)
			}
			_ = resp.Body.Close()
		}

		if failed > 0 {
			return fmt.Errorf("failed to delete %d of %d files", failed, len(args))
		}
		return nil
	},
}
