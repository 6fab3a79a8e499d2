package client

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyClear bool

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the local upload history")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent uploads recorded locally",
	Long:  "Shows the local upload history. The server remains the system of record; this cache holds at most the 50 most recent uploads.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyClear {
			cfg.History = nil
			if err := saveConfig(); err != nil {
				return err
			}
			fmt.Println("history cleared")
			return nil
		}

		if len(cfg.History) == 0 {
			fmt.Println("no uploads recorded")
			return nil
		}
		for _, e := range cfg.History {
			fmt.Printf("%-20s %-30s %10d  %s\n", e.FileID, e.FileName, e.FileSize, e.URL)
		}
		return nil
	},
}
