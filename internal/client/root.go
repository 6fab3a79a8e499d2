// Package client implements the imgbed command line client. All network
// calls go through the resilient dispatcher so a flaky accelerated endpoint
// degrades to the origin instead of failing the command.
package client

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imagebed/service/internal/dispatch"
)

var (
	cfgFile string
	cfg     *Config
)

var rootCmd = &cobra.Command{
	Use:   "imgbed",
	Short: "Image hosting upload client",
	Long:  "Uploads images to an image-bed gateway and manages previously uploaded files.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/imgbed/config.json)")
}

func initConfig() {
	var err error
	path := cfgFile
	if path == "" {
		path, err = ConfigPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "error resolving config path:", err)
			os.Exit(1)
		}
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}
}

func saveConfig() error {
	path := cfgFile
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return err
		}
	}
	return SaveConfig(path, cfg)
}

// dispatcher builds the resilient client from the configured endpoints.
func dispatcher() *dispatch.Client {
	d := dispatch.New(cfg.PrimaryURL, cfg.FallbackURL)
	if cfg.MaxRetries > 0 {
		d.MaxRetries = cfg.MaxRetries
	}
	return d
}
