package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hochfrequenz/fristenkalender/app"
	"github.com/hochfrequenz/fristenkalender/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:           "fristenkalender",
	Short:         "BDEW Fristenkalender generator",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadService() (*config.Config, *app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}
