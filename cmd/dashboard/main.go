// @title        Client Dashboard API
// @version      1.0
// @description  Read-only API over client records: filtering, sorting, health scoring, KPIs and the live-ops feed.
// @BasePath     /
package main

import (
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/clientpulse/dashboard/internal/pkg/config"
	"github.com/clientpulse/dashboard/pkg/logger"
)

var (
	cfg *config.Config
	// envLookuper is swapped in tests.
	envLookuper = envconfig.OsLookuper
)

var rootCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Client insights engine and dashboard API",
	Long:  "Filters, sorts and health-scores client accounts, and serves the results over a read-only HTTP API.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadWith(cmd.Context(), envLookuper())
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			c.LogLevel = lvl
		}
		cfg = c

		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: "dashboard",
			Output:  cmd.ErrOrStderr(),
		})
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "override LOG_LEVEL (trace, debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
