// Package cli is the gatekit command line: one binary that can run each
// of the three services, or all of them for local development.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	logJSON bool
)

var rootCmd = &cobra.Command{
	Use:   "gatekit",
	Short: "Federated authorization gate and the services behind it",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logJSON {
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
		}
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path (YAML)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(cmdServe(), cmdVersion())

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		fmt.Println("Use -h for help, for example: gatekit serve all")
	}
}
