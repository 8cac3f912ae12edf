package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/enrollment/enrollment-api/internal/pkg/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "enrollment-api",
	Short: "HTTP API for student course enrollments",
	Long: `enrollment-api serves an in-memory set of students and course enrollments.
Students manage their own enrollments; administrators have read-only oversight.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return err
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.LogLevel = level
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("port", "", "HTTP listen port (env: PORT)")
	rootCmd.PersistentFlags().String("log-level", "", "Minimum log level (env: LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd, versionCmd)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
