package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"GazeteBot/internal/app"
	"GazeteBot/internal/config"
	"GazeteBot/internal/logging"
	"GazeteBot/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

var (
	flagTo      string
	flagConfig  string
	flagDryRun  bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "gazetebot",
	Short:         "Resmî Gazete takip botu",
	Long:          "gazetebot fetches the day's Resmî Gazete, filters out the noise, and mails the rest as a digest.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBot,
}

func init() {
	rootCmd.Flags().StringVarP(&flagTo, "to", "t", "", "recipient email address (defaults to TO_EMAIL)")
	rootCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "d", false, "compute and display the digest without sending mail")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print per-reason counts and category summaries")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to config file")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gazetebot %s (commit: %s)\n", version, commit)
	},
}

func runBot(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg := config.Load(flagConfig)
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)
	report, err := application.Run(cmd.Context(), usecase.RunRequest{
		Recipient: flagTo,
		DryRun:    flagDryRun,
	})
	if err != nil {
		logger.Error("run failed", "error", err)
		return err
	}

	printSummary(report, flagDryRun, flagVerbose)
	return nil
}

// Execute runs the root command; any error maps to exit code 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
