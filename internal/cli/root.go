// Package cli implements the resumectl command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"resume-parser/internal/config"
	"resume-parser/internal/domain"
)

// version is set at build time via -ldflags.
var version = "dev"

// loadConfig reads settings from the environment. Tests replace it.
var loadConfig = config.NewConfig

var rootCmd = &cobra.Command{
	Use:   "resumectl",
	Short: "Extract contact details and skills from resumes",
	Long: `resumectl runs the resume extraction pipeline locally.
It reads a PDF, extracts its text and reports the skills,
email addresses and phone numbers found in it.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// stringSetting returns the flag value when the user set it and fallback otherwise.
func stringSetting(cmd *cobra.Command, name, value, fallback string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return fallback
}

func settings() domain.Config {
	return loadConfig()
}
