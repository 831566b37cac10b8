package main

import (
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stemsep",
		Short: "Audio stem separation demo CLI",
		Long: "stemsep simulates separating a mixed audio track into vocal,\n" +
			"drum, bass, and other-instrument stems, reporting per-stage\n" +
			"progress. No audio is decoded and no files are written.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newSeparateCommand())
	rootCmd.AddCommand(newFormatsCommand())

	return rootCmd
}
