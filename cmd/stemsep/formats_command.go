package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stemsep/internal/audio"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported audio formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(audio.SupportedFormats()))
			for _, ext := range audio.SupportedFormats() {
				rows = append(rows, []string{ext})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Extension"}, rows))
			return nil
		},
	}
}
