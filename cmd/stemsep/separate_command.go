package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stemsep/internal/audio"
	"stemsep/internal/logging"
	"stemsep/internal/separation"
	"stemsep/internal/services"
)

// Test seam mirroring the injectable construction used elsewhere.
var newSeparator = func() separation.Separator {
	return separation.NewProcessor()
}

func newSeparateCommand() *cobra.Command {
	var outputDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "separate <audio-file>",
		Short: "Separate an audio file into instrument stems",
		Long: "Separate an audio file into vocal, drum, bass, and\n" +
			"other-instrument stems. Processing is simulated; the generated\n" +
			"file names are predicted but never written to disk.",
		// Only the argument count is checked here; existence and format
		// checks belong to the audio validator.
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audioFile := args[0]
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			level := "info"
			if verbose {
				level = "debug"
			}
			logger, err := logging.New(logging.Options{Level: level, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			logger = logger.With("run_id", uuid.NewString())

			if verbose {
				fmt.Fprintln(out, renderSectionHeader("Audio Stem Separator", colorize))
				fmt.Fprintln(out, renderStatusLine(statusInfo, "Input file: "+audioFile, colorize))
				if outputDir != "" {
					fmt.Fprintln(out, renderStatusLine(statusInfo, "Output directory: "+outputDir, colorize))
				}
			}

			if err := audio.ValidateFile(audioFile); err != nil {
				logger.Debug("validation failed", "file", audioFile, "error", err)
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintln(out, renderStatusLine(statusInfo, "Processing: "+filepath.Base(audioFile), colorize))
			fmt.Fprintln(out)

			renderer := newProgressRenderer(out)
			logger.Debug("separation started", "file", audioFile)

			result, err := newSeparator().Separate(ctx, audioFile, func(update separation.ProgressUpdate) {
				logger.Debug("stage reached", "stage", update.Stage, "fraction", update.Fraction)
				renderer.Update(update)
			})
			renderer.Done()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				// Full diagnostic detail stays at debug level; the
				// surfaced message is generic.
				logger.Debug("separation failed", "file", audioFile, "error", err)
				return services.Wrap(services.ErrProcessing, "separation", "separate",
					"an error occurred during processing", nil)
			}

			stems := result.Stems
			if outputDir != "" {
				stems = redirectStems(stems, outputDir)
			}

			fmt.Fprintln(out)
			summary := fmt.Sprintf("Separated audio into %d stems in %.2f seconds",
				len(stems), result.Duration.Seconds())
			fmt.Fprintln(out, renderStatusLine(statusOK, summary, colorize))

			rows := make([][]string, 0, len(stems))
			for i, stem := range stems {
				rows = append(rows, []string{strconv.Itoa(i + 1), filepath.Base(stem)})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Generated file"}, rows))

			if verbose {
				fmt.Fprintln(out, "Full paths:")
				for _, stem := range stems {
					fmt.Fprintf(out, "  %s\n", stem)
				}
			}

			logger.Debug("separation complete", "stems", len(stems), "duration", result.Duration)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the predicted stem files (default: input file's directory)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed processing information")

	return cmd
}

// redirectStems rebases predicted stem paths onto dir. The directory is
// not created; no files ever materialize.
func redirectStems(stems []string, dir string) []string {
	redirected := make([]string, 0, len(stems))
	for _, stem := range stems {
		redirected = append(redirected, filepath.Join(dir, filepath.Base(stem)))
	}
	return redirected
}
