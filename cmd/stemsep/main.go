package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"stemsep/internal/audio"
	"stemsep/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		reportFailure(os.Stderr, err)
		os.Exit(services.ExitCode(err))
	}
}

// reportFailure renders a command error at the process boundary.
// Validation failures carry the supported-format hint; interrupts get a
// distinct message instead of the raw context error.
func reportFailure(w io.Writer, err error) {
	colorize := shouldColorize(w)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, renderStatusLine(statusError, "Processing cancelled by user", colorize))
		return
	}
	fmt.Fprintln(w, renderStatusLine(statusError, err.Error(), colorize))
	if errors.Is(err, services.ErrValidation) {
		fmt.Fprintf(w, "Supported formats: %s\n", strings.Join(audio.SupportedFormats(), ", "))
	}
}
