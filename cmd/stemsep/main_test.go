package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"stemsep/internal/services"
)

func TestReportFailureValidationIncludesFormatHint(t *testing.T) {
	var buf bytes.Buffer
	err := services.Wrap(services.ErrValidation, "audio", "validate", "file not found: ghost.mp3", nil)

	reportFailure(&buf, err)

	out := buf.String()
	if !strings.Contains(out, "file not found: ghost.mp3") {
		t.Fatalf("expected failure message in output %q", out)
	}
	if !strings.Contains(out, "Supported formats: .flac, .m4a, .mp3, .ogg, .wav") {
		t.Fatalf("expected supported-format hint in output %q", out)
	}
}

func TestReportFailureInterruptHasDistinctMessage(t *testing.T) {
	var buf bytes.Buffer

	reportFailure(&buf, context.Canceled)

	out := buf.String()
	if !strings.Contains(out, "cancelled by user") {
		t.Fatalf("expected cancellation message in output %q", out)
	}
	if strings.Contains(out, "Supported formats") {
		t.Fatalf("expected no format hint on interrupt, got %q", out)
	}
}

func TestReportFailureGenericError(t *testing.T) {
	var buf bytes.Buffer
	err := services.Wrap(services.ErrProcessing, "separation", "separate", "processing failed", nil)

	reportFailure(&buf, err)

	if !strings.Contains(buf.String(), "processing failed") {
		t.Fatalf("expected processing message in output %q", buf.String())
	}
}
