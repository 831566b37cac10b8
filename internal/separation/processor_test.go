package separation_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"stemsep/internal/separation"
	"stemsep/internal/services"
)

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func TestSeparateReportsEveryStageInOrder(t *testing.T) {
	proc := separation.NewProcessor(separation.WithSleep(noSleep))

	var updates []separation.ProgressUpdate
	result, err := proc.Separate(context.Background(), "song.mp3", func(update separation.ProgressUpdate) {
		updates = append(updates, update)
	})
	if err != nil {
		t.Fatalf("Separate returned error: %v", err)
	}
	if result == nil {
		t.Fatal("expected result")
	}

	stages := separation.Stages()
	if len(updates) != len(stages) {
		t.Fatalf("expected %d progress updates, got %d", len(stages), len(updates))
	}

	total := float64(len(stages))
	for i, update := range updates {
		if update.Stage != stages[i] {
			t.Fatalf("update %d: expected stage %q, got %q", i, stages[i], update.Stage)
		}
		want := float64(i+1) / total
		if math.Abs(update.Fraction-want) > 1e-9 {
			t.Fatalf("update %d: expected fraction %f, got %f", i, want, update.Fraction)
		}
		if i > 0 && update.Fraction <= updates[i-1].Fraction {
			t.Fatalf("expected strictly increasing fractions, got %f after %f", update.Fraction, updates[i-1].Fraction)
		}
	}
	if updates[len(updates)-1].Fraction != 1.0 {
		t.Fatalf("expected final fraction 1.0, got %f", updates[len(updates)-1].Fraction)
	}
}

func TestSeparateSynthesizesStemPaths(t *testing.T) {
	proc := separation.NewProcessor(separation.WithSleep(noSleep))

	result, err := proc.Separate(context.Background(), "song.mp3", nil)
	if err != nil {
		t.Fatalf("Separate returned error: %v", err)
	}

	want := []string{"song_vocals.mp3", "song_drums.mp3", "song_bass.mp3", "song_other.mp3"}
	if len(result.Stems) != len(want) {
		t.Fatalf("expected %d stems, got %d", len(want), len(result.Stems))
	}
	for i, stem := range want {
		if result.Stems[i] != stem {
			t.Fatalf("stem %d: expected %q, got %q", i, stem, result.Stems[i])
		}
	}
}

func TestSeparateKeepsParentDirectory(t *testing.T) {
	proc := separation.NewProcessor(separation.WithSleep(noSleep))

	result, err := proc.Separate(context.Background(), "/a/b/track.flac", nil)
	if err != nil {
		t.Fatalf("Separate returned error: %v", err)
	}

	want := []string{
		"/a/b/track_vocals.flac",
		"/a/b/track_drums.flac",
		"/a/b/track_bass.flac",
		"/a/b/track_other.flac",
	}
	for i, stem := range want {
		if result.Stems[i] != stem {
			t.Fatalf("stem %d: expected %q, got %q", i, stem, result.Stems[i])
		}
	}
}

func TestSeparateReportsElapsedDuration(t *testing.T) {
	current := time.Unix(1000, 0)
	proc := separation.NewProcessor(
		separation.WithStepDelay(time.Second),
		separation.WithSleep(func(ctx context.Context, d time.Duration) error {
			current = current.Add(d)
			return ctx.Err()
		}),
		separation.WithClock(func() time.Time { return current }),
	)

	result, err := proc.Separate(context.Background(), "song.wav", nil)
	if err != nil {
		t.Fatalf("Separate returned error: %v", err)
	}

	want := time.Duration(separation.StageCount()) * time.Second
	if result.Duration != want {
		t.Fatalf("expected duration %s, got %s", want, result.Duration)
	}
}

func TestSeparateAbortsOnCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	proc := separation.NewProcessor(separation.WithSleep(func(ctx context.Context, _ time.Duration) error {
		calls++
		if calls == 3 {
			cancel()
		}
		return ctx.Err()
	}))

	var updates int
	result, err := proc.Separate(ctx, "song.mp3", func(separation.ProgressUpdate) {
		updates++
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no partial result, got %+v", result)
	}
	if updates != 3 {
		t.Fatalf("expected no callbacks after cancellation point, got %d", updates)
	}
}

func TestSeparateRequiresPath(t *testing.T) {
	proc := separation.NewProcessor(separation.WithSleep(noSleep))

	if _, err := proc.Separate(context.Background(), "", nil); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty path, got %v", err)
	}
}

func TestStagesReturnsCopy(t *testing.T) {
	stages := separation.Stages()
	if len(stages) != 7 {
		t.Fatalf("expected 7 stages, got %d", len(stages))
	}
	if stages[0] != "Loading audio file" || stages[6] != "Writing output files" {
		t.Fatalf("unexpected stage ordering: %v", stages)
	}

	stages[0] = "mutated"
	if separation.Stages()[0] != "Loading audio file" {
		t.Fatal("expected canonical stage list untouched by caller mutation")
	}
}

func TestSeparateRealDelayStaysCancellable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	proc := separation.NewProcessor(separation.WithStepDelay(time.Minute))

	done := make(chan error, 1)
	go func() {
		_, err := proc.Separate(ctx, "song.mp3", nil)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("expected prompt abort of a long delay")
	}
}
