package separation

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"stemsep/internal/services"
)

// DefaultStepDelay is the simulated work duration per pipeline stage.
const DefaultStepDelay = 500 * time.Millisecond

var processingStages = [...]string{
	"Loading audio file",
	"Analyzing frequency spectrum",
	"Separating vocals",
	"Separating drums",
	"Separating bass",
	"Separating other instruments",
	"Writing output files",
}

// Stem labels in output order.
var stemLabels = [...]string{"vocals", "drums", "bass", "other"}

// ProgressUpdate captures one pipeline stage transition.
type ProgressUpdate struct {
	Stage    string
	Fraction float64
}

// Result describes a completed separation run.
type Result struct {
	Stems    []string
	Duration time.Duration
}

// Separator describes stem separation behaviour.
type Separator interface {
	Separate(ctx context.Context, path string, progress func(ProgressUpdate)) (*Result, error)
}

// Option configures the Processor.
type Option func(*Processor)

// WithStepDelay overrides the default per-stage delay.
func WithStepDelay(delay time.Duration) Option {
	return func(p *Processor) {
		if delay >= 0 {
			p.stepDelay = delay
		}
	}
}

// WithSleep substitutes the work simulator. The function must honour
// context cancellation and return ctx.Err() when interrupted.
func WithSleep(sleep func(context.Context, time.Duration) error) Option {
	return func(p *Processor) {
		if sleep != nil {
			p.sleep = sleep
		}
	}
}

// WithClock overrides the wall-clock source used for duration reporting.
func WithClock(now func() time.Time) Option {
	return func(p *Processor) {
		if now != nil {
			p.now = now
		}
	}
}

// Processor simulates stem separation with progress tracking.
type Processor struct {
	stepDelay time.Duration
	sleep     func(context.Context, time.Duration) error
	now       func() time.Time
}

// NewProcessor constructs a Processor using defaults.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		stepDelay: DefaultStepDelay,
		sleep:     sleepContext,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Stages returns the ordered stage names. Callers receive a fresh slice.
func Stages() []string {
	stages := make([]string, len(processingStages))
	copy(stages, processingStages[:])
	return stages
}

// StageCount reports how many stages a run walks through.
func StageCount() int {
	return len(processingStages)
}

// Separate walks the pipeline stages for path, invoking progress once per
// stage with the stage name and cumulative completion fraction. The
// callback runs synchronously; the next stage never begins before it
// returns. Path is assumed to have passed validation already.
//
// Cancelling ctx aborts the run with ctx.Err() and no partial result.
func (p *Processor) Separate(ctx context.Context, path string, progress func(ProgressUpdate)) (*Result, error) {
	if strings.TrimSpace(path) == "" {
		return nil, services.Wrap(services.ErrValidation, "separation", "separate", "input path required", nil)
	}

	start := p.now()
	total := len(processingStages)
	var stems []string

	for i, stage := range processingStages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if progress != nil {
			progress(ProgressUpdate{Stage: stage, Fraction: float64(i+1) / float64(total)})
		}

		if err := p.sleep(ctx, p.stepDelay); err != nil {
			return nil, err
		}

		// Output names materialize with the final stage. The files
		// themselves are never written.
		if i == total-1 {
			stems = stemPaths(path)
		}
	}

	return &Result{Stems: stems, Duration: p.now().Sub(start)}, nil
}

func stemPaths(path string) []string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	paths := make([]string, 0, len(stemLabels))
	for _, label := range stemLabels {
		paths = append(paths, filepath.Join(dir, name+"_"+label+ext))
	}
	return paths
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ Separator = (*Processor)(nil)
