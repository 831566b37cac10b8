package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"

	"stemsep/internal/separation"
)

// progressRenderer receives pipeline updates from the separation
// callback. Update is invoked synchronously, once per stage.
type progressRenderer interface {
	Update(update separation.ProgressUpdate)
	Done()
}

// newProgressRenderer picks a live tracker when writing to a terminal
// and falls back to plain stage lines otherwise (pipes, tests).
func newProgressRenderer(out io.Writer) progressRenderer {
	if shouldColorize(out) {
		return newLiveRenderer(out)
	}
	return &plainRenderer{out: out}
}

type plainRenderer struct {
	out io.Writer
}

func (r *plainRenderer) Update(update separation.ProgressUpdate) {
	fmt.Fprintf(r.out, "[%3.0f%%] %s\n", update.Fraction*100, update.Stage)
}

func (r *plainRenderer) Done() {}

type liveRenderer struct {
	pw      progress.Writer
	tracker *progress.Tracker
}

func newLiveRenderer(out io.Writer) *liveRenderer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(out)
	pw.SetTrackerLength(30)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Value = false

	tracker := &progress.Tracker{Message: "Initializing", Total: 100}
	pw.AppendTracker(tracker)
	go pw.Render()

	return &liveRenderer{pw: pw, tracker: tracker}
}

func (r *liveRenderer) Update(update separation.ProgressUpdate) {
	r.tracker.UpdateMessage(update.Stage)
	r.tracker.SetValue(int64(update.Fraction * 100))
}

func (r *liveRenderer) Done() {
	r.tracker.MarkAsDone()
	r.pw.Stop()
	for r.pw.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}
