package progress

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/crowdtank-deploy/internal/usecase"
)

// SpinnerProgressReporter implements progress reporting with a spinner on stderr
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	stages  []stageInfo
	mu      sync.Mutex
}

type stageInfo struct {
	Stage     usecase.ExecutionStage
	StartTime time.Time
	EndTime   time.Time
	Message   string
}

// NewSpinnerProgressReporter creates a spinner bound to out. The spinner stays
// hidden when out is not a terminal.
func NewSpinnerProgressReporter(out *os.File) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriterFile(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
	}
}

// OnProgress handles progress events. A repeated stage updates the running
// entry instead of starting a new one.
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	n := len(r.stages)
	running := n > 0 && r.stages[n-1].EndTime.IsZero()

	switch {
	case event.Stage == usecase.StageCompleted:
		if running {
			r.stages[n-1].EndTime = now
		}
		r.spinner.Stop()
		return
	case running && r.stages[n-1].Stage == event.Stage:
		r.stages[n-1].Message = event.Message
	default:
		if running {
			r.stages[n-1].EndTime = now
		}
		r.stages = append(r.stages, stageInfo{
			Stage:     event.Stage,
			StartTime: now,
			Message:   event.Message,
		})
	}

	r.spinner.Suffix = " " + r.display()
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// display renders finished stages followed by the running one
func (r *SpinnerProgressReporter) display() string {
	parts := make([]string, 0, len(r.stages))
	for _, stage := range r.stages {
		if stage.EndTime.IsZero() {
			parts = append(parts, fmt.Sprintf("● %s", color.New(color.FgYellow).Sprint(stage.Message)))
			continue
		}
		parts = append(parts, fmt.Sprintf("✓ %s (%s)",
			color.New(color.FgGreen).Sprint(stageName(stage.Stage)),
			stage.EndTime.Sub(stage.StartTime).Round(time.Millisecond)))
	}
	return strings.Join(parts, " → ")
}

func stageName(stage usecase.ExecutionStage) string {
	switch stage {
	case usecase.StageResolving:
		return "Resolved"
	case usecase.StageSubmitting:
		return "Submitted"
	case usecase.StageConfirming:
		return "Confirmed"
	default:
		return string(stage)
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
