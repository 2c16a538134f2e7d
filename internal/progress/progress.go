// Package progress wraps github.com/schollz/progressbar/v3 behind a
// small interface so the scan use case can report progress without
// depending on a terminal being present.
package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Task reports progress on one unit of work (e.g. parsing the discovered
// file set).
type Task interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// Manager starts tasks and tears them down at the end of a run.
type Manager interface {
	StartTask(description string, total int) Task
	Close()
}

// New returns an interactive Manager when enabled and stdout is a TTY,
// otherwise a no-op Manager. Callers pass enabled=false for AI/JSON
// output, where a progress bar would corrupt the wire stream.
func New(enabled bool) Manager {
	if enabled && term.IsTerminal(int(os.Stdout.Fd())) {
		return &barManager{writer: os.Stderr}
	}
	return noopManager{}
}

type barManager struct {
	writer io.Writer
	bars   []*progressbar.ProgressBar
}

func (m *barManager) StartTask(description string, total int) Task {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(m.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(18),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
	m.bars = append(m.bars, bar)
	return &barTask{bar: bar}
}

func (m *barManager) Close() {
	for _, bar := range m.bars {
		_ = bar.Finish()
	}
	m.bars = nil
}

type barTask struct {
	bar *progressbar.ProgressBar
}

func (t *barTask) Increment(n int)              { _ = t.bar.Add(n) }
func (t *barTask) Describe(description string)  { t.bar.Describe(description) }
func (t *barTask) Complete()                    { _ = t.bar.Finish() }

type noopManager struct{}

func (noopManager) StartTask(_ string, _ int) Task { return noopTask{} }
func (noopManager) Close()                         {}

type noopTask struct{}

func (noopTask) Increment(_ int)      {}
func (noopTask) Describe(_ string)    {}
func (noopTask) Complete()            {}
