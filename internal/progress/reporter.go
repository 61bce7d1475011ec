package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter gives feedback while a single completion call is in flight.
type Reporter interface {
	Start(message string)
	Finish()
}

// NewReporter returns a TerminalReporter drawing on w, or a CIReporter if
// the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{out: w}
	}
	return &TerminalReporter{out: w}
}

// TerminalReporter animates an indeterminate spinner.
type TerminalReporter struct {
	out  io.Writer
	bar  *progressbar.ProgressBar
	stop chan struct{}
	wg   sync.WaitGroup
}

func (r *TerminalReporter) Start(message string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	r.stop = make(chan struct{})
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				_ = r.bar.Add(1)
			}
		}
	}()
}

func (r *TerminalReporter) Finish() {
	if r.bar == nil {
		return
	}
	close(r.stop)
	r.wg.Wait()
	_ = r.bar.Finish()
	r.bar = nil
}

// CIReporter prints plain lines suitable for CI logs.
type CIReporter struct {
	out   io.Writer
	start time.Time
}

func (r *CIReporter) Start(message string) {
	r.start = time.Now()
	fmt.Fprintln(r.out, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out, "done in %s\n", time.Since(r.start).Round(time.Millisecond))
}
