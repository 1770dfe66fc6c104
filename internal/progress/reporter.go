// Package progress reports on a static build as it writes the site's files
// (index.html, style.css, app.js and the search index).
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter is told how many files a build will write and about each one as
// it lands in the output directory.
type Reporter interface {
	Start(total int)
	FileWritten(n int, name string)
	Finish()
}

// NewReporter picks a line reporter under CI and a progress bar otherwise.
// Both write to stderr so stdout stays free for the build summary.
func NewReporter(outputDir string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineReporter{Out: os.Stderr, Dir: outputDir}
	}
	return &BarReporter{Out: os.Stderr, Dir: outputDir}
}

// BarReporter draws a progress bar captioned with the file being written.
type BarReporter struct {
	Out io.Writer
	Dir string
	bar *progressbar.ProgressBar
}

func (r *BarReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.Out),
		progressbar.OptionSetDescription("Building "+r.Dir),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *BarReporter) FileWritten(n int, name string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(name)
	_ = r.bar.Set(n)
}

func (r *BarReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// LineReporter prints one line per written file, for CI logs.
type LineReporter struct {
	Out     io.Writer
	Dir     string
	total   int
	written int
}

func (r *LineReporter) Start(total int) {
	r.total, r.written = total, 0
	fmt.Fprintf(r.Out, "building %s: %d files\n", r.Dir, total)
}

func (r *LineReporter) FileWritten(n int, name string) {
	r.written = n
	fmt.Fprintf(r.Out, "  [%d/%d] %s\n", n, r.total, name)
}

// Finish flags a build that stopped before writing every file.
func (r *LineReporter) Finish() {
	if r.written < r.total {
		fmt.Fprintf(r.Out, "build of %s stopped after %d of %d files\n", r.Dir, r.written, r.total)
		return
	}
	fmt.Fprintf(r.Out, "wrote %d files to %s\n", r.written, r.Dir)
}

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)               {}
func (Nop) FileWritten(int, string) {}
func (Nop) Finish()                 {}
