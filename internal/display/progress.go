package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"

	"github.com/lth/hashcrack/internal/cracker"
)

// progressScale lets the bar show tenths of a percent.
const progressScale = 10

// ProgressBar renders cracker progress events as a terminal bar.
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

var _ cracker.Reporter = (*ProgressBar)(nil)

// NewProgressBar writes to stderr when out is nil.
func NewProgressBar(out io.Writer) *ProgressBar {
	if out == nil {
		out = os.Stderr
	}
	bar := progressbar.NewOptions(100*progressScale,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionSetDescription("starting"),
		progressbar.OptionClearOnFinish(),
	)
	return &ProgressBar{bar: bar}
}

// Report implements cracker.Reporter.
func (p *ProgressBar) Report(ev cracker.Progress) {
	value := int(min(max(ev.Percent, 0), 100) * progressScale)
	p.bar.Describe(Describe(ev))
	_ = p.bar.Set(value)
}

// Finish clears the bar.
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

// Describe is the one-line text shown next to the bar.
func Describe(ev cracker.Progress) string {
	current := ev.Current
	if r := []rune(current); len(r) > 20 {
		current = string(r[:17]) + "..."
	}
	return fmt.Sprintf("%s tried | %s | %s",
		humanize.Comma(int64(ev.Attempts)), FormatRate(ev.Rate), current)
}
