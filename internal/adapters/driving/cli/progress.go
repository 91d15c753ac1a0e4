package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

// redrawInterval caps how often the terminal bar is repainted.
const redrawInterval = 50 * time.Millisecond

// progressRenderer prints split progress.
// On a terminal it redraws a single bar in place; otherwise it prints one
// line per finished part so logs and pipes stay readable.
type progressRenderer struct {
	out         io.Writer
	quiet       bool
	interactive bool
	bar         progress.Model
	throttle    *rate.Sometimes
	last        domain.Progress
	drawn       domain.Progress
}

func newProgressRenderer(out io.Writer, quiet bool) *progressRenderer {
	return &progressRenderer{
		out:         out,
		quiet:       quiet,
		interactive: isTerminal(out),
		bar:         progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		throttle:    &rate.Sometimes{Interval: redrawInterval},
	}
}

// Update is passed to the split service as its progress callback.
func (r *progressRenderer) Update(p domain.Progress) {
	if r.quiet {
		return
	}
	if !r.interactive {
		fmt.Fprintf(r.out, "[%d/%d] %s (%d lines)\n",
			p.Completed, p.Total, filepath.Base(p.Output.Path), p.Output.Lines())
		return
	}

	r.last = p
	r.throttle.Do(func() { r.draw(p) })
}

// Done repaints the final state and ends the bar's line.
func (r *progressRenderer) Done() {
	if r.quiet || !r.interactive || r.last.Total == 0 {
		return
	}
	if r.drawn != r.last {
		r.draw(r.last)
	}
	fmt.Fprintln(r.out)
}

func (r *progressRenderer) draw(p domain.Progress) {
	fmt.Fprintf(r.out, "\r%s %3d%%  %d/%d parts", r.bar.ViewAs(p.Fraction()), p.Percent(), p.Completed, p.Total)
	r.drawn = p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
