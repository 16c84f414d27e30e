// Package console prints the human-facing progress and summary lines.
package console

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"

	"ctxpack/pkg/pack"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Reporter writes progress lines to w. Colours are applied only when w is a
// terminal that supports them.
type Reporter struct {
	w    io.Writer
	ok   lipgloss.Style
	warn lipgloss.Style
	info lipgloss.Style
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		w:    w,
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		info: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (r *Reporter) line(style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(r.w, style.Render(fmt.Sprintf(format, args...)))
}

// Started implements pack.Observer.
func (r *Reporter) Started(root string) {
	r.line(r.info, "🚀 Packing context for %s...", filepath.Base(root))
}

// RulesLoaded implements pack.Observer.
func (r *Reporter) RulesLoaded(name string, found bool) {
	if found {
		r.line(r.ok, "✅ Reading project rules: %s", name)
		return
	}
	r.line(r.warn, "⚠️  %s not found, packing code only", name)
}

// ScanStarted implements pack.Observer.
func (r *Reporter) ScanStarted(root string) {
	r.line(r.info, "📂 Scanning: %s", root)
}

// Summary prints the outcome of a run.
func (r *Reporter) Summary(s pack.Summary) {
	switch {
	case s.Clipboard.OK():
		r.line(r.ok, "📋 Copied to clipboard!")
	case s.Clipboard.Attempted:
		r.line(r.warn, "⚠️ Could not copy to clipboard (%v), but the file was saved.", s.Clipboard.Err)
	default:
		r.line(r.warn, "⚠️ Clipboard copy skipped, but the file was saved.")
	}

	if s.Failed > 0 {
		r.line(r.warn, "📦 Packing complete! %d files packed, %d unreadable.", s.Packed, s.Failed)
	} else {
		r.line(r.ok, "📦 Packing complete! %d files packed.", s.Packed)
	}
	r.line(r.ok, "💾 Saved as: %s (%s)", s.OutputPath, humanize.Bytes(uint64(s.Bytes)))
}

// WaitForEnter prompts on w and blocks until a line or EOF arrives on in.
func WaitForEnter(w io.Writer, in io.Reader) error {
	fmt.Fprint(w, "Press Enter to exit...")
	_, err := bufio.NewReader(in).ReadString('\n')
	if err == io.EOF {
		return nil
	}
	return err
}

var _ pack.Observer = (*Reporter)(nil)
