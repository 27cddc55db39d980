package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/save2md/iconkit/pkg/observability"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Console
// =============================================================================

// console prints status lines to w. Styles come from a renderer bound to w,
// so output to a pipe or file stays plain text.
type console struct {
	w       io.Writer
	success lipgloss.Style
	warning lipgloss.Style
	dim     lipgloss.Style
}

func newConsole(w io.Writer) *console {
	r := lipgloss.NewRenderer(w)
	return &console{
		w:       w,
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		dim:     r.NewStyle().Foreground(colorDim),
	}
}

// created prints "Created <path>".
func (c *console) created(path string) {
	fmt.Fprintln(c.w, c.success.Render("Created")+" "+path)
}

// checked prints "OK <path>" or "Stale <path>".
func (c *console) checked(path string, match bool) {
	if match {
		fmt.Fprintln(c.w, c.success.Render("OK")+" "+c.dim.Render(path))
		return
	}
	fmt.Fprintln(c.w, c.warning.Render("Stale")+" "+path)
}

// done prints the final "Done." line.
func (c *console) done() {
	fmt.Fprintln(c.w, "Done.")
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// consoleHooks reports pipeline progress on the console.
type consoleHooks struct {
	observability.NoopIconHooks
	out *console
}

func (h consoleHooks) OnWrite(_ context.Context, path string, _ bool) {
	h.out.created(path)
}

func (h consoleHooks) OnCheck(_ context.Context, path string, match bool) {
	h.out.checked(path, match)
}
