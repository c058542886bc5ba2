package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Terminal output for humans. Everything here writes to stderr; stdout is
// reserved for results so they can be piped.

var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleMuted  = lipgloss.NewStyle().Foreground(colorMuted)
	styleValue  = lipgloss.NewStyle().Foreground(colorText)
	styleLabel  = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleAccent = lipgloss.NewStyle().Foreground(colorAccent)
)

// marker prefixes a status line with a colored glyph.
type marker struct {
	glyph string
	style lipgloss.Style
	body  lipgloss.Style
}

var (
	markOK   = marker{"✓", lipgloss.NewStyle().Foreground(colorOK), lipgloss.NewStyle()}
	markWarn = marker{"!", lipgloss.NewStyle().Foreground(colorWarn), lipgloss.NewStyle().Foreground(colorWarn)}
	markInfo = marker{"›", lipgloss.NewStyle().Foreground(colorLabel), lipgloss.NewStyle()}
)

func (m marker) printf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, m.style.Render(m.glyph)+" "+m.body.Render(fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) { markOK.printf(format, args...) }
func printWarning(format string, args ...any) { markWarn.printf(format, args...) }
func printInfo(format string, args ...any)    { markInfo.printf(format, args...) }

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(os.Stderr, "  "+styleMuted.Render(fmt.Sprintf(format, args...)))
}

// printFile announces a file that was written.
func printFile(path string) {
	fmt.Fprintln(os.Stderr, "  "+styleMuted.Render("→")+" "+styleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(os.Stderr, styleLabel.Render(key)+" "+styleValue.Render(value))
}

// printStats prints "  720 results · 1.2ms · fresh" under a command's
// success line.
func printStats(results int, cached bool, d time.Duration) {
	origin := styleMuted.Render("fresh")
	if cached {
		origin = lipgloss.NewStyle().Foreground(colorOK).Render("cached")
	}
	sep := styleMuted.Render(" · ")
	fields := []string{
		styleMuted.Render(fmt.Sprintf("%d results", results)),
		styleMuted.Render(d.Round(time.Microsecond).String()),
		origin,
	}
	fmt.Fprintln(os.Stderr, "  "+strings.Join(fields, sep))
}
