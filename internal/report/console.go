// Package report renders rename progress as line-oriented console output.
package report

import (
	"fmt"
	"io"
	"strings"

	"pagepad/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

const (
	bannerWidth = 60
	headerWidth = 50

	// TreeTitle is printed between the banner rules of a tree run.
	TreeTitle = "pagepad - Rename All Files to Zero-Padded Format"
)

// Console writes progress lines to an io.Writer. Styles are bound to the
// writer, so plain text is produced when it is not a terminal.
type Console struct {
	out     io.Writer
	title   lipgloss.Style
	header  lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// NewConsole creates a console reporter writing to out
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	return &Console{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B61FF")),
		header:  r.NewStyle().Bold(true),
		warn:    r.NewStyle().Foreground(lipgloss.Color("220")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("114")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

// Banner prints the opening frame of a tree run
func (c *Console) Banner() {
	c.println(strings.Repeat("=", bannerWidth))
	c.println(c.title.Render(TreeTitle))
	c.println(strings.Repeat("=", bannerWidth))
	c.println("")
}

// StartDirectory prints the header for a book directory
func (c *Console) StartDirectory(name string) {
	c.println("")
	c.println(c.header.Render("📚 " + name))
	c.println(strings.Repeat("-", headerWidth))
}

// Record prints one line per rename, collision or failure.
// Files that need no change produce no output.
func (c *Console) Record(result types.RenameResult) {
	switch result.Outcome {
	case types.Renamed:
		c.println(fmt.Sprintf("  %s -> %s", result.OldName, result.NewName))
	case types.SkippedCollision:
		c.println(c.warn.Render("  SKIP (bestaat al): " + result.NewName))
	case types.Failed:
		c.println(c.fail.Render(fmt.Sprintf("  FOUT: %s -> %s: %v", result.OldName, result.NewName, result.Error)))
	}
}

// FinishDirectory notes directories in which nothing was renamed
func (c *Console) FinishDirectory(name string, renamed int) {
	if renamed == 0 {
		c.println(c.muted.Render("  (geen bestanden om te hernoemen)"))
	}
}

// TreeSummary prints the closing frame of a tree run
func (c *Console) TreeSummary(total int) {
	c.println("")
	c.println(strings.Repeat("=", bannerWidth))
	c.println(c.success.Render(fmt.Sprintf("✅ Klaar! Totaal %d bestanden hernoemd.", total)))
	c.println(strings.Repeat("=", bannerWidth))
}

// DirectorySummary prints the closing line of a single-directory run
func (c *Console) DirectorySummary(total int) {
	c.println("")
	c.println(c.success.Render(fmt.Sprintf("Klaar! %d bestanden hernoemd.", total)))
}
