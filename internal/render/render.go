// Package render turns a project result into its two output forms: the
// markdown document published to the gist and a styled terminal preview.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"todogist/internal/domain"
)

// Markdown renders the gist document: project heading, then the pending and
// done tasks as checkbox lists. Output is deterministic for a given result.
func Markdown(res domain.ProjectResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", res.Name)
	writeMarkdownSection(&b, "Pending", "[ ]", res.Items.Pending)
	writeMarkdownSection(&b, "Done", "[x]", res.Items.Done)
	return b.String()
}

func writeMarkdownSection(b *strings.Builder, title, box string, tasks []domain.Task) {
	if len(tasks) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, t := range tasks {
		fmt.Fprintf(b, "- %s %s\n", box, markdownLine(t))
	}
}

// markdownLine formats one task as a markdown list entry, decorating the
// display text with its link, tag, and creation date when present.
func markdownLine(t domain.Task) string {
	line := t.Content.Text
	if t.Content.Link != "" {
		line = fmt.Sprintf("[%s](%s)", line, t.Content.Link)
	}
	if t.Content.Tag != "" {
		line += " `#" + t.Content.Tag + "`"
	}
	if t.DateAdded != "" {
		line += " *(" + t.DateAdded + ")*"
	}
	return line
}

// Board renders a styled terminal preview of the result, wrapping task text
// to the given width. Width values too small to be usable fall back to 80.
func Board(res domain.ProjectResult, width int) string {
	if width < 20 {
		width = 80
	}

	sections := []string{
		titleStyle.Render(res.Name),
		boardSection("Pending", res.Items.Pending, pendingStyle, width),
		boardSection("Done", res.Items.Done, doneStyle, width),
	}
	return strings.Join(sections, "\n") + "\n"
}

func boardSection(title string, tasks []domain.Task, style lipgloss.Style, width int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	if len(tasks) == 0 {
		b.WriteString(dateStyle.Render("  none"))
		b.WriteString("\n")
		return b.String()
	}
	for _, t := range tasks {
		b.WriteString(boardLine(t, style, width))
	}
	return b.String()
}

// boardLine formats one task line for the terminal, wrapping long text and
// indenting continuation lines under the bullet.
func boardLine(t domain.Task, style lipgloss.Style, width int) string {
	text := t.Content.Text
	if t.Content.Link != "" {
		text += " <" + t.Content.Link + ">"
	}

	wrapped := wordwrap.String(text, width-4)
	lines := strings.Split(wrapped, "\n")

	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString("  • " + style.Render(line))
		} else {
			b.WriteString("\n    " + style.Render(line))
		}
	}

	if t.Content.Tag != "" {
		b.WriteString(" " + tagStyle.Render("#"+t.Content.Tag))
	}
	if t.DateAdded != "" {
		b.WriteString(" " + dateStyle.Render(t.DateAdded))
	}
	b.WriteString("\n")
	return b.String()
}
