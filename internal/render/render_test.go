package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"todogist/internal/domain"
)

func testResult() domain.ProjectResult {
	return domain.ProjectResult{
		Name: "Backlog",
		Items: domain.TaskPartition{
			Pending: []domain.Task{
				{ID: 1, DateAdded: "March 9, 2024", Content: domain.ParsedContent{Text: "Song Title", Tag: "music"}},
				{ID: 2, Content: domain.ParsedContent{Text: "Doc", Link: "http://x"}},
			},
			Done: []domain.Task{
				{ID: 3, Checked: true, Content: domain.ParsedContent{Text: "Shipped thing"}},
			},
		},
	}
}

func TestMarkdown(t *testing.T) {
	got := Markdown(testResult())

	want := "# Backlog\n" +
		"\n## Pending\n\n" +
		"- [ ] Song Title `#music` *(March 9, 2024)*\n" +
		"- [ ] [Doc](http://x)\n" +
		"\n## Done\n\n" +
		"- [x] Shipped thing\n"
	assert.Equal(t, want, got)
}

func TestMarkdownOmitsEmptySections(t *testing.T) {
	res := domain.ProjectResult{Name: "Empty"}

	got := Markdown(res)

	assert.Equal(t, "# Empty\n", got)
	assert.NotContains(t, got, "## Pending")
	assert.NotContains(t, got, "## Done")
}

func TestMarkdownPendingBeforeDone(t *testing.T) {
	got := Markdown(testResult())

	assert.Less(t, strings.Index(got, "## Pending"), strings.Index(got, "## Done"))
}

func TestBoardContainsAllTasks(t *testing.T) {
	got := Board(testResult(), 80)

	assert.Contains(t, got, "Backlog")
	assert.Contains(t, got, "Pending (2)")
	assert.Contains(t, got, "Done (1)")
	assert.Contains(t, got, "Song Title")
	assert.Contains(t, got, "<http://x>")
	assert.Contains(t, got, "Shipped thing")
}

func TestBoardWrapsLongContent(t *testing.T) {
	res := domain.ProjectResult{
		Name: "Wide",
		Items: domain.TaskPartition{
			Pending: []domain.Task{
				{ID: 1, Content: domain.ParsedContent{Text: strings.Repeat("word ", 30)}},
			},
		},
	}

	got := Board(res, 40)

	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 60, "line %q", line)
	}
}
