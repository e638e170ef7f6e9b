// Package pipeline implements the extraction and normalization core: it
// turns raw sync-API records into filtered, presentation-ready task records
// and aggregates archived items across paginated queries.
package pipeline

import (
	"strings"
	"time"

	"todogist/internal/domain"
	"todogist/internal/todoist"
)

// Filter runs a single left-to-right pass over a flat item list and returns
// the retained tasks plus the ids of recognized category markers (items whose
// content ends in a colon; they head a group and are never emitted as tasks).
//
// Precondition: the list is parent-ordered — every item physically follows
// its parent. The sync API returns items in this order; Filter is not
// correct for arbitrary orderings.
//
// An item ending in the ignore glyph (optionally followed by a colon) is
// dropped together with its whole subtree. The skip state is a single
// scalar, so only one skip region is tracked at a time: sibling subtrees
// independently marked for ignoring at different depths are not isolated
// from each other. A category marker reached through a skipped subtree
// carries the skip down one level instead of being recorded.
//
// Items whose section is not a key of sections are dropped outright. A nil
// sections map means "root only": every unsectioned item passes, every
// sectioned item is dropped.
func Filter(items []todoist.Item, sections domain.SectionMap) ([]domain.Task, []int64) {
	if sections == nil {
		sections = domain.SectionMap{domain.RootSectionID: domain.RootSectionName}
	}

	var (
		tasks       []domain.Task
		categoryIDs []int64
	)

	// Id of the most recent ignored item, tracking the one active skip
	// region. Zero means no active skip (item ids are never zero, and a
	// zero ParentID means top level, which must not match).
	var lastSkippedParentID int64

	for _, it := range items {
		if _, ok := sections[it.SectionID]; !ok {
			continue
		}

		content := strings.TrimSpace(it.Content)

		if strings.HasSuffix(content, domain.IgnoreGlyph) || strings.HasSuffix(content, domain.IgnoreGlyph+":") {
			lastSkippedParentID = it.ID
			continue
		}

		if lastSkippedParentID != 0 && it.ParentID == lastSkippedParentID {
			// Inside the skipped subtree. A category marker here becomes
			// the new skip root so the subtree keeps swallowing its
			// children; it is not recorded as a category.
			if strings.HasSuffix(content, ":") {
				lastSkippedParentID = it.ID
			}
			continue
		}

		lastSkippedParentID = 0

		if strings.HasSuffix(content, ":") {
			categoryIDs = append(categoryIDs, it.ID)
			continue
		}

		tasks = append(tasks, newTask(it))
	}

	return tasks, categoryIDs
}

// newTask normalizes one retained raw item.
func newTask(it todoist.Item) domain.Task {
	return domain.Task{
		ID:        it.ID,
		ParentID:  it.ParentID,
		SectionID: it.SectionID,
		Checked:   it.Checked,
		DateAdded: formatDate(it.DateAdded),
		Priority:  it.Priority,
		Content:   ParseContent(it.Content),
	}
}

// formatDate renders the date part of a sync-API date-time string as
// "January 2, 2006". Strings that don't carry a parseable date are returned
// unchanged.
func formatDate(dateAdded string) string {
	if len(dateAdded) < 10 {
		return dateAdded
	}
	t, err := time.Parse("2006-01-02", dateAdded[:10])
	if err != nil {
		return dateAdded
	}
	return t.Format("January 2, 2006")
}
