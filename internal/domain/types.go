// Package domain defines the normalized output types of the export pipeline.
// These types represent the core concepts independent of the sync API's wire
// structure.
package domain

// RootSectionID is the sentinel section identifier for items that belong to
// no explicit section. The sync API reports such items with a null section,
// which decodes to zero.
const RootSectionID int64 = 0

// RootSectionName is the display label of the root section. It is fixed and
// is never produced by parsing a section name.
const RootSectionName = "Other"

// IgnoreGlyph marks a section or item (and its whole subtree) for exclusion
// when it appears at the end of the name or content.
const IgnoreGlyph = "*"

// ParsedContent is the structured form of a single free-text content field.
// Empty fields mean "absent" and are omitted from serialized output.
type ParsedContent struct {
	Text string `json:"text,omitempty"` // Display text with tag/link/decoration removed
	Tag  string `json:"tag,omitempty"`  // Lowercased tag, e.g. "music"
	Link string `json:"link,omitempty"` // URL extracted from the content, if any
}

// SectionMap maps a section identifier to its parsed display name.
// RootSectionID is always present. The map is built once per project query
// and is read-only afterwards.
type SectionMap map[int64]string

// Task is one normalized, presentation-ready task record.
type Task struct {
	ID        int64         `json:"id"`
	ParentID  int64         `json:"parentId,omitempty"`  // 0 for top-level items
	SectionID int64         `json:"sectionId,omitempty"` // RootSectionID for unsectioned items
	Checked   bool          `json:"checked"`
	DateAdded string        `json:"dateAdded"` // "January 2, 2006"
	Priority  int           `json:"priority"`
	Content   ParsedContent `json:"content"`
}

// TaskPartition groups a project's tasks by completion state. Relative order
// within each slice follows the sync API's item order.
type TaskPartition struct {
	Done    []Task `json:"done"`
	Pending []Task `json:"pending"`
}

// ProjectResult is the durable output of one pipeline run for one project.
type ProjectResult struct {
	Name  string        `json:"name"`
	Items TaskPartition `json:"items"`
}
