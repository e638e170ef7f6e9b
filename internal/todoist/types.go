package todoist

// Item is one raw task record from the sync API. Identifiers are opaque
// numeric handles; null parent_id/section_id decode to zero.
type Item struct {
	ID        int64  `json:"id"`
	ParentID  int64  `json:"parent_id"`
	SectionID int64  `json:"section_id"`
	Content   string `json:"content"`
	Checked   bool   `json:"checked"`
	DateAdded string `json:"date_added"` // "YYYY-MM-DD..." date-time string
	Priority  int    `json:"priority"`
}

// Section is one raw section record from the sync API.
type Section struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ProjectID int64  `json:"project_id"`
}

// Project is the metadata subset of a project record this tool consumes.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectData is the response of the project-data endpoint: one project's
// metadata together with its live items and sections.
type ProjectData struct {
	Project  Project   `json:"project"`
	Items    []Item    `json:"items"`
	Sections []Section `json:"sections"`
}

// ArchivePage is one page of an archived-items query. Successive pages of
// the same query are merged by concatenating Items; NextCursor is only
// meaningful while HasMore is true.
type ArchivePage struct {
	Items      []Item `json:"items"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// Archive query parameter names. Each archive query is keyed by exactly one
// of these dimensions.
const (
	ParamProjectID = "project_id"
	ParamSectionID = "section_id"
	ParamParentID  = "parent_id"
)

// ArchiveQuery identifies one archived-items query: a parameter name and the
// identifier it selects on.
type ArchiveQuery struct {
	Param string
	ID    int64
}
