package pipeline

import (
	"strings"

	"todogist/internal/domain"
	"todogist/internal/todoist"
)

// BuildSectionMap builds the section-id to display-name lookup for one
// project. Sections whose trimmed name ends in the ignore glyph are left out
// entirely, which later causes their items to fail the membership check in
// Filter and be dropped. When projectID is non-zero, sections belonging to
// other projects are skipped.
//
// The root sentinel entry is always present and always carries the fixed
// root label, regardless of what the section list contains.
func BuildSectionMap(sections []todoist.Section, projectID int64) domain.SectionMap {
	m := make(domain.SectionMap, len(sections)+1)
	for _, s := range sections {
		if projectID != 0 && s.ProjectID != projectID {
			continue
		}
		name := strings.TrimSpace(s.Name)
		if strings.HasSuffix(name, domain.IgnoreGlyph) {
			continue
		}
		m[s.ID] = ParseContent(name).Text
	}
	m[domain.RootSectionID] = domain.RootSectionName
	return m
}
