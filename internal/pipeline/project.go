package pipeline

import (
	"todogist/internal/domain"
	"todogist/internal/todoist"
)

// MapProject filters one project's items and partitions the retained tasks
// into done and pending, preserving relative order within each partition.
// The recognized category ids are returned alongside the result.
func MapProject(data todoist.ProjectData, sections domain.SectionMap) (domain.ProjectResult, []int64) {
	tasks, categoryIDs := Filter(data.Items, sections)

	res := domain.ProjectResult{Name: data.Project.Name}
	for _, t := range tasks {
		if t.Checked {
			res.Items.Done = append(res.Items.Done, t)
		} else {
			res.Items.Pending = append(res.Items.Pending, t)
		}
	}

	return res, categoryIDs
}
