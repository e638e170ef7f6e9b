package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todogist/internal/todoist"
)

func TestMapProjectPartitionsByChecked(t *testing.T) {
	data := todoist.ProjectData{
		Project: todoist.Project{ID: 1, Name: "Backlog"},
		Items: []todoist.Item{
			{ID: 1, Content: "one", Checked: true},
			{ID: 2, Content: "two"},
			{ID: 3, Content: "three", Checked: true},
			{ID: 4, Content: "four"},
		},
	}

	res, categoryIDs := MapProject(data, nil)

	assert.Equal(t, "Backlog", res.Name)
	assert.Equal(t, []int64{1, 3}, taskIDs(res.Items.Done), "relative order preserved")
	assert.Equal(t, []int64{2, 4}, taskIDs(res.Items.Pending), "relative order preserved")
	assert.Empty(t, categoryIDs)
}

func TestMapProjectForwardsCategoryIDs(t *testing.T) {
	data := todoist.ProjectData{
		Project: todoist.Project{ID: 1, Name: "Backlog"},
		Items: []todoist.Item{
			{ID: 1, Content: "Heading:"},
			{ID: 2, ParentID: 1, Content: "Task under heading"},
		},
	}

	res, categoryIDs := MapProject(data, nil)

	assert.Equal(t, []int64{1}, categoryIDs)
	assert.Equal(t, []int64{2}, taskIDs(res.Items.Pending))
	assert.Empty(t, res.Items.Done)
}
