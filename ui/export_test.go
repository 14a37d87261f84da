package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentormatch/domain/mentorship"
)

func TestBuildGoalsWorkbook(t *testing.T) {
	goals := []mentorship.Goal{
		{Title: "Lead a project", Category: "leadership", Progress: 45.5},
		{Title: "Learn Go", Category: "skill", Progress: 80},
	}

	f, err := BuildGoalsWorkbook(goals)
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Goals", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Lead a project", title)

	progress, err := f.GetCellValue("Goals", "D2")
	require.NoError(t, err)
	assert.Equal(t, "46", progress, "progress is display-rounded")

	category, err := f.GetCellValue("Goals", "B3")
	require.NoError(t, err)
	assert.Equal(t, "skill", category)
}
