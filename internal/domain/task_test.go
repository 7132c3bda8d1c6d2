package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask(1, "buy milk", false)

	assert.Equal(t, int64(1), task.ID)
	assert.Equal(t, "buy milk", task.Title)
	assert.False(t, task.Completed)
}

func TestTaskJSONShape(t *testing.T) {
	task := NewTask(7, "water plants", true)

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7,"title":"water plants","completed":true}`, string(data))
}

func TestTaskPatchIsEmpty(t *testing.T) {
	title := "new title"
	completed := true

	assert.True(t, TaskPatch{}.IsEmpty())
	assert.False(t, TaskPatch{Title: &title}.IsEmpty())
	assert.False(t, TaskPatch{Completed: &completed}.IsEmpty())
}

// TestTaskPatchJSONOmitsAbsentFields pins the merge-patch wire shape: the
// encoded patch must contain exactly the supplied fields, because the
// Postgres store applies it verbatim as a JSONB merge.
func TestTaskPatchJSONOmitsAbsentFields(t *testing.T) {
	completed := true
	title := "renamed"

	tests := []struct {
		name  string
		patch TaskPatch
		want  string
	}{
		{"completed only", TaskPatch{Completed: &completed}, `{"completed":true}`},
		{"title only", TaskPatch{Title: &title}, `{"title":"renamed"}`},
		{"both", TaskPatch{Title: &title, Completed: &completed}, `{"title":"renamed","completed":true}`},
		{"empty", TaskPatch{}, `{}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.patch)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(data))
		})
	}
}

func TestTaskPatchApply(t *testing.T) {
	completed := true

	task := NewTask(3, "buy milk", false)
	TaskPatch{Completed: &completed}.Apply(task)

	assert.Equal(t, "buy milk", task.Title, "unsupplied fields must be untouched")
	assert.True(t, task.Completed)
	assert.Equal(t, int64(3), task.ID)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("title", "is required", ErrTitleRequired)

	assert.EqualError(t, err, "title is required")
	assert.ErrorIs(t, err, ErrTitleRequired)

	// nil sentinel falls back to ErrValidation
	fallback := NewValidationError("id", "has invalid format", nil)
	assert.ErrorIs(t, fallback, ErrValidation)
}
