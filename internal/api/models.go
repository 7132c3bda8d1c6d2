package api

import "github.com/calebmaier/taskline-api/internal/domain"

// CreateTaskRequest is the request body for POST /tasks.
// Pointer fields distinguish "absent" from zero values: a missing title is
// a validation error, a missing completed flag defaults to false.
type CreateTaskRequest struct {
	Title     *string `json:"title"     validate:"required,min=1"`
	Completed *bool   `json:"completed"`
}

// UpdateTaskRequest is the request body for PUT /tasks/{id}. Both fields
// are optional; only the supplied ones are patched. The title is
// type-checked by JSON decoding but not re-validated for non-emptiness on
// update.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// Patch converts the request into the domain merge-patch.
func (r UpdateTaskRequest) Patch() domain.TaskPatch {
	return domain.TaskPatch{
		Title:     r.Title,
		Completed: r.Completed,
	}
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// taskToResponse transforms a domain task into its response shape.
func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        t.ID,
		Title:     t.Title,
		Completed: t.Completed,
	}
}

// tasksToResponse transforms a slice of domain tasks, always yielding a
// non-nil slice so an empty collection serializes as [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToResponse(&tasks[i]))
	}
	return out
}
