package domain

// Task represents the single managed entity: a title, a completion flag,
// and a service-assigned integer identifier. The identifier is logical and
// distinct from any storage-internal record identifier the persistence
// layer generates on insert.
//
// Task carries no validation of its own; request validation happens at the
// API boundary before a Task is ever constructed.
type Task struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewTask creates a new Task with the given logical ID, title, and
// completion flag.
func NewTask(id int64, title string, completed bool) *Task {
	return &Task{
		ID:        id,
		Title:     title,
		Completed: completed,
	}
}

// TaskPatch describes a merge-patch against a stored task: only the fields
// explicitly supplied are changed, all others are left untouched. A nil
// field means "absent from the request".
//
// The JSON encoding of a TaskPatch contains exactly the supplied fields,
// which lets it be applied directly as a JSONB merge in the store.
type TaskPatch struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the patch supplies no fields at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// Apply merges the patch into the given task, changing only the supplied
// fields. Used by in-memory store implementations; the Postgres store
// applies the same merge at the storage layer.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
