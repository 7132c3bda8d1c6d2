package store

import (
	"context"

	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/google/uuid"
)

// TaskStore defines the interface for task document persistence.
//
// The store mediates all access to the underlying document collection. It
// deliberately exposes change counts from UpdateFields and DeleteByID
// rather than existence errors: the store owns the physical record, the
// service owns the policy of interpreting a zero count as "not found".
type TaskStore interface {
	// Insert writes a new document with the task's fields and returns the
	// generated storage record identifier, which is distinct from the
	// task's own logical ID.
	// Returns ErrTaskExists if a document with the same logical ID already
	// exists in the collection.
	Insert(ctx context.Context, task *domain.Task) (uuid.UUID, error)

	// ListAll returns every document in the collection as domain tasks, in
	// natural storage order. No filtering, sorting, or pagination.
	ListAll(ctx context.Context) ([]domain.Task, error)

	// UpdateFields applies a merge-patch to the document whose logical ID
	// equals id: only fields supplied in the patch change. It returns the
	// number of matched documents (0 or 1, since logical IDs are unique).
	// A zero count is not an error here; it means no document matched.
	UpdateFields(ctx context.Context, id int64, patch domain.TaskPatch) (int64, error)

	// DeleteByID removes the document whose logical ID equals id and
	// returns the number of deleted documents (0 or 1). As with
	// UpdateFields, a zero count is reported, not an error.
	DeleteByID(ctx context.Context, id int64) (int64, error)
}
