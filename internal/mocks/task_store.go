package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/calebmaier/taskline-api/internal/store"
	"github.com/google/uuid"
)

// InMemoryTaskStore is a behavioral in-memory implementation of
// store.TaskStore for tests. It mirrors the semantics of the Postgres
// store:
//
//   - logical-ID uniqueness is enforced on insert, so a second insert with
//     an already-present ID fails with store.ErrTaskExists;
//   - UpdateFields and DeleteByID return matched/deleted counts, counting
//     matched documents even when a patch changes nothing;
//   - documents are listed in insertion (natural storage) order.
//
// The hook fields let tests interleave operations deterministically, which
// is how the identifier-assignment race between concurrent creates is
// reproduced without sleeping.
type InMemoryTaskStore struct {
	mu      sync.Mutex
	records []taskRecord

	// AfterList, when set, runs after each ListAll snapshot is taken but
	// before it is returned. Useful as a barrier between racing creates.
	AfterList func()

	// Forced errors. When set, the corresponding operation fails with the
	// given error before touching the collection.
	InsertErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

type taskRecord struct {
	recordID uuid.UUID
	task     domain.Task
}

// NewInMemoryTaskStore creates an empty in-memory task store.
func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{}
}

// Ensure InMemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*InMemoryTaskStore)(nil)

// Insert implements store.TaskStore.Insert.
func (s *InMemoryTaskStore) Insert(ctx context.Context, task *domain.Task) (uuid.UUID, error) {
	if s.InsertErr != nil {
		return uuid.Nil, s.InsertErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.task.ID == task.ID {
			return uuid.Nil, fmt.Errorf("%w: id %d", store.ErrTaskExists, task.ID)
		}
	}

	recordID := uuid.New()
	s.records = append(s.records, taskRecord{recordID: recordID, task: *task})
	return recordID, nil
}

// ListAll implements store.TaskStore.ListAll.
func (s *InMemoryTaskStore) ListAll(ctx context.Context) ([]domain.Task, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}

	s.mu.Lock()
	tasks := make([]domain.Task, 0, len(s.records))
	for _, rec := range s.records {
		tasks = append(tasks, rec.task)
	}
	s.mu.Unlock()

	if s.AfterList != nil {
		s.AfterList()
	}
	return tasks, nil
}

// UpdateFields implements store.TaskStore.UpdateFields.
// The count reflects matched documents, not changed ones, matching the
// Postgres store's rows-affected semantics.
func (s *InMemoryTaskStore) UpdateFields(ctx context.Context, id int64, patch domain.TaskPatch) (int64, error) {
	if s.UpdateErr != nil {
		return 0, s.UpdateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].task.ID == id {
			patch.Apply(&s.records[i].task)
			return 1, nil
		}
	}
	return 0, nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
func (s *InMemoryTaskStore) DeleteByID(ctx context.Context, id int64) (int64, error) {
	if s.DeleteErr != nil {
		return 0, s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].task.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
