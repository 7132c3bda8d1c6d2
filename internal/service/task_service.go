package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/calebmaier/taskline-api/internal/platform/logger"
	"github.com/calebmaier/taskline-api/internal/store"
)

// TaskService implements the task resource lifecycle: identifier
// assignment on create, merge-patch updates, and not-found detection from
// the store's change counts.
type TaskService interface {
	// List returns all tasks verbatim from the store.
	List(ctx context.Context) ([]domain.Task, error)

	// GetByID returns the task whose logical ID equals id.
	// Returns store.ErrTaskNotFound if no task matches.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Create assigns the next logical ID and persists a new task.
	// The assignment policy is max(existing ids)+1, or 1 when the
	// collection is empty. Two concurrent creates can compute the same next
	// ID; the collection's unique index then fails the second insert with
	// store.ErrTaskExists rather than allowing a silent collision.
	Create(ctx context.Context, title string, completed bool) (*domain.Task, error)

	// Update applies a merge-patch to the task whose logical ID equals id:
	// only fields supplied in the patch change. It returns the task as
	// re-read from the store after the patch, so the response reflects the
	// authoritative stored state rather than the patch itself.
	// Returns store.ErrTaskNotFound if no task matched the ID. A patch that
	// matches a task but changes nothing is a success, not a not-found:
	// the store counts matched documents, not changed ones.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete permanently removes the task whose logical ID equals id.
	// Returns store.ErrTaskNotFound if no task matched, including on a
	// second delete of the same ID.
	Delete(ctx context.Context, id int64) error
}

// Verify interface compliance at compile time
var _ TaskService = (*taskServiceImpl)(nil)

// taskServiceImpl implements the TaskService interface. It holds no mutable
// state of its own between requests; all state lives in the store.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService implementation backed by the
// given store.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// List implements TaskService.List.
func (s *taskServiceImpl) List(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.taskStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetByID implements TaskService.GetByID.
// The store exposes no indexed point-lookup, so this lists the collection
// and scans for the first task with a matching ID.
func (s *taskServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	task := findByID(tasks, id)
	if task == nil {
		log.Debug("task not found", slog.Int64("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// Create implements TaskService.Create.
func (s *taskServiceImpl) Create(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	tasks, err := s.taskStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign task id: %w", err)
	}

	task := domain.NewTask(nextID(tasks), title, completed)

	recordID, err := s.taskStore.Insert(ctx, task)
	if err != nil {
		if store.IsDuplicateError(err) {
			log.Warn("concurrent create raced to the same task id",
				slog.Int64("task_id", task.ID))
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("record_id", recordID.String()))
	return task, nil
}

// Update implements TaskService.Update.
func (s *taskServiceImpl) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	matched, err := s.taskStore.UpdateFields(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	if matched == 0 {
		log.Debug("update matched no task", slog.Int64("task_id", id))
		return nil, store.ErrTaskNotFound
	}

	// Re-read so the caller sees the authoritative stored state, not the
	// patch echoed back.
	tasks, err := s.taskStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read back updated task: %w", err)
	}

	task := findByID(tasks, id)
	if task == nil {
		// Deleted between the patch and the read-back.
		return nil, store.ErrTaskNotFound
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return task, nil
}

// Delete implements TaskService.Delete.
func (s *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	deleted, err := s.taskStore.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if deleted == 0 {
		log.Debug("delete matched no task", slog.Int64("task_id", id))
		return store.ErrTaskNotFound
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}

// nextID computes the next logical identifier: max(existing ids)+1, or 1
// for an empty collection.
func nextID(tasks []domain.Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// findByID returns a copy of the first task with the given logical ID, or
// nil if none matches.
func findByID(tasks []domain.Task, id int64) *domain.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			task := tasks[i]
			return &task
		}
	}
	return nil
}
