package mocks

import (
	"context"

	"github.com/calebmaier/taskline-api/internal/domain"
	"github.com/calebmaier/taskline-api/internal/service"
)

// MockTaskService is a configurable mock implementation of
// service.TaskService for handler tests. Each method delegates to the
// corresponding function field when set and panics otherwise, so a test
// that exercises an unexpected operation fails loudly.
type MockTaskService struct {
	ListFunc    func(ctx context.Context) ([]domain.Task, error)
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Task, error)
	CreateFunc  func(ctx context.Context, title string, completed bool) (*domain.Task, error)
	UpdateFunc  func(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

// Ensure MockTaskService implements service.TaskService interface
var _ service.TaskService = (*MockTaskService)(nil)

// List implements service.TaskService.List.
func (m *MockTaskService) List(ctx context.Context) ([]domain.Task, error) {
	if m.ListFunc == nil {
		panic("MockTaskService.List called without ListFunc")
	}
	return m.ListFunc(ctx)
}

// GetByID implements service.TaskService.GetByID.
func (m *MockTaskService) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFunc == nil {
		panic("MockTaskService.GetByID called without GetByIDFunc")
	}
	return m.GetByIDFunc(ctx, id)
}

// Create implements service.TaskService.Create.
func (m *MockTaskService) Create(ctx context.Context, title string, completed bool) (*domain.Task, error) {
	if m.CreateFunc == nil {
		panic("MockTaskService.Create called without CreateFunc")
	}
	return m.CreateFunc(ctx, title, completed)
}

// Update implements service.TaskService.Update.
func (m *MockTaskService) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	if m.UpdateFunc == nil {
		panic("MockTaskService.Update called without UpdateFunc")
	}
	return m.UpdateFunc(ctx, id, patch)
}

// Delete implements service.TaskService.Delete.
func (m *MockTaskService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc == nil {
		panic("MockTaskService.Delete called without DeleteFunc")
	}
	return m.DeleteFunc(ctx, id)
}
