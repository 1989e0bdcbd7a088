package ports

import (
	"context"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

type TaskRepository interface {
	ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uint64) error
	CompleteTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uint64) error
	CompleteTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
}
