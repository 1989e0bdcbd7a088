package service

import (
	"context"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.ListTasks(ctx, ownerID, filter)
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetTask(ctx, ownerID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	if input.Priority == 0 {
		input.Priority = domain.TaskPriorityMedium
	}
	return s.taskRepository.CreateTask(ctx, ownerID, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateTask(ctx, ownerID, taskID, input)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	return s.taskRepository.DeleteTask(ctx, ownerID, taskID)
}

func (s *TaskService) CompleteTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.CompleteTask(ctx, ownerID, taskID)
}

var _ ports.TaskService = (*TaskService)(nil)
