package mapper

import (
	"time"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    task.Priority,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if task.DueDate != nil {
		value := task.DueDate.Format("2006-01-02")
		item.DueDate = &value
	}
	if task.ReminderAt != nil {
		value := task.ReminderAt.Format(time.RFC3339)
		item.ReminderAt = &value
	}
	if task.CompletedAt != nil {
		value := task.CompletedAt.Format(time.RFC3339)
		item.CompletedAt = &value
	}

	if task.List != nil {
		item.List = &dto.ListRef{
			ID:        task.List.ID,
			Name:      task.List.Name,
			IsDefault: task.List.IsDefault,
		}
	}

	if len(task.Categories) > 0 {
		item.Categories = ToCategoryItems(task.Categories)
	}

	return item
}
