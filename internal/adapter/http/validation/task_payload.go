package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

const dueDateLayout = "2006-01-02"

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	input := domain.CreateTaskInput{
		Title:       title,
		ListID:      req.ListID,
		CategoryIDs: req.CategoryIDs,
	}

	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Status != nil {
		input.Status = domain.TaskStatus(*req.Status)
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidPayload
		}
		input.DueDate = &dueDate
	}
	if req.ReminderAt != nil {
		reminderAt, err := time.Parse(time.RFC3339, *req.ReminderAt)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidPayload
		}
		input.ReminderAt = &reminderAt
	}

	return input, nil
}

// BuildUpdateTaskInput turns a PATCH payload into a partial update. The raw
// message map tells fields explicitly set to null apart from fields left out.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if len(raw) == 0 {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	input := domain.UpdateTaskInput{}

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		input.Title = &title
	}

	if hasJSONField(raw, "description") {
		input.DescriptionSet = true
		input.Description = req.Description
	}

	if hasJSONField(raw, "list_id") {
		input.ListIDSet = true
		if !isJSONNull(raw["list_id"]) && req.ListID == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		input.ListID = req.ListID
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		input.Priority = req.Priority
	}

	if hasJSONField(raw, "due_date") {
		input.DueDateSet = true
		if !isJSONNull(raw["due_date"]) {
			if req.DueDate == nil {
				return domain.UpdateTaskInput{}, ErrInvalidPayload
			}
			dueDate, err := time.Parse(dueDateLayout, *req.DueDate)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidPayload
			}
			input.DueDate = &dueDate
		}
	}

	if hasJSONField(raw, "reminder_at") {
		input.ReminderAtSet = true
		if !isJSONNull(raw["reminder_at"]) {
			if req.ReminderAt == nil {
				return domain.UpdateTaskInput{}, ErrInvalidPayload
			}
			reminderAt, err := time.Parse(time.RFC3339, *req.ReminderAt)
			if err != nil {
				return domain.UpdateTaskInput{}, ErrInvalidPayload
			}
			input.ReminderAt = &reminderAt
		}
	}

	if hasJSONField(raw, "category_ids") {
		input.CategoryIDsSet = true
		input.CategoryIDs = req.CategoryIDs
	}

	return input, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
