package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

const (
	TaskPriorityLow    = 1
	TaskPriorityMedium = 2
	TaskPriorityHigh   = 3
)

type Task struct {
	ID          uint64
	OwnerID     uint64
	Title       string
	Description string
	Status      TaskStatus
	Priority    int
	DueDate     *time.Time
	ReminderAt  *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	List        *List
	Categories  []Category
}

type CreateTaskInput struct {
	Title       string
	Description string
	ListID      *uint64
	Status      TaskStatus
	Priority    int
	DueDate     *time.Time
	ReminderAt  *time.Time
	CategoryIDs []uint64
}

// UpdateTaskInput carries a partial update. The *Set flags distinguish
// "field absent" from "field explicitly set to null".
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	ListID         *uint64
	ListIDSet      bool
	Status         *TaskStatus
	Priority       *int
	DueDate        *time.Time
	DueDateSet     bool
	ReminderAt     *time.Time
	ReminderAtSet  bool
	CategoryIDs    []uint64
	CategoryIDsSet bool
}

// TaskFilter narrows ListTasks results. Filters combine with AND; a value
// that matches no row (unknown status, nonexistent list id) yields an empty
// result, never an error.
type TaskFilter struct {
	Status     *TaskStatus
	Priority   *int
	ListID     *uint64
	CategoryID *uint64
}
