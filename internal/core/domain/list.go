package domain

import "time"

type List struct {
	ID          uint64
	OwnerID     uint64
	Name        string
	Description string
	IsDefault   bool
	CreatedAt   time.Time
	// Tasks is populated on list detail reads only.
	Tasks []Task
}

type CreateListInput struct {
	Name        string
	Description string
	IsDefault   bool
}

type UpdateListInput struct {
	Name        *string
	Description *string
	IsDefault   *bool
}
