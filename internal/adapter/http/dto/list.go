package dto

type ListItem struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsDefault   bool   `json:"is_default"`
	CreatedAt   string `json:"created_at"`
}

type ListDetail struct {
	ListItem
	Tasks []TaskItem `json:"tasks"`
}

type CreateListRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	IsDefault   *bool   `json:"is_default"`
}

type UpdateListRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	IsDefault   *bool   `json:"is_default"`
}
