package dto

type TaskItem struct {
	ID          uint64         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status"`
	Priority    int            `json:"priority"`
	DueDate     *string        `json:"due_date,omitempty"`
	ReminderAt  *string        `json:"reminder_at,omitempty"`
	CompletedAt *string        `json:"completed_at,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
	List        *ListRef       `json:"list,omitempty"`
	Categories  []CategoryItem `json:"categories,omitempty"`
}

type ListRef struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=150"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	ListID      *uint64  `json:"list_id" binding:"omitempty,gt=0"`
	Status      *string  `json:"status" binding:"omitempty,taskstatus"`
	Priority    *int     `json:"priority" binding:"omitempty,gte=1,lte=3"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ReminderAt  *string  `json:"reminder_at" binding:"omitempty"`
	CategoryIDs []uint64 `json:"category_ids" binding:"omitempty,dive,gt=0"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=150"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	ListID      *uint64  `json:"list_id" binding:"omitempty,gt=0"`
	Status      *string  `json:"status" binding:"omitempty,taskstatus"`
	Priority    *int     `json:"priority" binding:"omitempty,gte=1,lte=3"`
	DueDate     *string  `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	ReminderAt  *string  `json:"reminder_at" binding:"omitempty"`
	CategoryIDs []uint64 `json:"category_ids" binding:"omitempty,dive,gt=0"`
}
