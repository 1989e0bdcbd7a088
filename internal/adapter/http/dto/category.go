package dto

type CategoryItem struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type CreateCategoryRequest struct {
	Name string  `json:"name" binding:"required,max=50"`
	Slug *string `json:"slug" binding:"omitempty,max=60"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=50"`
	Slug *string `json:"slug" binding:"omitempty,max=60"`
}
