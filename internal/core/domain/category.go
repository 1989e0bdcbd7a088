package domain

type Category struct {
	ID      uint64
	OwnerID uint64
	Name    string
	Slug    string
}

type CreateCategoryInput struct {
	Name string
	Slug string
}

type UpdateCategoryInput struct {
	Name *string
	Slug *string
}
