package ports

import (
	"context"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context, ownerID uint64) ([]domain.Category, error)
	CreateCategory(ctx context.Context, ownerID uint64, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID uint64) error
}

type CategoryService interface {
	ListCategories(ctx context.Context, ownerID uint64) ([]domain.Category, error)
	CreateCategory(ctx context.Context, ownerID uint64, input domain.CreateCategoryInput) (domain.Category, error)
	UpdateCategory(ctx context.Context, ownerID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error)
	DeleteCategory(ctx context.Context, ownerID, categoryID uint64) error
}
