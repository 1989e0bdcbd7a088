package service

import (
	"context"

	"github.com/gosimple/slug"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

const maxSlugLength = 60

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context, ownerID uint64) ([]domain.Category, error) {
	return s.categoryRepository.ListCategories(ctx, ownerID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, ownerID uint64, input domain.CreateCategoryInput) (domain.Category, error) {
	if input.Slug == "" {
		input.Slug = makeSlug(input.Name)
	}
	return s.categoryRepository.CreateCategory(ctx, ownerID, input)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, ownerID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	if input.Slug != nil && *input.Slug == "" && input.Name != nil {
		derived := makeSlug(*input.Name)
		input.Slug = &derived
	}
	return s.categoryRepository.UpdateCategory(ctx, ownerID, categoryID, input)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, ownerID, categoryID uint64) error {
	return s.categoryRepository.DeleteCategory(ctx, ownerID, categoryID)
}

func makeSlug(name string) string {
	value := slug.Make(name)
	if len(value) > maxSlugLength {
		value = value[:maxSlugLength]
	}
	return value
}

var _ ports.CategoryService = (*CategoryService)(nil)
