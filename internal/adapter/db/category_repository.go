package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

type CategoryRepository struct {
	db *sqlx.DB
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryRow struct {
	ID      uint64 `db:"id"`
	OwnerID uint64 `db:"owner_id"`
	Name    string `db:"name"`
	Slug    string `db:"slug"`
}

func (r *CategoryRepository) ListCategories(ctx context.Context, ownerID uint64) ([]domain.Category, error) {
	var rows []categoryRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, owner_id, name, slug FROM categories WHERE owner_id = ? ORDER BY name",
		ownerID,
	)
	if err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomainCategory(row))
	}
	return categories, nil
}

func (r *CategoryRepository) CreateCategory(ctx context.Context, ownerID uint64, input domain.CreateCategoryInput) (domain.Category, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (owner_id, name, slug) VALUES (?, ?, ?)",
		ownerID, input.Name, input.Slug,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.Category{}, domain.ErrDuplicateCategoryName
		}
		return domain.Category{}, err
	}

	categoryID, err := result.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}

	return r.getCategory(ctx, ownerID, uint64(categoryID))
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, ownerID, categoryID uint64, input domain.UpdateCategoryInput) (domain.Category, error) {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 4)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Slug != nil {
		sets = append(sets, "slug = ?")
		args = append(args, *input.Slug)
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE categories SET %s WHERE id = ? AND owner_id = ?", strings.Join(sets, ", "))
		args = append(args, categoryID, ownerID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				return domain.Category{}, domain.ErrDuplicateCategoryName
			}
			return domain.Category{}, err
		}
	}

	return r.getCategory(ctx, ownerID, categoryID)
}

// DeleteCategory removes the category; membership rows go with it through
// the schema's ON DELETE CASCADE while tasks themselves survive.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, ownerID, categoryID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ? AND owner_id = ?", categoryID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) getCategory(ctx context.Context, ownerID, categoryID uint64) (domain.Category, error) {
	var row categoryRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, owner_id, name, slug FROM categories WHERE id = ? AND owner_id = ?",
		categoryID, ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, err
	}
	return mapCategoryRowToDomainCategory(row), nil
}

func mapCategoryRowToDomainCategory(row categoryRow) domain.Category {
	return domain.Category{
		ID:      row.ID,
		OwnerID: row.OwnerID,
		Name:    row.Name,
		Slug:    row.Slug,
	}
}
