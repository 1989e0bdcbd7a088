package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

type ListRepository struct {
	db *sqlx.DB
}

var _ ports.ListRepository = (*ListRepository)(nil)

func NewListRepository(db *sqlx.DB) *ListRepository {
	return &ListRepository{db: db}
}

type listRow struct {
	ID          uint64    `db:"id"`
	OwnerID     uint64    `db:"owner_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsDefault   bool      `db:"is_default"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r *ListRepository) ListLists(ctx context.Context, ownerID uint64) ([]domain.List, error) {
	var rows []listRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, owner_id, name, description, is_default, created_at FROM lists WHERE owner_id = ? ORDER BY name",
		ownerID,
	)
	if err != nil {
		return nil, err
	}

	lists := make([]domain.List, 0, len(rows))
	for _, row := range rows {
		lists = append(lists, mapListRowToDomainList(row))
	}
	return lists, nil
}

// GetList returns the list together with the owner's tasks in it, each with
// its categories attached.
func (r *ListRepository) GetList(ctx context.Context, ownerID, listID uint64) (domain.List, error) {
	var row listRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, owner_id, name, description, is_default, created_at FROM lists WHERE id = ? AND owner_id = ?",
		listID, ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.List{}, domain.ErrListNotFound
	}
	if err != nil {
		return domain.List{}, err
	}

	list := mapListRowToDomainList(row)

	tasks, err := queryTasks(ctx, r.db,
		selectTaskColumns+"WHERE t.owner_id = ? AND t.list_id = ?"+defaultTaskOrder,
		ownerID, listID,
	)
	if err != nil {
		return domain.List{}, err
	}
	list.Tasks = tasks

	return list, nil
}

func (r *ListRepository) CreateList(ctx context.Context, ownerID uint64, input domain.CreateListInput) (domain.List, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO lists (owner_id, name, description, is_default) VALUES (?, ?, ?, ?)",
		ownerID, input.Name, input.Description, input.IsDefault,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.List{}, domain.ErrDuplicateListName
		}
		return domain.List{}, err
	}

	listID, err := result.LastInsertId()
	if err != nil {
		return domain.List{}, err
	}

	return r.getListHeader(ctx, ownerID, uint64(listID))
}

func (r *ListRepository) UpdateList(ctx context.Context, ownerID, listID uint64, input domain.UpdateListInput) (domain.List, error) {
	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 5)

	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}
	if input.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *input.Description)
	}
	if input.IsDefault != nil {
		sets = append(sets, "is_default = ?")
		args = append(args, *input.IsDefault)
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE lists SET %s WHERE id = ? AND owner_id = ?", strings.Join(sets, ", "))
		args = append(args, listID, ownerID)
		if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
			if isDuplicateEntry(err) {
				return domain.List{}, domain.ErrDuplicateListName
			}
			return domain.List{}, err
		}
	}

	return r.getListHeader(ctx, ownerID, listID)
}

// DeleteList removes the list only; its tasks survive with list_id cleared
// by the schema's ON DELETE SET NULL.
func (r *ListRepository) DeleteList(ctx context.Context, ownerID, listID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM lists WHERE id = ? AND owner_id = ?", listID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrListNotFound
	}
	return nil
}

func (r *ListRepository) getListHeader(ctx context.Context, ownerID, listID uint64) (domain.List, error) {
	var row listRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, owner_id, name, description, is_default, created_at FROM lists WHERE id = ? AND owner_id = ?",
		listID, ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.List{}, domain.ErrListNotFound
	}
	if err != nil {
		return domain.List{}, err
	}
	return mapListRowToDomainList(row), nil
}

func mapListRowToDomainList(row listRow) domain.List {
	return domain.List{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Name:        row.Name,
		Description: row.Description,
		IsDefault:   row.IsDefault,
		CreatedAt:   row.CreatedAt,
	}
}
