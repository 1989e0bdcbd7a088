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

const selectTaskColumns = `
SELECT
  t.id, t.owner_id, t.list_id, t.title, t.description, t.status, t.priority,
  t.due_date, t.reminder_at, t.completed_at, t.created_at, t.updated_at,
  l.name AS list_name, l.is_default AS list_is_default
FROM tasks t
LEFT JOIN lists l ON l.id = t.list_id
`

// Default ordering mirrors the task board: most urgent first, open before
// done, nearest deadline first, newest first.
const defaultTaskOrder = `
ORDER BY t.priority DESC, t.status ASC, t.due_date ASC, t.created_at DESC
`

const selectTaskCategoriesQuery = `
SELECT tc.task_id AS task_id, c.id AS id, c.owner_id AS owner_id, c.name AS name, c.slug AS slug
FROM task_categories tc
JOIN categories c ON c.id = tc.category_id
WHERE tc.task_id IN (?)
ORDER BY c.name
`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID            uint64         `db:"id"`
	OwnerID       uint64         `db:"owner_id"`
	ListID        sql.NullInt64  `db:"list_id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	Status        string         `db:"status"`
	Priority      int            `db:"priority"`
	DueDate       sql.NullTime   `db:"due_date"`
	ReminderAt    sql.NullTime   `db:"reminder_at"`
	CompletedAt   sql.NullTime   `db:"completed_at"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	ListName      sql.NullString `db:"list_name"`
	ListIsDefault sql.NullBool   `db:"list_is_default"`
}

type taskCategoryRow struct {
	TaskID  uint64 `db:"task_id"`
	ID      uint64 `db:"id"`
	OwnerID uint64 `db:"owner_id"`
	Name    string `db:"name"`
	Slug    string `db:"slug"`
}

func (r *TaskRepository) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	conditions := []string{"t.owner_id = ?"}
	args := []interface{}{ownerID}

	if filter.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Priority != nil {
		conditions = append(conditions, "t.priority = ?")
		args = append(args, *filter.Priority)
	}
	if filter.ListID != nil {
		conditions = append(conditions, "t.list_id = ?")
		args = append(args, *filter.ListID)
	}
	if filter.CategoryID != nil {
		conditions = append(conditions,
			"EXISTS (SELECT 1 FROM task_categories tc WHERE tc.task_id = t.id AND tc.category_id = ?)")
		args = append(args, *filter.CategoryID)
	}

	query := selectTaskColumns + "WHERE " + strings.Join(conditions, " AND ") + defaultTaskOrder
	return queryTasks(ctx, r.db, query, args...)
}

func (r *TaskRepository) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return getOwnedTask(ctx, r.db, ownerID, taskID)
}

func (r *TaskRepository) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if input.ListID != nil {
		if err := checkListOwned(ctx, tx, ownerID, *input.ListID); err != nil {
			return domain.Task{}, err
		}
	}
	if err := checkCategoriesOwned(ctx, tx, ownerID, input.CategoryIDs); err != nil {
		return domain.Task{}, err
	}

	result, err := tx.ExecContext(ctx, `
INSERT INTO tasks (owner_id, list_id, title, description, status, priority, due_date, reminder_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ownerID,
		nullableID(input.ListID),
		input.Title,
		input.Description,
		string(input.Status),
		input.Priority,
		nullableTime(input.DueDate),
		nullableTime(input.ReminderAt),
	)
	if err != nil {
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	if err := replaceTaskCategories(ctx, tx, uint64(taskID), input.CategoryIDs); err != nil {
		return domain.Task{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return getOwnedTask(ctx, r.db, ownerID, uint64(taskID))
}

func (r *TaskRepository) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkTaskOwned(ctx, tx, ownerID, taskID); err != nil {
		return domain.Task{}, err
	}

	sets := make([]string, 0, 7)
	args := make([]interface{}, 0, 9)

	if input.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		description := ""
		if input.Description != nil {
			description = *input.Description
		}
		sets = append(sets, "description = ?")
		args = append(args, description)
	}
	if input.ListIDSet {
		if input.ListID != nil {
			if err := checkListOwned(ctx, tx, ownerID, *input.ListID); err != nil {
				return domain.Task{}, err
			}
		}
		sets = append(sets, "list_id = ?")
		args = append(args, nullableID(input.ListID))
	}
	if input.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*input.Status))
	}
	if input.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, *input.Priority)
	}
	if input.DueDateSet {
		sets = append(sets, "due_date = ?")
		args = append(args, nullableTime(input.DueDate))
	}
	if input.ReminderAtSet {
		sets = append(sets, "reminder_at = ?")
		args = append(args, nullableTime(input.ReminderAt))
	}

	if len(sets) > 0 {
		query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ? AND owner_id = ?", strings.Join(sets, ", "))
		args = append(args, taskID, ownerID)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return domain.Task{}, err
		}
	}

	if input.CategoryIDsSet {
		if err := checkCategoriesOwned(ctx, tx, ownerID, input.CategoryIDs); err != nil {
			return domain.Task{}, err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM task_categories WHERE task_id = ?", taskID); err != nil {
			return domain.Task{}, err
		}
		if err := replaceTaskCategories(ctx, tx, taskID, input.CategoryIDs); err != nil {
			return domain.Task{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return getOwnedTask(ctx, r.db, ownerID, taskID)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ? AND owner_id = ?", taskID, ownerID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CompleteTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, completed_at = NOW() WHERE id = ? AND owner_id = ?",
		string(domain.TaskStatusCompleted), taskID, ownerID,
	)
	if err != nil {
		return domain.Task{}, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return domain.Task{}, err
	}
	if affected == 0 {
		// A same-second repeat completion also reports zero affected rows,
		// so zero alone does not mean the task is missing.
		if err := checkTaskOwned(ctx, r.db, ownerID, taskID); err != nil {
			return domain.Task{}, err
		}
	}

	return getOwnedTask(ctx, r.db, ownerID, taskID)
}

// queryTasks runs a task select and attaches each task's categories.
func queryTasks(ctx context.Context, q sqlx.ExtContext, query string, args ...interface{}) ([]domain.Task, error) {
	var rows []taskRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	if err := attachTaskCategories(ctx, q, tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func getOwnedTask(ctx context.Context, q sqlx.ExtContext, ownerID, taskID uint64) (domain.Task, error) {
	tasks, err := queryTasks(ctx, q, selectTaskColumns+"WHERE t.id = ? AND t.owner_id = ?", taskID, ownerID)
	if err != nil {
		return domain.Task{}, err
	}
	if len(tasks) == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return tasks[0], nil
}

func attachTaskCategories(ctx context.Context, q sqlx.ExtContext, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	taskIDs := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		taskIDs = append(taskIDs, task.ID)
	}

	query, args, err := sqlx.In(selectTaskCategoriesQuery, taskIDs)
	if err != nil {
		return err
	}

	var rows []taskCategoryRow
	if err := sqlx.SelectContext(ctx, q, &rows, q.Rebind(query), args...); err != nil {
		return err
	}

	byTask := make(map[uint64][]domain.Category, len(tasks))
	for _, row := range rows {
		byTask[row.TaskID] = append(byTask[row.TaskID], domain.Category{
			ID:      row.ID,
			OwnerID: row.OwnerID,
			Name:    row.Name,
			Slug:    row.Slug,
		})
	}

	for i := range tasks {
		tasks[i].Categories = byTask[tasks[i].ID]
	}
	return nil
}

func checkTaskOwned(ctx context.Context, q sqlx.ExtContext, ownerID, taskID uint64) error {
	var id uint64
	err := sqlx.GetContext(ctx, q, &id, "SELECT id FROM tasks WHERE id = ? AND owner_id = ?", taskID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrTaskNotFound
	}
	return err
}

func checkListOwned(ctx context.Context, q sqlx.ExtContext, ownerID, listID uint64) error {
	var id uint64
	err := sqlx.GetContext(ctx, q, &id, "SELECT id FROM lists WHERE id = ? AND owner_id = ?", listID, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrListNotFound
	}
	return err
}

func checkCategoriesOwned(ctx context.Context, q sqlx.ExtContext, ownerID uint64, categoryIDs []uint64) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	unique := make(map[uint64]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		unique[id] = struct{}{}
	}

	query, args, err := sqlx.In("SELECT COUNT(*) FROM categories WHERE owner_id = ? AND id IN (?)", ownerID, categoryIDs)
	if err != nil {
		return err
	}

	var count int
	if err := sqlx.GetContext(ctx, q, &count, q.Rebind(query), args...); err != nil {
		return err
	}
	if count != len(unique) {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func replaceTaskCategories(ctx context.Context, tx *sqlx.Tx, taskID uint64, categoryIDs []uint64) error {
	for _, categoryID := range categoryIDs {
		_, err := tx.ExecContext(ctx,
			"INSERT IGNORE INTO task_categories (task_id, category_id) VALUES (?, ?)",
			taskID, categoryID,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func nullableID(id *uint64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

func nullableTime(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		Priority:    row.Priority,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}
	if row.ReminderAt.Valid {
		value := row.ReminderAt.Time
		task.ReminderAt = &value
	}
	if row.CompletedAt.Valid {
		value := row.CompletedAt.Time
		task.CompletedAt = &value
	}

	if row.ListID.Valid && row.ListName.Valid {
		task.List = &domain.List{
			ID:        uint64(row.ListID.Int64),
			OwnerID:   row.OwnerID,
			Name:      row.ListName.String,
			IsDefault: row.ListIsDefault.Valid && row.ListIsDefault.Bool,
		}
	}

	return task
}
