package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

type UserRepository struct {
	db *sqlx.DB
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID           uint64    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *UserRepository) CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES (?, ?)",
		username, passwordHash,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return domain.User{}, domain.ErrUsernameTaken
		}
		return domain.User{}, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	var row userRow
	err = r.db.GetContext(ctx, &row,
		"SELECT id, username, password_hash, created_at FROM users WHERE id = ?",
		userID,
	)
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = ?",
		username,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
