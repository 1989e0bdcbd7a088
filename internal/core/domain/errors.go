package domain

import "errors"

// Not-found errors cover both absence and ownership mismatch: a caller can
// never tell whether a record exists under another owner.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrListNotFound     = errors.New("list not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrDuplicateListName     = errors.New("list name already in use for this owner")
	ErrDuplicateCategoryName = errors.New("category name already in use for this owner")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
)
