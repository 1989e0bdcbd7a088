package ports

import (
	"context"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

type ListRepository interface {
	ListLists(ctx context.Context, ownerID uint64) ([]domain.List, error)
	GetList(ctx context.Context, ownerID, listID uint64) (domain.List, error)
	CreateList(ctx context.Context, ownerID uint64, input domain.CreateListInput) (domain.List, error)
	UpdateList(ctx context.Context, ownerID, listID uint64, input domain.UpdateListInput) (domain.List, error)
	DeleteList(ctx context.Context, ownerID, listID uint64) error
}

type ListService interface {
	ListLists(ctx context.Context, ownerID uint64) ([]domain.List, error)
	GetList(ctx context.Context, ownerID, listID uint64) (domain.List, error)
	CreateList(ctx context.Context, ownerID uint64, input domain.CreateListInput) (domain.List, error)
	UpdateList(ctx context.Context, ownerID, listID uint64, input domain.UpdateListInput) (domain.List, error)
	DeleteList(ctx context.Context, ownerID, listID uint64) error
}
