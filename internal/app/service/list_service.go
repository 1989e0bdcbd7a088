package service

import (
	"context"

	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
)

type ListService struct {
	listRepository ports.ListRepository
}

func NewListService(listRepository ports.ListRepository) *ListService {
	return &ListService{listRepository: listRepository}
}

func (s *ListService) ListLists(ctx context.Context, ownerID uint64) ([]domain.List, error) {
	return s.listRepository.ListLists(ctx, ownerID)
}

func (s *ListService) GetList(ctx context.Context, ownerID, listID uint64) (domain.List, error) {
	return s.listRepository.GetList(ctx, ownerID, listID)
}

func (s *ListService) CreateList(ctx context.Context, ownerID uint64, input domain.CreateListInput) (domain.List, error) {
	return s.listRepository.CreateList(ctx, ownerID, input)
}

func (s *ListService) UpdateList(ctx context.Context, ownerID, listID uint64, input domain.UpdateListInput) (domain.List, error) {
	return s.listRepository.UpdateList(ctx, ownerID, listID, input)
}

func (s *ListService) DeleteList(ctx context.Context, ownerID, listID uint64) error {
	return s.listRepository.DeleteList(ctx, ownerID, listID)
}

var _ ports.ListService = (*ListService)(nil)
