package mapper

import (
	"time"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

func ToListItems(lists []domain.List) []dto.ListItem {
	items := make([]dto.ListItem, 0, len(lists))
	for _, list := range lists {
		items = append(items, ToListItem(list))
	}
	return items
}

func ToListItem(list domain.List) dto.ListItem {
	return dto.ListItem{
		ID:          list.ID,
		Name:        list.Name,
		Description: list.Description,
		IsDefault:   list.IsDefault,
		CreatedAt:   list.CreatedAt.Format(time.RFC3339),
	}
}

func ToListDetail(list domain.List) dto.ListDetail {
	return dto.ListDetail{
		ListItem: ToListItem(list),
		Tasks:    ToTaskItems(list.Tasks),
	}
}
