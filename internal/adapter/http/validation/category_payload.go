package validation

import (
	"encoding/json"
	"strings"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

func BuildCreateCategoryInput(req dto.CreateCategoryRequest) (domain.CreateCategoryInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateCategoryInput{}, ErrInvalidPayload
	}

	input := domain.CreateCategoryInput{Name: name}
	if req.Slug != nil {
		input.Slug = strings.TrimSpace(*req.Slug)
	}
	return input, nil
}

func BuildUpdateCategoryInput(req dto.UpdateCategoryRequest, raw map[string]json.RawMessage) (domain.UpdateCategoryInput, error) {
	if len(raw) == 0 {
		return domain.UpdateCategoryInput{}, ErrInvalidPayload
	}

	input := domain.UpdateCategoryInput{}

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateCategoryInput{}, ErrInvalidPayload
		}
		input.Name = &name
	}

	if hasJSONField(raw, "slug") {
		slug := ""
		if req.Slug != nil {
			slug = strings.TrimSpace(*req.Slug)
		}
		input.Slug = &slug
	}

	return input, nil
}
