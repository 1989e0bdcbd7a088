package validation

import (
	"encoding/json"
	"strings"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
)

func BuildCreateListInput(req dto.CreateListRequest) (domain.CreateListInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateListInput{}, ErrInvalidPayload
	}

	input := domain.CreateListInput{Name: name}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.IsDefault != nil {
		input.IsDefault = *req.IsDefault
	}
	return input, nil
}

func BuildUpdateListInput(req dto.UpdateListRequest, raw map[string]json.RawMessage) (domain.UpdateListInput, error) {
	if len(raw) == 0 {
		return domain.UpdateListInput{}, ErrInvalidPayload
	}

	input := domain.UpdateListInput{}

	if hasJSONField(raw, "name") {
		if req.Name == nil {
			return domain.UpdateListInput{}, ErrInvalidPayload
		}
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return domain.UpdateListInput{}, ErrInvalidPayload
		}
		input.Name = &name
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil && !isJSONNull(raw["description"]) {
			return domain.UpdateListInput{}, ErrInvalidPayload
		}
		description := ""
		if req.Description != nil {
			description = *req.Description
		}
		input.Description = &description
	}

	if hasJSONField(raw, "is_default") {
		if req.IsDefault == nil {
			return domain.UpdateListInput{}, ErrInvalidPayload
		}
		input.IsDefault = req.IsDefault
	}

	return input, nil
}
