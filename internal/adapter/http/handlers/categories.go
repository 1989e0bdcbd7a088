package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/mapper"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/middleware"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/validation"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/internal/core/ports"
	"github.com/LuisM11/TaskMaster/pkg/apierrors"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to list categories", zap.Uint64("owner_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListCategories, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItems(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateCategoryInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), identity.UserID, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCategoryName) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateCategoryName, lang),
			)
			return
		}

		zap.L().Error("failed to create category", zap.Uint64("owner_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateCategory, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryID, lang),
		)
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateCategoryInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryPayload, lang),
		)
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), identity.UserID, categoryID, input)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrDuplicateCategoryName) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateCategoryName, lang),
			)
			return
		}

		zap.L().Error("failed to update category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateCategory, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCategoryItem(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || categoryID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCategoryID, lang),
		)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), identity.UserID, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgCategoryNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete category", zap.Uint64("category_id", categoryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteCategory, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
