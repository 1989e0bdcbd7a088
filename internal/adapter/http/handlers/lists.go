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

type ListHandler struct {
	listService ports.ListService
}

func NewListHandler(listService ports.ListService) *ListHandler {
	return &ListHandler{listService: listService}
}

func (h *ListHandler) ListLists(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	lists, err := h.listService.ListLists(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to list lists", zap.Uint64("owner_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListLists, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToListItems(lists))
}

func (h *ListHandler) GetList(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || listID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListID, lang),
		)
		return
	}

	list, err := h.listService.GetList(c.Request.Context(), identity.UserID, listID)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgListNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get list", zap.Uint64("list_id", listID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListLists, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToListDetail(list))
}

func (h *ListHandler) CreateList(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	var req dto.CreateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateListInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	list, err := h.listService.CreateList(c.Request.Context(), identity.UserID, input)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateListName) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateListName, lang),
			)
			return
		}

		zap.L().Error("failed to create list", zap.Uint64("owner_id", identity.UserID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateList, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToListItem(list))
}

func (h *ListHandler) UpdateList(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || listID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListID, lang),
		)
		return
	}

	var req dto.UpdateListRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateListInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListPayload, lang),
		)
		return
	}

	list, err := h.listService.UpdateList(c.Request.Context(), identity.UserID, listID, input)
	if err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgListNotFound, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrDuplicateListName) {
			c.JSON(
				http.StatusConflict,
				apierrors.CreateError(http.StatusConflict, apierrors.MsgDuplicateListName, lang),
			)
			return
		}

		zap.L().Error("failed to update list", zap.Uint64("list_id", listID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateList, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToListItem(list))
}

func (h *ListHandler) DeleteList(c *gin.Context) {
	lang := middleware.GetLang(c)
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
		return
	}

	listID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || listID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidListID, lang),
		)
		return
	}

	if err := h.listService.DeleteList(c.Request.Context(), identity.UserID, listID); err != nil {
		if errors.Is(err, domain.ErrListNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgListNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete list", zap.Uint64("list_id", listID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteList, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
