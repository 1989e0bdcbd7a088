package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/dto"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/handlers"
	"github.com/LuisM11/TaskMaster/internal/core/domain"
	"github.com/LuisM11/TaskMaster/pkg/apierrors"
	"github.com/LuisM11/TaskMaster/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) CompleteTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	dueDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 13, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 3, 13, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testUserID, domain.TaskFilter{}).Return(
		[]domain.Task{
			{
				ID:          7,
				OwnerID:     testUserID,
				Title:       "Buy milk",
				Description: "two liters",
				Status:      domain.TaskStatusPending,
				Priority:    domain.TaskPriorityHigh,
				DueDate:     &dueDate,
				CreatedAt:   createdAt,
				UpdatedAt:   updatedAt,
				List:        &domain.List{ID: 3, Name: "Home"},
				Categories:  []domain.Category{{ID: 5, Name: "Errands", Slug: "errands"}},
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodGet, "/api/tasks", handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)

	require.Equal(t, uint64(7), got[0].ID)
	require.Equal(t, "Buy milk", got[0].Title)
	require.Equal(t, "two liters", got[0].Description)
	require.Equal(t, "PENDING", got[0].Status)
	require.Equal(t, 3, got[0].Priority)
	require.Equal(t, "2026-03-20", *got[0].DueDate)
	require.Equal(t, "2026-03-13T10:20:30Z", got[0].CreatedAt)
	require.Equal(t, "2026-03-13T11:20:30Z", got[0].UpdatedAt)
	require.NotNil(t, got[0].List)
	require.Equal(t, uint64(3), got[0].List.ID)
	require.Equal(t, "Home", got[0].List.Name)
	require.Len(t, got[0].Categories, 1)
	require.Equal(t, "Errands", got[0].Categories[0].Name)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_PriorityFilterReachesService(t *testing.T) {
	priority := 3
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testUserID, domain.TaskFilter{Priority: &priority}).
		Return([]domain.Task{}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodGet, "/api/tasks", handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?priority=3", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_UnknownStatusIsNotAnError(t *testing.T) {
	status := domain.TaskStatus("BOGUS")
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testUserID, domain.TaskFilter{Status: &status}).
		Return([]domain.Task{}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodGet, "/api/tasks", handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?status=BOGUS", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, testUserID, domain.TaskFilter{}).
		Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodGet, "/api/tasks", handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Failed to list tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, testUserID, uint64(999)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodGet, "/api/tasks/:id", handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodGet, "/api/tasks/:id", handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/abc", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	createdAt := time.Date(2026, 3, 13, 10, 20, 30, 0, time.UTC)
	listID := uint64(3)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, testUserID, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Buy milk" &&
			input.ListID != nil && *input.ListID == listID &&
			input.Priority == domain.TaskPriorityHigh
	})).Return(
		domain.Task{
			ID:        1,
			OwnerID:   testUserID,
			Title:     "Buy milk",
			Status:    domain.TaskStatusPending,
			Priority:  domain.TaskPriorityHigh,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
			List:      &domain.List{ID: listID, Name: "Home"},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPost, "/api/tasks", handler.CreateTask)

	body := `{"title":"Buy milk","list_id":3,"priority":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "Buy milk", got.Title)
	require.Equal(t, "PENDING", got.Status)
	require.NotNil(t, got.List)
	require.Equal(t, "Home", got.List.Name)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPost, "/api/tasks", handler.CreateTask)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(`{"priority":2}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_CreateTask_RejectsUnknownStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPost, "/api/tasks", handler.CreateTask)

	body := `{"title":"Buy milk","status":"DONEISH"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_CreateTask_ForeignListReadsAsNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, testUserID, mock.Anything).
		Return(domain.Task{}, domain.ErrListNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPost, "/api/tasks", handler.CreateTask)

	body := `{"title":"Buy milk","list_id":77}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "List not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_NullTitleRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPatch, "/api/tasks/:id", handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1", strings.NewReader(`{"title":null}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskHandler_UpdateTask_ClearsDueDate(t *testing.T) {
	createdAt := time.Date(2026, 3, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, testUserID, uint64(1), mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.DueDateSet && input.DueDate == nil
	})).Return(
		domain.Task{
			ID:        1,
			OwnerID:   testUserID,
			Title:     "Buy milk",
			Status:    domain.TaskStatusPending,
			Priority:  domain.TaskPriorityMedium,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPatch, "/api/tasks/:id", handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPatch, "/api/tasks/1", strings.NewReader(`{"due_date":null}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NoContent(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, testUserID, uint64(1)).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodDelete, "/api/tasks/:id", handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_Success(t *testing.T) {
	completedAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CompleteTask", mock.Anything, testUserID, uint64(1)).Return(
		domain.Task{
			ID:          1,
			OwnerID:     testUserID,
			Title:       "Buy milk",
			Status:      domain.TaskStatusCompleted,
			Priority:    domain.TaskPriorityMedium,
			CompletedAt: &completedAt,
			CreatedAt:   createdAt,
			UpdatedAt:   completedAt,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPost, "/api/tasks/:id/complete", handler.CompleteTask)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/1/complete", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "COMPLETED", got.Status)
	require.NotNil(t, got.CompletedAt)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CompleteTask", mock.Anything, testUserID, uint64(999)).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := testRouter(http.MethodPost, "/api/tasks/:id/complete", handler.CompleteTask)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/999/complete", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
