package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"streakhub/config"
	"streakhub/infras/otel/mocks"
	todoMocks "streakhub/internal/domains/todo/mocks"
	"streakhub/internal/domains/todo/model"
	"streakhub/internal/domains/todo/model/dto"
	"streakhub/internal/domains/todo/service"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/failure"
	gModel "streakhub/shared/model"
	"streakhub/shared/timezone"
)

const testUserID = "test-user-id"

func newService(t *testing.T) (service.Todo, *todoMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	return service.New(mockRepo, cfg, mockOtel), mockRepo
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)
}

func TestTodoService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newService(t)

		req := dto.CreateTodoRequest{
			Title:       "Write report",
			Description: "Quarterly report",
		}

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, todo model.Todo) error {
				assert.Equal(t, testUserID, todo.UserID)
				assert.Equal(t, constant.PriorityMedium, todo.Priority)
				assert.False(t, todo.Completed)

				return nil
			})

		res, err := svc.Create(userContext(), req)
		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, req.Title, res.Title)
		assert.False(t, res.Completed)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(userContext(), dto.CreateTodoRequest{Title: "x"})
		assert.Error(t, err)
	})
}

func TestTodoService_GetAll(t *testing.T) {
	t.Run("appends owner filter", func(t *testing.T) {
		svc, mockRepo := newService(t)

		todos := []model.Todo{
			{
				ID:     "todo-1",
				UserID: testUserID,
				Title:  "First",
				Metadata: gModel.Metadata{
					CreatedAt:  timezone.Now(),
					ModifiedAt: timezone.Now(),
				},
			},
		}

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				last, ok := filter.Filters[len(filter.Filters)-1].(gDto.Filter)
				assert.True(t, ok)
				assert.Equal(t, model.FieldUserID, last.Field)
				assert.Equal(t, testUserID, last.Value)

				return 1, nil
			})
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(todos, nil)

		res, err := svc.GetAll(userContext(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})
		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Todos, 1)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("database error"))

		_, err := svc.GetAll(userContext(), gDto.QueryParams{}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestTodoService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Todo{ID: "todo-1", UserID: testUserID, Title: "First"}, nil)

		res, err := svc.Get(userContext(), "todo-1")
		assert.NoError(t, err)
		assert.Equal(t, "todo-1", res.ID)
	})

	t.Run("not owned reads as not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Todo{}, nil)

		_, err := svc.Get(userContext(), "someone-elses-todo")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}

func TestTodoService_Update(t *testing.T) {
	completed := true
	uncompleted := false

	t.Run("empty update is rejected", func(t *testing.T) {
		svc, _ := newService(t)

		err := svc.Update(userContext(), dto.UpdateTodoRequest{}, "todo-1")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 400))
	})

	t.Run("completing stamps completed_at", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.NotNil(t, fields[model.FieldCompletedAt])

				return nil
			})

		err := svc.Update(userContext(), dto.UpdateTodoRequest{Completed: &completed}, "todo-1")
		assert.NoError(t, err)
	})

	t.Run("uncompleting clears completed_at", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				value, present := fields[model.FieldCompletedAt]
				assert.True(t, present)
				assert.Nil(t, value)

				return nil
			})

		err := svc.Update(userContext(), dto.UpdateTodoRequest{Completed: &uncompleted}, "todo-1")
		assert.NoError(t, err)
	})

	t.Run("missing todo", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(userContext(), dto.UpdateTodoRequest{Completed: &completed}, "missing")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}

func TestTodoService_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(userContext(), "todo-1")
		assert.NoError(t, err)
	})

	t.Run("missing todo", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(userContext(), "missing")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}
