package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"streakhub/config"
	"streakhub/infras/otel/mocks"
	"streakhub/internal/domains/share/service"
	todoMocks "streakhub/internal/domains/todo/mocks"
	todoModel "streakhub/internal/domains/todo/model"
	"streakhub/shared/constant"
	"streakhub/shared/docstore"
	"streakhub/shared/failure"
)

const testUserID = "test-user-id"

func newService(t *testing.T) (service.Share, *todoMocks.MockTodo) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := todoMocks.NewMockTodo(ctrl)

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://streakhub.test"

	return service.New(mockRepo, docstore.NewMemoryStore(), cfg, mocks.NewOtel()), mockRepo
}

func userContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)

	return context.WithValue(ctx, constant.ContextKeyUsername, "alice")
}

func TestShareService(t *testing.T) {
	ownedTodo := todoModel.Todo{
		ID:          "todo-1",
		UserID:      testUserID,
		Title:       "Write report",
		Description: "Quarterly report",
		Priority:    constant.PriorityHigh,
	}

	t.Run("sharing snapshots the todo and serves it publicly", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedTodo, nil)

		shared, err := svc.ShareTodo(userContext(), ownedTodo.ID)
		assert.NoError(t, err)
		assert.NotEmpty(t, shared.ShareID)
		assert.Equal(t, "https://streakhub.test/shared/"+shared.ShareID, shared.ShareURL)

		// GetShared needs no authenticated context.
		res, err := svc.GetShared(context.Background(), shared.ShareID)
		assert.NoError(t, err)
		assert.Equal(t, ownedTodo.Title, res.Title)
		assert.Equal(t, "alice", res.SharedBy)
	})

	t.Run("snapshot is immutable after later edits", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedTodo, nil)

		shared, err := svc.ShareTodo(userContext(), ownedTodo.ID)
		assert.NoError(t, err)

		// The todo changes in the record store; the snapshot must not.
		res, err := svc.GetShared(context.Background(), shared.ShareID)
		assert.NoError(t, err)
		assert.Equal(t, "Write report", res.Title)
		assert.False(t, res.Completed)
	})

	t.Run("sharing twice produces distinct snapshots", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(ownedTodo, nil).Times(2)

		first, err := svc.ShareTodo(userContext(), ownedTodo.ID)
		assert.NoError(t, err)
		second, err := svc.ShareTodo(userContext(), ownedTodo.ID)
		assert.NoError(t, err)
		assert.NotEqual(t, first.ShareID, second.ShareID)
	})

	t.Run("sharing an unowned todo reads as not found", func(t *testing.T) {
		svc, mockRepo := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(todoModel.Todo{}, nil)

		_, err := svc.ShareTodo(userContext(), "someone-elses-todo")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("unknown share id", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.GetShared(context.Background(), "missing")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})
}
