package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"streakhub/config"
	"streakhub/infras/otel/mocks"
	goalMocks "streakhub/internal/domains/goal/mocks"
	goalModel "streakhub/internal/domains/goal/model"
	userMocks "streakhub/internal/domains/user/mocks"
	userModel "streakhub/internal/domains/user/model"
	wsMocks "streakhub/internal/domains/workspace/mocks"
	"streakhub/internal/domains/workspace/model"
	"streakhub/internal/domains/workspace/model/dto"
	"streakhub/internal/domains/workspace/service"
	"streakhub/internal/events"
	eventMocks "streakhub/internal/events/mocks"
	"streakhub/shared/constant"
	"streakhub/shared/failure"
)

const testUserID = "test-user-id"

type serviceMocks struct {
	repo      *wsMocks.MockWorkspace
	userRepo  *userMocks.MockUser
	goalRepo  *goalMocks.MockGoal
	publisher *eventMocks.MockPublisher
}

func newService(t *testing.T) (service.Workspace, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:      wsMocks.NewMockWorkspace(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		goalRepo:  goalMocks.NewMockGoal(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	svc := service.New(m.repo, m.userRepo, m.goalRepo, cfg, mocks.NewOtel(), m.publisher)

	return svc, m
}

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)
}

func TestNewInviteCode(t *testing.T) {
	code := service.NewInviteCode()
	assert.Len(t, code, constant.InviteCodeLength)
	assert.NotEqual(t, code, service.NewInviteCode())
}

func TestWorkspaceService_Create(t *testing.T) {
	t.Run("creator becomes the owner member", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, workspace model.Workspace, owner model.WorkspaceMember) error {
				assert.Equal(t, testUserID, workspace.OwnerID)
				assert.Len(t, workspace.InviteCode, constant.InviteCodeLength)
				assert.Equal(t, workspace.ID, owner.WorkspaceID)
				assert.Equal(t, constant.WorkspaceRoleOwner, owner.Role)

				return nil
			})

		res, err := svc.Create(userContext(), dto.CreateWorkspaceRequest{Name: "Study group"})
		assert.NoError(t, err)
		assert.Equal(t, "Study group", res.Name)
		assert.NotEmpty(t, res.InviteCode)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := svc.Create(userContext(), dto.CreateWorkspaceRequest{Name: "x"})
		assert.Error(t, err)
	})
}

func TestWorkspaceService_Join(t *testing.T) {
	workspace := model.Workspace{ID: "ws-1", Name: "Study group", InviteCode: "abc12345"}

	t.Run("successful join", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workspace, nil)
		m.repo.EXPECT().
			InsertMember(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, member model.WorkspaceMember) error {
				assert.Equal(t, workspace.ID, member.WorkspaceID)
				assert.Equal(t, testUserID, member.UserID)
				assert.Equal(t, constant.WorkspaceRoleMember, member.Role)

				return nil
			})
		m.publisher.EXPECT().
			PublishActivity(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event events.ActivityEvent) error {
				assert.Equal(t, events.TypeWorkspaceJoined, event.Type)

				return nil
			})

		res, err := svc.Join(userContext(), dto.JoinWorkspaceRequest{InviteCode: "abc12345"})
		assert.NoError(t, err)
		assert.Equal(t, workspace.ID, res.WorkspaceID)
		assert.Equal(t, constant.WorkspaceRoleMember, res.Role)
	})

	t.Run("unknown invite code conflicts", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Workspace{}, nil)

		_, err := svc.Join(userContext(), dto.JoinWorkspaceRequest{InviteCode: "nope1234"})
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 409))
	})

	t.Run("joining twice conflicts", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workspace, nil)
		m.repo.EXPECT().
			InsertMember(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		_, err := svc.Join(userContext(), dto.JoinWorkspaceRequest{InviteCode: "abc12345"})
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 409))
	})

	t.Run("publish failure does not fail the join", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(workspace, nil)
		m.repo.EXPECT().InsertMember(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().
			PublishActivity(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		res, err := svc.Join(userContext(), dto.JoinWorkspaceRequest{InviteCode: "abc12345"})
		assert.NoError(t, err)
		assert.Equal(t, workspace.ID, res.WorkspaceID)
	})
}

func TestWorkspaceService_GetMembers(t *testing.T) {
	t.Run("non-members are forbidden", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.GetMembers(userContext(), "ws-1")
		assert.Error(t, err)
		assert.ErrorIs(t, err, failure.NotWorkspaceMember)
	})

	t.Run("lists members with their user records", func(t *testing.T) {
		svc, m := newService(t)

		members := []model.WorkspaceMember{
			{WorkspaceID: "ws-1", UserID: testUserID, Role: constant.WorkspaceRoleOwner},
			{WorkspaceID: "ws-1", UserID: "user-2", Role: constant.WorkspaceRoleMember},
		}
		users := []userModel.User{
			{ID: testUserID, Username: "alice"},
			{ID: "user-2", Username: "bob"},
		}

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().GetMembers(gomock.Any(), gomock.Any()).Return(members, nil)
		m.userRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)

		res, err := svc.GetMembers(userContext(), "ws-1")
		assert.NoError(t, err)
		assert.Len(t, res.Members, 2)
	})
}

func TestWorkspaceService_AttachGoal(t *testing.T) {
	t.Run("attaches an owned goal", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(true, nil)
		m.goalRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().
			InsertGoal(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, link model.WorkspaceGoal) error {
				assert.Equal(t, "ws-1", link.WorkspaceID)
				assert.Equal(t, "goal-1", link.GoalID)

				return nil
			})

		err := svc.AttachGoal(userContext(), dto.AttachGoalRequest{GoalID: "goal-1"}, "ws-1")
		assert.NoError(t, err)
	})

	t.Run("unowned goal reads as not found", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(true, nil)
		m.goalRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.AttachGoal(userContext(), dto.AttachGoalRequest{GoalID: "goal-1"}, "ws-1")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 404))
	})

	t.Run("attaching twice conflicts", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(true, nil)
		m.goalRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().
			InsertGoal(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: "23505"})

		err := svc.AttachGoal(userContext(), dto.AttachGoalRequest{GoalID: "goal-1"}, "ws-1")
		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, 409))
	})
}

func TestWorkspaceService_GetGoals(t *testing.T) {
	t.Run("resolves attached goals", func(t *testing.T) {
		svc, m := newService(t)

		links := []model.WorkspaceGoal{{WorkspaceID: "ws-1", GoalID: "goal-1"}}
		goals := []goalModel.Goal{{ID: "goal-1", Title: "Morning run"}}

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().GetGoals(gomock.Any(), gomock.Any()).Return(links, nil)
		m.goalRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(goals, nil)

		res, err := svc.GetGoals(userContext(), "ws-1")
		assert.NoError(t, err)
		assert.Len(t, res.Goals, 1)
	})

	t.Run("empty workspace returns an empty list", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().MemberExists(gomock.Any(), gomock.Any()).Return(true, nil)
		m.repo.EXPECT().GetGoals(gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := svc.GetGoals(userContext(), "ws-1")
		assert.NoError(t, err)
		assert.Empty(t, res.Goals)
	})
}
