package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"streakhub/config"
	"streakhub/infras/otel/mocks"
	goalMocks "streakhub/internal/domains/goal/mocks"
	goalModel "streakhub/internal/domains/goal/model"
	notificationMocks "streakhub/internal/domains/notification/mocks"
	notificationModel "streakhub/internal/domains/notification/model"
	userMocks "streakhub/internal/domains/user/mocks"
	userModel "streakhub/internal/domains/user/model"
	"streakhub/internal/events"
	eventMocks "streakhub/internal/events/mocks"
	"streakhub/internal/reminder"
)

type jobMocks struct {
	goalRepo         *goalMocks.MockGoal
	userRepo         *userMocks.MockUser
	notificationRepo *notificationMocks.MockNotification
	publisher        *eventMocks.MockPublisher
}

func newJob(t *testing.T) (*reminder.Job, jobMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := jobMocks{
		goalRepo:         goalMocks.NewMockGoal(ctrl),
		userRepo:         userMocks.NewMockUser(ctrl),
		notificationRepo: notificationMocks.NewMockNotification(ctrl),
		publisher:        eventMocks.NewMockPublisher(ctrl),
	}

	cfg := &config.Config{}
	cfg.Reminder.Hour = 9

	job := reminder.New(cfg, m.goalRepo, m.userRepo, m.notificationRepo, m.publisher, mocks.NewOtel())

	return job, m
}

func TestReminderRun(t *testing.T) {
	t.Run("no active goals is a no-op", func(t *testing.T) {
		job, m := newJob(t)

		m.goalRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		assert.NoError(t, job.Run(context.Background()))
	})

	t.Run("all goals completed yesterday sends nothing", func(t *testing.T) {
		job, m := newJob(t)

		goals := []goalModel.Goal{{ID: "goal-1", UserID: "user-1", Title: "Morning run"}}
		progress := []goalModel.GoalProgress{{GoalID: "goal-1"}}

		m.goalRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(goals, nil)
		m.goalRepo.EXPECT().GetAllProgress(gomock.Any(), gomock.Any()).Return(progress, nil)

		assert.NoError(t, job.Run(context.Background()))
	})

	t.Run("missed goals are grouped per owner", func(t *testing.T) {
		job, m := newJob(t)

		goals := []goalModel.Goal{
			{ID: "goal-1", UserID: "user-1", Title: "Morning run"},
			{ID: "goal-2", UserID: "user-1", Title: "Read a chapter"},
			{ID: "goal-3", UserID: "user-2", Title: "Meditate"},
		}
		progress := []goalModel.GoalProgress{{GoalID: "goal-3"}}
		users := []userModel.User{
			{ID: "user-1", Username: "alice", Email: "alice@example.com"},
		}

		m.goalRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(goals, nil)
		m.goalRepo.EXPECT().GetAllProgress(gomock.Any(), gomock.Any()).Return(progress, nil)
		m.userRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)

		m.notificationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, notification notificationModel.Notification) error {
				assert.Equal(t, "user-1", notification.UserID)
				assert.Equal(t, notificationModel.KindStreakReminder, notification.Kind)
				assert.Contains(t, notification.Message, "Morning run")
				assert.Contains(t, notification.Message, "Read a chapter")
				assert.False(t, notification.Read)

				return nil
			})
		m.publisher.EXPECT().
			PublishReminder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event events.ReminderEvent) error {
				assert.Equal(t, "user-1", event.UserID)
				assert.Equal(t, "alice@example.com", event.Email)
				assert.Len(t, event.GoalTitles, 2)

				return nil
			})

		assert.NoError(t, job.Run(context.Background()))
	})

	t.Run("one failing recipient does not abort the batch", func(t *testing.T) {
		job, m := newJob(t)

		goals := []goalModel.Goal{
			{ID: "goal-1", UserID: "user-1", Title: "Morning run"},
			{ID: "goal-2", UserID: "user-2", Title: "Meditate"},
		}
		users := []userModel.User{
			{ID: "user-1", Email: "alice@example.com"},
			{ID: "user-2", Email: "bob@example.com"},
		}

		m.goalRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(goals, nil)
		m.goalRepo.EXPECT().GetAllProgress(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.userRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)

		m.notificationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))
		m.notificationRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		m.publisher.EXPECT().PublishReminder(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, job.Run(context.Background()))
	})

	t.Run("publish failure does not fail the run", func(t *testing.T) {
		job, m := newJob(t)

		goals := []goalModel.Goal{{ID: "goal-1", UserID: "user-1", Title: "Morning run"}}
		users := []userModel.User{{ID: "user-1", Email: "alice@example.com"}}

		m.goalRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(goals, nil)
		m.goalRepo.EXPECT().GetAllProgress(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.userRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(users, nil)
		m.notificationRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		m.publisher.EXPECT().
			PublishReminder(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		assert.NoError(t, job.Run(context.Background()))
	})

	t.Run("goal lookup failure surfaces", func(t *testing.T) {
		job, m := newJob(t)

		m.goalRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		assert.Error(t, job.Run(context.Background()))
	})
}

func TestReminderStartDisabled(t *testing.T) {
	job, _ := newJob(t)

	// Enable defaults to false; Start must return without scheduling and Stop
	// must not block.
	job.Start()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked for a disabled job")
	}
}
