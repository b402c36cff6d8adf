package reminder

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"streakhub/config"
	"streakhub/infras/otel"
	goalModel "streakhub/internal/domains/goal/model"
	goalRepository "streakhub/internal/domains/goal/repository"
	notificationModel "streakhub/internal/domains/notification/model"
	notificationDto "streakhub/internal/domains/notification/model/dto"
	notificationRepository "streakhub/internal/domains/notification/repository"
	userModel "streakhub/internal/domains/user/model"
	userRepository "streakhub/internal/domains/user/repository"
	"streakhub/internal/events"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Job scans once per day for goals that were not completed yesterday and
// notifies each affected owner. Delivery failures are logged per recipient
// and never abort the batch.
type Job struct {
	cfg              *config.Config
	goalRepo         goalRepository.Goal
	userRepo         userRepository.User
	notificationRepo notificationRepository.Notification
	publisher        events.Publisher
	otel             otel.Otel

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(
	cfg *config.Config,
	goalRepo goalRepository.Goal,
	userRepo userRepository.User,
	notificationRepo notificationRepository.Notification,
	publisher events.Publisher,
	otel otel.Otel,
) *Job {
	ctx, cancel := context.WithCancel(context.Background())

	return &Job{
		cfg:              cfg,
		goalRepo:         goalRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		otel:             otel,
		ctx:              ctx,
		cancel:           cancel,
	}
}

// Start launches the daily trigger goroutine. It is a no-op when the job is
// disabled by configuration.
func (j *Job) Start() {
	if !j.cfg.Reminder.Enable {
		log.Info().Msg("reminder job is disabled")

		return
	}

	j.wg.Add(1)

	go func() {
		defer j.wg.Done()

		log.Info().
			Int("hour", j.cfg.Reminder.Hour).
			Int("minute", j.cfg.Reminder.Minute).
			Msg("reminder job started")

		for {
			timer := time.NewTimer(j.untilNextRun(timezone.Now()))

			select {
			case <-j.ctx.Done():
				timer.Stop()

				return
			case <-timer.C:
				if err := j.Run(j.ctx); err != nil {
					log.Error().Err(err).Msg("reminder run failed")
				}
			}
		}
	}()
}

// Stop cancels the trigger goroutine and waits for an in-flight run.
func (j *Job) Stop() {
	j.cancel()
	j.wg.Wait()

	log.Info().Msg("reminder job stopped")
}

// untilNextRun returns the duration from now to the next configured
// wall-clock trigger in the application timezone.
func (j *Job) untilNextRun(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), j.cfg.Reminder.Hour, j.cfg.Reminder.Minute, 0, 0, timezone.GetLocation())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next.Sub(now)
}

// Run executes a single reminder sweep. Yesterday is computed relative to
// the run time; active goals with no progress dated yesterday are grouped
// by owner, and each owner receives one notification listing the missed
// goal titles.
func (j *Job) Run(ctx context.Context) (err error) {
	ctx, scope := j.otel.NewScope(ctx, constant.OtelReminderScopeName, constant.OtelReminderScopeName+".Run")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	yesterday := timezone.StartOfDay(now).AddDate(0, 0, -1)

	goals, err := j.activeGoals(ctx, yesterday)
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		return nil
	}

	completed, err := j.completedGoalIDs(ctx, goals, yesterday)
	if err != nil {
		return err
	}

	missedByUser := make(map[string][]string)

	for _, goal := range goals {
		if completed[goal.ID] {
			continue
		}

		missedByUser[goal.UserID] = append(missedByUser[goal.UserID], goal.Title)
	}

	if len(missedByUser) == 0 {
		log.Info().Msg("reminder sweep found no missed goals")

		return nil
	}

	users, err := j.usersByID(ctx, missedByUser)
	if err != nil {
		return err
	}

	for userID, titles := range missedByUser {
		j.notifyUser(ctx, userID, users[userID], titles, now)
	}

	log.Info().Int("users", len(missedByUser)).Msg("reminder sweep finished")

	return nil
}

// activeGoals fetches active goals that existed before yesterday ended. A
// goal created today cannot have been completed yesterday and is skipped
// rather than reported as missed.
func (j *Job) activeGoals(ctx context.Context, yesterday time.Time) ([]goalModel.Goal, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    goalModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    goalModel.TableName,
			},
			gDto.Filter{
				Field:    constant.FieldCreatedAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    yesterday.AddDate(0, 0, 1),
				Table:    goalModel.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	goals, err := j.goalRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active goals")

		return nil, fmt.Errorf("failed to get active goals: %w", err)
	}

	return goals, nil
}

// completedGoalIDs returns the set of goal IDs with a progress row dated
// yesterday.
func (j *Job) completedGoalIDs(ctx context.Context, goals []goalModel.Goal, yesterday time.Time) (map[string]bool, error) {
	goalIDs := make([]string, len(goals))
	for i, goal := range goals {
		goalIDs[i] = goal.ID
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    goalModel.ProgressFieldGoalID,
				Operator: gDto.FilterOperatorIn,
				Value:    goalIDs,
				Table:    goalModel.ProgressTableName,
			},
			gDto.Filter{
				Field:    goalModel.ProgressFieldCompletedDate,
				Operator: gDto.FilterOperatorEq,
				Value:    yesterday,
				Table:    goalModel.ProgressTableName,
			},
		},
	}

	rows, err := j.goalRepo.GetAllProgress(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get yesterday progress")

		return nil, fmt.Errorf("failed to get yesterday progress: %w", err)
	}

	completed := make(map[string]bool, len(rows))
	for _, row := range rows {
		completed[row.GoalID] = true
	}

	return completed, nil
}

func (j *Job) usersByID(ctx context.Context, missedByUser map[string][]string) (map[string]userModel.User, error) {
	userIDs := make([]string, 0, len(missedByUser))
	for userID := range missedByUser {
		userIDs = append(userIDs, userID)
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    userIDs,
				Table:    userModel.TableName,
			},
		},
	}

	models, err := j.userRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reminder recipients")

		return nil, fmt.Errorf("failed to get reminder recipients: %w", err)
	}

	users := make(map[string]userModel.User, len(models))
	for _, user := range models {
		users[user.ID] = user
	}

	return users, nil
}

// notifyUser stores the notification and publishes the reminder event. A
// failure for one recipient is logged and swallowed so the rest of the
// batch still runs.
func (j *Job) notifyUser(ctx context.Context, userID string, user userModel.User, titles []string, now time.Time) {
	message := fmt.Sprintf("You missed %d goal(s) yesterday: %s", len(titles), strings.Join(titles, ", "))

	notification := notificationDto.NewNotification(userID, notificationModel.KindStreakReminder, message)

	if err := j.notificationRepo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to store reminder notification")

		return
	}

	event := events.ReminderEvent{
		UserID:      userID,
		Email:       user.Email,
		GoalTitles:  titles,
		GeneratedAt: now,
	}

	if err := j.publisher.PublishReminder(ctx, event); err != nil {
		log.Warn().Err(err).Str("user_id", userID).Msg("failed to publish reminder event")
	}
}
