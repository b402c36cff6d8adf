package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	"streakhub/internal/domains/analytics/model/dto"
	"streakhub/internal/domains/analytics/streak"
	goalModel "streakhub/internal/domains/goal/model"
	goalRepo "streakhub/internal/domains/goal/repository"
	todoModel "streakhub/internal/domains/todo/model"
	todoRepo "streakhub/internal/domains/todo/repository"
	"streakhub/shared"
	"streakhub/shared/cache"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyStreak = "analytics:streak"

	trailingWeekDays = 7
)

type Analytics interface {
	GetStreak(ctx context.Context) (dto.StreakResponse, error)
	GetAnalytics(ctx context.Context) (dto.AnalyticsResponse, error)
}

type serviceImpl struct {
	todoRepo todoRepo.Todo
	goalRepo goalRepo.Goal
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(todoRepo todoRepo.Todo, goalRepo goalRepo.Goal, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		todoRepo: todoRepo,
		goalRepo: goalRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// GetStreak computes the caller's trailing completion streak across todos
// and goal progress. The result only changes when the user completes
// something or the date rolls over, so it is cached per user per day.
func (s *serviceImpl) GetStreak(ctx context.Context) (res dto.StreakResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStreak")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	today := timezone.Today()

	cacheKey := shared.BuildCacheKey(cacheKeyStreak, userID, today.Format(constant.DayFormat))
	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		return res, nil
	}

	completions, err := s.collectCompletions(ctx, userID)
	if err != nil {
		return res, err
	}

	res.Streak = streak.Trailing(today, completions)
	res.Date = today.Format(constant.DayFormat)

	if cacheErr := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to cache streak")
	}

	return res, nil
}

func (s *serviceImpl) GetAnalytics(ctx context.Context) (res dto.AnalyticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAnalytics")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	completions, err := s.collectCompletions(ctx, userID)
	if err != nil {
		return res, err
	}

	res.FromSeries(streak.PerDay(timezone.Today(), completions, trailingWeekDays))

	ownerFilter := shared.FilterByOwner(userID, todoModel.FieldUserID, todoModel.TableName)

	res.TotalTodos, err = s.todoRepo.Count(ctx, ownerFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	completedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    todoModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    todoModel.TableName,
			},
			gDto.Filter{
				Field:    todoModel.FieldCompleted,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    todoModel.TableName,
			},
		},
	}

	res.CompletedTodos, err = s.todoRepo.Count(ctx, completedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count completed todos")

		return res, fmt.Errorf("failed to count completed todos: %w", err)
	}

	activeGoalsFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    goalModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    goalModel.TableName,
			},
			gDto.Filter{
				Field:    goalModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    goalModel.TableName,
			},
		},
	}

	res.ActiveGoals, err = s.goalRepo.Count(ctx, activeGoalsFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count active goals")

		return res, fmt.Errorf("failed to count active goals: %w", err)
	}

	return res, nil
}

// collectCompletions merges todo completion timestamps with goal progress
// dates for the user.
func (s *serviceImpl) collectCompletions(ctx context.Context, userID string) ([]time.Time, error) {
	completedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    todoModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    todoModel.TableName,
			},
			gDto.Filter{
				Field:    todoModel.FieldCompleted,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    todoModel.TableName,
			},
		},
	}

	todos, err := s.todoRepo.GetAll(ctx, gDto.QueryParams{}, completedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get completed todos")

		return nil, fmt.Errorf("failed to get completed todos: %w", err)
	}

	completions := make([]time.Time, 0, len(todos))

	for _, todo := range todos {
		if todo.CompletedAt != nil {
			completions = append(completions, *todo.CompletedAt)
		}
	}

	progressFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    goalModel.ProgressFieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    goalModel.ProgressTableName,
			},
		},
	}

	progress, err := s.goalRepo.GetAllProgress(ctx, progressFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get goal progress")

		return nil, fmt.Errorf("failed to get goal progress: %w", err)
	}

	for _, record := range progress {
		completions = append(completions, record.CompletedDate)
	}

	return completions, nil
}
