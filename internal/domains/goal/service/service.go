package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	"streakhub/internal/domains/goal/model"
	"streakhub/internal/domains/goal/model/dto"
	"streakhub/internal/domains/goal/repository"
	"streakhub/internal/events"
	"streakhub/shared"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/failure"
	gRepo "streakhub/shared/repository"
	"streakhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Goal interface {
	Create(ctx context.Context, req dto.CreateGoalRequest) (dto.GoalResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetGoalsResponse, error)
	Get(ctx context.Context, id string) (dto.GoalResponse, error)
	Update(ctx context.Context, req dto.UpdateGoalRequest, id string) error
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, req dto.CompleteGoalRequest, id string) (dto.CompleteGoalResponse, error)
	IncrementProgress(ctx context.Context, id string) (dto.IncrementProgressResponse, error)
	GetProgress(ctx context.Context, id string) (dto.GetGoalProgressResponse, error)
}

type serviceImpl struct {
	repo      repository.Goal
	cfg       *config.Config
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Goal, cfg *config.Config, otel otel.Otel, publisher events.Publisher) Goal {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGoalRequest) (res dto.GoalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.GoalType == constant.GoalTypeCounter && req.Target == 0 {
		return res, failure.BadRequestFromString("counter goals require a target") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	goal := req.ToModel(userID)

	if err = s.repo.Insert(ctx, goal); err != nil {
		log.Error().Err(err).Msg("failed to create goal")

		return res, fmt.Errorf("failed to create goal: %w", err)
	}

	res.FromModel(goal)

	return res, nil
}

// GetAll lists the caller's active goals.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetGoalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    model.TableName,
			},
		},
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count goals")

		return res, fmt.Errorf("failed to count goals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get goals")

		return res, fmt.Errorf("failed to get goals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GoalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	goal, err := s.getOwnedGoal(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(goal)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGoalRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.getOwnedGoal(ctx, id); err != nil {
		return err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	updatedFields := shared.TransformFields(req, userID)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update goal")

		return fmt.Errorf("failed to update goal: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwnedGoal(ctx, id); err != nil {
		return err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete goal")

		return fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil
}

// Complete marks the goal done for today. The progress insert and the streak
// update run in one transaction; completing twice on the same day conflicts
// on the progress table's unique index and leaves the goal untouched.
func (s *serviceImpl) Complete(ctx context.Context, req dto.CompleteGoalRequest, id string) (res dto.CompleteGoalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	goal, err := s.getOwnedGoal(ctx, id)
	if err != nil {
		return res, err
	}

	if goal.GoalType != constant.GoalTypeStreak {
		return res, failure.BadRequestFromString("only streak goals can be completed") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	now := timezone.Now()
	today := timezone.StartOfDay(now)
	yesterday := today.AddDate(0, 0, -1)

	newStreak := 1
	if goal.LastCompleted != nil && goal.LastCompleted.Format(constant.DayFormat) == yesterday.Format(constant.DayFormat) {
		newStreak = goal.CurrentStreak + 1
	}

	bestStreak := max(goal.BestStreak, newStreak)

	progress := req.ToProgressModel(goal.ID, userID, today)

	goalUpdate := map[string]any{
		model.FieldCurrentStreak: newStreak,
		model.FieldBestStreak:    bestStreak,
		model.FieldLastCompleted: today,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: userID,
	}

	goalFilter := shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	if err = s.repo.Complete(ctx, progress, goalUpdate, goalFilter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("already completed today") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to complete goal")

		return res, fmt.Errorf("failed to complete goal: %w", err)
	}

	if publishErr := s.publisher.PublishActivity(ctx, events.ActivityEvent{
		Type:      events.TypeGoalCompleted,
		UserID:    userID,
		SubjectID: goal.ID,
		Subject:   goal.Title,
	}); publishErr != nil {
		log.Warn().Err(publishErr).Msg("failed to publish goal completion event")
	}

	res.NewStreak = newStreak
	res.BestStreak = bestStreak
	res.BestBeaten = newStreak == bestStreak && newStreak > goal.BestStreak

	return res, nil
}

// IncrementProgress advances a counter goal by one. It is not idempotent;
// each call pushes current toward target.
func (s *serviceImpl) IncrementProgress(ctx context.Context, id string) (res dto.IncrementProgressResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IncrementProgress")
	defer scope.End()
	defer scope.TraceIfError(err)

	goal, err := s.getOwnedGoal(ctx, id)
	if err != nil {
		return res, err
	}

	if goal.GoalType != constant.GoalTypeCounter {
		return res, failure.BadRequestFromString("only counter goals track numeric progress") // nolint:wrapcheck
	}

	if goal.Current >= goal.Target {
		return res, failure.Conflict("target already reached") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	current := goal.Current + 1

	goalUpdate := map[string]any{
		model.FieldCurrent:       current,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	goalFilter := shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	if err = s.repo.Update(ctx, goalUpdate, goalFilter); err != nil {
		log.Error().Err(err).Msg("failed to increment goal progress")

		return res, fmt.Errorf("failed to increment goal progress: %w", err)
	}

	res.Current = current
	res.Target = goal.Target
	res.Reached = current >= goal.Target

	return res, nil
}

func (s *serviceImpl) GetProgress(ctx context.Context, id string) (res dto.GetGoalProgressResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProgress")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwnedGoal(ctx, id); err != nil {
		return res, err
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.ProgressFieldGoalID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.ProgressTableName,
			},
		},
	}

	models, err := s.repo.GetAllProgress(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get goal progress")

		return res, fmt.Errorf("failed to get goal progress: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) getOwnedGoal(ctx context.Context, id string) (model.Goal, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	goal, err := s.repo.Get(ctx, shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get goal")

		return goal, fmt.Errorf("failed to get goal: %w", err)
	}

	if goal.ID == "" {
		return goal, failure.NotFound("goal not found") // nolint:wrapcheck
	}

	return goal, nil
}
