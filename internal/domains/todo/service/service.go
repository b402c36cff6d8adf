package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	"streakhub/internal/domains/todo/model"
	"streakhub/internal/domains/todo/model/dto"
	"streakhub/internal/domains/todo/repository"
	"streakhub/shared"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/failure"
	"streakhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Todo interface {
	Create(ctx context.Context, req dto.CreateTodoRequest) (dto.TodoResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTodosResponse, error)
	Get(ctx context.Context, id string) (dto.TodoResponse, error)
	Update(ctx context.Context, req dto.UpdateTodoRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Todo
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Todo, cfg *config.Config, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	todo := req.ToModel(userID)

	if err = s.repo.Insert(ctx, todo); err != nil {
		log.Error().Err(err).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	res.FromModel(todo)

	return res, nil
}

// GetAll lists the caller's todos. The owner filter is appended here so a
// crafted query filter can never widen the result set to other users.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTodosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count todos")

		return res, fmt.Errorf("failed to count todos: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get todos")

		return res, fmt.Errorf("failed to get todos: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	todo, err := s.repo.Get(ctx, shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	res.FromModel(todo)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTodoRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound("todo not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, userID)

	// Completing stamps completed_at, un-completing clears it.
	if req.Completed != nil {
		if *req.Completed {
			updatedFields[model.FieldCompletedAt] = timezone.Now()
		} else {
			updatedFields[model.FieldCompletedAt] = nil
		}
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update todo")

		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterOwnedByID(id, userID, model.FieldID, model.FieldUserID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if todo exists")

		return fmt.Errorf("failed to check if todo exists: %w", err)
	}

	if !exist {
		return failure.NotFound("todo not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	return nil
}
