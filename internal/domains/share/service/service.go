package service

import (
	"context"
	"errors"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	"streakhub/internal/domains/share/model"
	"streakhub/internal/domains/share/model/dto"
	todoModel "streakhub/internal/domains/todo/model"
	todoRepo "streakhub/internal/domains/todo/repository"
	"streakhub/shared"
	"streakhub/shared/constant"
	"streakhub/shared/docstore"
	"streakhub/shared/failure"

	"github.com/rs/zerolog/log"
)

type Share interface {
	ShareTodo(ctx context.Context, todoID string) (dto.ShareTodoResponse, error)
	GetShared(ctx context.Context, shareID string) (dto.SharedTodoResponse, error)
}

type serviceImpl struct {
	todoRepo todoRepo.Todo
	store    docstore.Store
	cfg      *config.Config
	otel     otel.Otel
}

func New(todoRepo todoRepo.Todo, store docstore.Store, cfg *config.Config, otel otel.Otel) Share {
	return &serviceImpl{
		todoRepo: todoRepo,
		store:    store,
		cfg:      cfg,
		otel:     otel,
	}
}

// ShareTodo snapshots an owned todo into the document store and returns the
// public URL. The snapshot is immutable; sharing again creates a new one.
func (s *serviceImpl) ShareTodo(ctx context.Context, todoID string) (res dto.ShareTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ShareTodo")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	todo, err := s.todoRepo.Get(ctx, shared.FilterOwnedByID(todoID, userID, todoModel.FieldID, todoModel.FieldUserID, todoModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get todo")

		return res, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == "" {
		return res, failure.NotFound("todo not found") // nolint:wrapcheck
	}

	share := dto.NewShare(todo, username)

	if err = s.store.Put(ctx, model.Collection, share.ID, share); err != nil {
		log.Error().Err(err).Msg("failed to store share snapshot")

		return res, fmt.Errorf("failed to store share snapshot: %w", err)
	}

	res.ShareID = share.ID
	res.ShareURL = fmt.Sprintf("%s/shared/%s", s.cfg.App.BaseURL, share.ID)

	return res, nil
}

// GetShared serves a snapshot without authentication.
func (s *serviceImpl) GetShared(ctx context.Context, shareID string) (res dto.SharedTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetShared")
	defer scope.End()
	defer scope.TraceIfError(err)

	var share model.Share

	if err = s.store.Get(ctx, model.Collection, shareID, &share); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return res, failure.NotFound("shared todo") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to load share snapshot")

		return res, fmt.Errorf("failed to load share snapshot: %w", err)
	}

	res.FromModel(share)

	return res, nil
}
