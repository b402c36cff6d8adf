package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	"streakhub/internal/domains/notification/model"
	"streakhub/internal/domains/notification/model/dto"
	"streakhub/internal/domains/notification/repository"
	"streakhub/shared"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	GetAll(ctx context.Context) (dto.GetNotificationsResponse, error)
	MarkAllRead(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.Notification
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// GetAll lists the caller's notifications, newest first.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllNotifications")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, shared.FilterByOwner(userID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	update := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}

	if err = s.repo.Update(ctx, update, shared.FilterByOwner(userID, model.FieldUserID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark notifications read")

		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}
