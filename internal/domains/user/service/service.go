package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	"streakhub/infras/s3"
	"streakhub/internal/domains/user/model"
	"streakhub/internal/domains/user/model/dto"
	"streakhub/internal/domains/user/repository"
	"streakhub/shared"
	"streakhub/shared/base64"
	"streakhub/shared/constant"
	"streakhub/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type User interface {
	GetMe(ctx context.Context) (dto.UserResponse, error)
	UpdateTheme(ctx context.Context, req dto.UpdateThemeRequest) error
	UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest) (dto.UploadAvatarResponse, error)
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
	s3   s3.S3
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel, s3 s3.S3) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
		s3:   s3,
	}
}

func (s *serviceImpl) GetMe(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMe")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := s.repo.Get(ctx, shared.FilterByID(userID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == "" {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) UpdateTheme(ctx context.Context, req dto.UpdateThemeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTheme")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(userID, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(dto.ThemeUpdate{Theme: req.Theme}, userID)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update theme")

		return fmt.Errorf("failed to update theme: %w", err)
	}

	return nil
}

func (s *serviceImpl) UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest) (res dto.UploadAvatarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAvatar")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	data, err := base64.Decode(req.Avatar)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode avatar payload")

		return res, failure.BadRequestFromString("invalid avatar payload") // nolint:wrapcheck
	}

	contentType := base64.GetContentType(req.Avatar)
	fileName := uuid.NewString()

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, model.EntityName, fileName, contentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar")

		return res, fmt.Errorf("failed to upload avatar: %w", err)
	}

	filter := shared.FilterByID(userID, model.FieldID, model.TableName)

	updatedFields := shared.TransformFields(dto.AvatarUpdate{AvatarURL: url}, userID)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to store avatar url")

		return res, fmt.Errorf("failed to store avatar url: %w", err)
	}

	res.AvatarURL = url

	return res, nil
}
