package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/jwt"
	"streakhub/infras/otel"
	"streakhub/internal/domains/auth/model/dto"
	userModel "streakhub/internal/domains/user/model"
	userRepo "streakhub/internal/domains/user/repository"
	"streakhub/shared"
	"streakhub/shared/cache"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/failure"
	"streakhub/shared/password"
	gRepo "streakhub/shared/repository"
	"streakhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context) error
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	cache      cache.RedisCache
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, cache cache.RedisCache) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		cache:      cache,
	}
}

// Register creates a new user account. Uniqueness of username and email is
// enforced by the database, so concurrent registrations cannot race past an
// existence check.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.userRepo.Insert(ctx, req.ToUserModel(hashedPassword)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict("username or email already taken") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	usernameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, usernameFilter)
	if err != nil || user.ID == "" {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.InvalidCredentials // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.InvalidCredentials // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, usernameFilter); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// Logout denylists the current access token until it would have expired on
// its own. The auth middleware rejects denylisted token IDs.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	if tokenID == "" {
		return failure.Unauthorized("missing token") // nolint:wrapcheck
	}

	ttlSeconds := s.cfg.JWT.AccessExpireMin * constant.MinutesToSeconds

	if err = s.cache.Save(ctx, constant.CacheKeyTokenDenylist+tokenID, "revoked", ttlSeconds); err != nil {
		log.Error().Err(err).Msg("failed to denylist token")

		return fmt.Errorf("failed to denylist token: %w", err)
	}

	return nil
}
