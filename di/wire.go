//go:build wireinject
// +build wireinject

package di

import (
	"streakhub/config"
	"streakhub/infras/jwt"
	"streakhub/infras/kafka"
	"streakhub/infras/otel"
	"streakhub/infras/postgres"
	"streakhub/infras/redis"
	"streakhub/infras/s3"
	"streakhub/internal/events"
	"streakhub/internal/realtime"
	"streakhub/internal/reminder"
	"streakhub/permissions"
	"streakhub/shared/cache"
	"streakhub/shared/docstore"
	"streakhub/transport/http"
	"streakhub/transport/http/middleware"
	"streakhub/transport/http/router"

	analyticsService "streakhub/internal/domains/analytics/service"
	authService "streakhub/internal/domains/auth/service"
	goalRepository "streakhub/internal/domains/goal/repository"
	goalService "streakhub/internal/domains/goal/service"
	notificationRepository "streakhub/internal/domains/notification/repository"
	notificationService "streakhub/internal/domains/notification/service"
	shareService "streakhub/internal/domains/share/service"
	todoRepository "streakhub/internal/domains/todo/repository"
	todoService "streakhub/internal/domains/todo/service"
	userRepository "streakhub/internal/domains/user/repository"
	userService "streakhub/internal/domains/user/service"
	workspaceRepository "streakhub/internal/domains/workspace/repository"
	workspaceService "streakhub/internal/domains/workspace/service"

	analyticsHandler "streakhub/internal/handlers/analytics"
	authHandler "streakhub/internal/handlers/auth"
	goalHandler "streakhub/internal/handlers/goal"
	notificationHandler "streakhub/internal/handlers/notification"
	shareHandler "streakhub/internal/handlers/share"
	todoHandler "streakhub/internal/handlers/todo"
	userHandler "streakhub/internal/handlers/user"
	workspaceHandler "streakhub/internal/handlers/workspace"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	docstore.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var goalDomain = wire.NewSet(
	goalRepository.New,
	goalService.New,
)

var workspaceDomain = wire.NewSet(
	workspaceRepository.New,
	workspaceService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var shareDomain = wire.NewSet(
	shareService.New,
)

var domains = wire.NewSet(
	todoDomain,
	authDomain,
	userDomain,
	goalDomain,
	workspaceDomain,
	analyticsDomain,
	notificationDomain,
	shareDomain,
)

var background = wire.NewSet(
	reminder.New,
	realtime.NewHub,
	realtime.NewHandler,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	todoHandler.New,
	goalHandler.New,
	workspaceHandler.New,
	analyticsHandler.New,
	notificationHandler.New,
	shareHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		background,
		routing,
		http.New,
		NewApp,
	)

	return &App{}
}
