package router

import (
	"streakhub/internal/handlers/analytics"
	"streakhub/internal/handlers/auth"
	"streakhub/internal/handlers/goal"
	"streakhub/internal/handlers/notification"
	"streakhub/internal/handlers/share"
	"streakhub/internal/handlers/todo"
	"streakhub/internal/handlers/user"
	"streakhub/internal/handlers/workspace"
	"streakhub/internal/realtime"
	"streakhub/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Todo         todo.Handler
	Goal         goal.Handler
	Workspace    workspace.Handler
	Analytics    analytics.Handler
	Notification notification.Handler
	Share        share.Handler
	Realtime     *realtime.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthMiddleware middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthMiddleware.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Todo.Router(routerGroup)
		r.DomainHandlers.Goal.Router(routerGroup)
		r.DomainHandlers.Workspace.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Share.Router(routerGroup)
	})

	// The public share view needs no token and the websocket endpoint
	// authenticates its own handshake, so both sit outside the /v1 group.
	r.DomainHandlers.Share.PublicRouter(router)
	router.Get("/ws", r.DomainHandlers.Realtime.ServeWS)
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthMiddleware: authMiddleware,
	}
}
