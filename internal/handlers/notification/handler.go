package notification

import (
	"net/http"
	"streakhub/infras/otel"
	"streakhub/internal/domains/notification/service"
	"streakhub/shared/constant"
	"streakhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	otel    otel.Otel
}

func New(service service.Notification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Put("/read", handler.MarkAllRead)
	})
}

// GetNotifications lists the caller's notifications.
// @Summary Get all notifications
// @Description Retrieve the authenticated user's notifications, newest first.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetNotificationsResponse "List of notifications"
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// MarkAllRead marks every notification of the caller as read.
// @Summary Mark all notifications read
// @Description Mark every notification of the authenticated user as read.
// @Tags Notification
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Notifications marked read"
// @Failure 500 {object} response.Error
// @Router /v1/notifications/read [put]
// @Security BearerAuth
func (handler *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkAllRead")
	defer scope.End()

	if err := handler.service.MarkAllRead(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark notifications read")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications marked read successfully")

	response.WithMessage(w, http.StatusOK, "Notifications marked read")
}
