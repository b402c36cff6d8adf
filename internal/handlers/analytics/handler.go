package analytics

import (
	"net/http"
	"streakhub/infras/otel"
	"streakhub/internal/domains/analytics/service"
	"streakhub/shared/constant"
	"streakhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAnalytics)
		routerGroup.Get("/streak", handler.GetStreak)
	})
}

// GetStreak returns the caller's trailing completion streak.
// @Summary Get the current streak
// @Description Count the consecutive trailing days with at least one completion.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} dto.StreakResponse "Current streak"
// @Failure 500 {object} response.Error
// @Router /v1/analytics/streak [get]
// @Security BearerAuth
func (handler *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStreak")
	defer scope.End()

	res, err := handler.service.GetStreak(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get streak")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Streak retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetAnalytics returns the caller's activity summary.
// @Summary Get activity analytics
// @Description Retrieve per-day completion counts and aggregate totals.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse "Activity summary"
// @Failure 500 {object} response.Error
// @Router /v1/analytics [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	res, err := handler.service.GetAnalytics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Analytics retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
