package share

import (
	"net/http"
	"streakhub/infras/otel"
	"streakhub/internal/domains/share/service"
	"streakhub/shared/constant"
	"streakhub/shared/failure"
	"streakhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Share
	otel    otel.Otel
}

func New(service service.Share, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the authenticated share endpoint.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/share/{id}", handler.ShareTodo)
}

// PublicRouter registers the unauthenticated read-only view. It sits outside
// the versioned group so shared links survive API version bumps.
func (handler *Handler) PublicRouter(router chi.Router) {
	router.Get("/shared/{id}", handler.GetShared)
}

// ShareTodo publishes an immutable snapshot of a todo.
// @Summary Share a todo
// @Description Create a public immutable snapshot of a todo and return its URL.
// @Tags Share
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Success 201 {object} dto.ShareTodoResponse "Share URL"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/share/{id} [post]
// @Security BearerAuth
func (handler *Handler) ShareTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ShareTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.ShareTodo(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to share todo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Todo shared successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetShared renders a shared snapshot. An unknown identifier yields a
// plain-text 404 body rather than the JSON error envelope, matching what a
// link-following browser expects.
// @Summary View a shared todo
// @Description Retrieve the public snapshot behind a share link.
// @Tags Share
// @Accept json
// @Produce json
// @Param id path string true "Share ID"
// @Success 200 {object} dto.SharedTodoResponse "Shared snapshot"
// @Failure 404 {string} string "Shared todo not found"
// @Router /shared/{id} [get]
func (handler *Handler) GetShared(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShared")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetShared(ctx, id)
	if err != nil {
		if failure.GetCode(err) == http.StatusNotFound {
			response.WithPlainText(w, http.StatusNotFound, "Shared todo not found")

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shared todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shared todo retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
