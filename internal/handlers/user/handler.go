package user

import (
	"net/http"
	"streakhub/infras/otel"
	"streakhub/internal/domains/user/model/dto"
	"streakhub/internal/domains/user/service"
	"streakhub/shared/constant"
	"streakhub/shared/validator"
	"streakhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users/me", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMe)
		routerGroup.Put("/theme", handler.UpdateTheme)
		routerGroup.Post("/avatar", handler.UploadAvatar)
	})
}

// GetMe returns the authenticated user's profile.
// @Summary Get the current user
// @Description Retrieve the profile of the authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Success 200 {object} dto.UserResponse "User profile"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMe")
	defer scope.End()

	user, err := handler.service.GetMe(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current user")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateTheme switches the authenticated user's theme preference.
// @Summary Update theme preference
// @Description Switch the authenticated user's theme between light and dark.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateThemeRequest true "Update Theme Request"
// @Success 200 {object} response.Message "Theme updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/theme [put]
// @Security BearerAuth
func (handler *Handler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTheme")
	defer scope.End()

	req := dto.UpdateThemeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTheme(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update theme")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Theme updated successfully")

	response.WithMessage(w, http.StatusOK, "Theme updated successfully")
}

// UploadAvatar stores a new avatar image for the authenticated user.
// @Summary Upload an avatar
// @Description Upload a base64-encoded avatar image for the authenticated user.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UploadAvatarRequest true "Upload Avatar Request"
// @Success 200 {object} dto.UploadAvatarResponse "Avatar uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/users/me/avatar [post]
// @Security BearerAuth
func (handler *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadAvatar")
	defer scope.End()

	req := dto.UploadAvatarRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadAvatar(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload avatar")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Avatar uploaded successfully")

	response.WithJSON(w, http.StatusOK, res)
}
