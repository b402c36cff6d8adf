package workspace

import (
	"net/http"
	"streakhub/infras/otel"
	"streakhub/internal/domains/workspace/model/dto"
	"streakhub/internal/domains/workspace/service"
	"streakhub/shared/constant"
	"streakhub/shared/validator"
	"streakhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Workspace
	otel    otel.Otel
}

func New(service service.Workspace, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/workspaces", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateWorkspace)
		routerGroup.Get("/", handler.GetWorkspaces)
		routerGroup.Post("/join", handler.JoinWorkspace)
		routerGroup.Get("/{id}/members", handler.GetMembers)
		routerGroup.Post("/{id}/goals", handler.AttachGoal)
		routerGroup.Get("/{id}/goals", handler.GetGoals)
	})
}

// CreateWorkspace handles the creation of a new workspace.
// @Summary Create a new workspace
// @Description Create a workspace owned by the authenticated user.
// @Tags Workspace
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkspaceRequest true "Create Workspace Request"
// @Success 201 {object} dto.WorkspaceResponse "Created workspace"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces [post]
// @Security BearerAuth
func (handler *Handler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateWorkspace")
	defer scope.End()

	req := dto.CreateWorkspaceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create workspace")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Workspace created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetWorkspaces lists the workspaces the authenticated user belongs to.
// @Summary Get all workspaces
// @Description Retrieve the workspaces the authenticated user is a member of.
// @Tags Workspace
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetWorkspacesResponse "List of workspaces"
// @Failure 500 {object} response.Error
// @Router /v1/workspaces [get]
// @Security BearerAuth
func (handler *Handler) GetWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkspaces")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspaces")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workspaces retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// JoinWorkspace joins the authenticated user to a workspace by invite code.
// @Summary Join a workspace
// @Description Join a workspace using its invite code.
// @Tags Workspace
// @Accept json
// @Produce json
// @Param request body dto.JoinWorkspaceRequest true "Join Workspace Request"
// @Success 200 {object} dto.JoinWorkspaceResponse "Joined workspace"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces/join [post]
// @Security BearerAuth
func (handler *Handler) JoinWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".JoinWorkspace")
	defer scope.End()

	req := dto.JoinWorkspaceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Join(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to join workspace")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Workspace joined successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetMembers lists the members of a workspace.
// @Summary Get workspace members
// @Description Retrieve the member list of a workspace the caller belongs to.
// @Tags Workspace
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} dto.GetMembersResponse "Member list"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces/{id}/members [get]
// @Security BearerAuth
func (handler *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMembers")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetMembers(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspace members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workspace members retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// AttachGoal links one of the caller's goals to a workspace.
// @Summary Attach a goal to a workspace
// @Description Link a goal owned by the caller to a workspace the caller belongs to.
// @Tags Workspace
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Param request body dto.AttachGoalRequest true "Attach Goal Request"
// @Success 200 {object} response.Message "Goal attached successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces/{id}/goals [post]
// @Security BearerAuth
func (handler *Handler) AttachGoal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AttachGoal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AttachGoalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AttachGoal(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to attach goal to workspace")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Goal attached to workspace successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Goal attached successfully")
}

// GetGoals lists the goals attached to a workspace.
// @Summary Get workspace goals
// @Description Retrieve the goals attached to a workspace the caller belongs to.
// @Tags Workspace
// @Accept json
// @Produce json
// @Param id path string true "Workspace ID"
// @Success 200 {object} dto.GetWorkspaceGoalsResponse "Attached goals"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/workspaces/{id}/goals [get]
// @Security BearerAuth
func (handler *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkspaceGoals")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetGoals(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get workspace goals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Workspace goals retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
