package goal

import (
	"net/http"
	"streakhub/infras/otel"
	"streakhub/internal/domains/goal/model/dto"
	"streakhub/internal/domains/goal/service"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/validator"
	"streakhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Goal
	otel    otel.Otel
}

func New(service service.Goal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/goals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGoal)
		routerGroup.Get("/", handler.GetGoals)
		routerGroup.Get("/{id}", handler.GetGoalByID)
		routerGroup.Patch("/{id}", handler.UpdateGoal)
		routerGroup.Delete("/{id}", handler.DeleteGoal)
		routerGroup.Post("/{id}/complete", handler.CompleteGoal)
		routerGroup.Put("/{id}/progress", handler.IncrementProgress)
		routerGroup.Get("/{id}/progress", handler.GetProgress)
	})
}

// CreateGoal handles the creation of a new goal.
// @Summary Create a new goal
// @Description Create a new streak or counter goal for the authenticated user.
// @Tags Goal
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Create Goal Request"
// @Success 201 {object} dto.GoalResponse "Created goal"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals [post]
// @Security BearerAuth
func (handler *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGoal")
	defer scope.End()

	req := dto.CreateGoalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create goal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Goal created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetGoals retrieves the authenticated user's active goals.
// @Summary Get all goals
// @Description Retrieve the authenticated user's active goals with pagination.
// @Tags Goal
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetGoalsResponse "List of goals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals [get]
// @Security BearerAuth
func (handler *Handler) GetGoals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGoals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	goals, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get goals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Goals retrieved successfully")

	response.WithJSON(w, http.StatusOK, goals)
}

// GetGoalByID retrieves a goal by its ID.
// @Summary Get a goal by ID
// @Description Retrieve a goal owned by the authenticated user.
// @Tags Goal
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse "Goal details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGoalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGoalByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	goal, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get goal by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Goal retrieved successfully")

	response.WithJSON(w, http.StatusOK, goal)
}

// UpdateGoal updates an existing goal by its ID.
// @Summary Update a goal by ID
// @Description Update the details of a goal owned by the authenticated user.
// @Tags Goal
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.UpdateGoalRequest true "Update Goal Request"
// @Success 200 {object} response.Message "Goal updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGoal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateGoalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update goal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Goal updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Goal updated successfully")
}

// DeleteGoal deletes a goal by its ID.
// @Summary Delete a goal by ID
// @Description Delete a goal owned by the authenticated user.
// @Tags Goal
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} response.Message "Goal deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGoal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete goal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Goal deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Goal deleted successfully")
}

// CompleteGoal records today's completion for a streak goal.
// @Summary Complete a streak goal for today
// @Description Record today's completion and update the goal's streak counters.
// @Tags Goal
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body dto.CompleteGoalRequest false "Complete Goal Request"
// @Success 200 {object} dto.CompleteGoalResponse "Updated streak counters"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteGoal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CompleteGoalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Complete(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete goal")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Goal completed successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// IncrementProgress advances a counter goal by one.
// @Summary Increment a counter goal
// @Description Advance a counter goal's progress by one step.
// @Tags Goal
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.IncrementProgressResponse "Updated progress"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals/{id}/progress [put]
// @Security BearerAuth
func (handler *Handler) IncrementProgress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IncrementProgress")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.IncrementProgress(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to increment goal progress")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Goal progress incremented successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetProgress lists the completion history of a goal.
// @Summary Get goal progress history
// @Description Retrieve the completion records of a goal owned by the authenticated user.
// @Tags Goal
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} dto.GetGoalProgressResponse "Progress records"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/goals/{id}/progress [get]
// @Security BearerAuth
func (handler *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProgress")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetProgress(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get goal progress")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Goal progress retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
