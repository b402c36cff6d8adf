package service

import (
	"context"
	"fmt"
	"streakhub/config"
	"streakhub/infras/otel"
	goalModel "streakhub/internal/domains/goal/model"
	goalRepo "streakhub/internal/domains/goal/repository"
	userModel "streakhub/internal/domains/user/model"
	userRepo "streakhub/internal/domains/user/repository"
	"streakhub/internal/domains/workspace/model"
	"streakhub/internal/domains/workspace/model/dto"
	"streakhub/internal/domains/workspace/repository"
	"streakhub/internal/events"
	"streakhub/shared"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	"streakhub/shared/failure"
	gRepo "streakhub/shared/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Workspace interface {
	Create(ctx context.Context, req dto.CreateWorkspaceRequest) (dto.WorkspaceResponse, error)
	GetAll(ctx context.Context) (dto.GetWorkspacesResponse, error)
	Join(ctx context.Context, req dto.JoinWorkspaceRequest) (dto.JoinWorkspaceResponse, error)
	GetMembers(ctx context.Context, workspaceID string) (dto.GetMembersResponse, error)
	AttachGoal(ctx context.Context, req dto.AttachGoalRequest, workspaceID string) error
	GetGoals(ctx context.Context, workspaceID string) (dto.GetWorkspaceGoalsResponse, error)
}

type serviceImpl struct {
	repo      repository.Workspace
	userRepo  userRepo.User
	goalRepo  goalRepo.Goal
	cfg       *config.Config
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Workspace, userRepo userRepo.User, goalRepo goalRepo.Goal, cfg *config.Config, otel otel.Otel, publisher events.Publisher) Workspace {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		goalRepo:  goalRepo,
		cfg:       cfg,
		otel:      otel,
		publisher: publisher,
	}
}

// NewInviteCode derives a short invite token from a fresh UUID. The column's
// unique index backstops the truncation.
func NewInviteCode() string {
	return uuid.NewString()[:constant.InviteCodeLength]
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateWorkspaceRequest) (res dto.WorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateWorkspace")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	workspace := req.ToModel(userID, NewInviteCode())
	owner := dto.NewMember(workspace.ID, userID, constant.WorkspaceRoleOwner)

	if err = s.repo.Create(ctx, workspace, owner); err != nil {
		log.Error().Err(err).Msg("failed to create workspace")

		return res, fmt.Errorf("failed to create workspace: %w", err)
	}

	res.FromModel(workspace)

	return res, nil
}

// GetAll lists workspaces the caller is a member of.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetWorkspacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllWorkspaces")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	memberships, err := s.repo.GetMembers(ctx, shared.FilterByOwner(userID, model.MemberFieldUserID, model.MemberTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get memberships")

		return res, fmt.Errorf("failed to get memberships: %w", err)
	}

	if len(memberships) == 0 {
		res.Workspaces = []dto.WorkspaceResponse{}

		return res, nil
	}

	workspaceIDs := make([]string, len(memberships))
	for i, membership := range memberships {
		workspaceIDs[i] = membership.WorkspaceID
	}

	idFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    workspaceIDs,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	workspaces, err := s.repo.GetAll(ctx, params, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get workspaces")

		return res, fmt.Errorf("failed to get workspaces: %w", err)
	}

	res.FromModels(workspaces)

	return res, nil
}

// Join adds the caller to the workspace behind the invite code. An unknown
// code conflicts rather than 404s so probes cannot distinguish "never
// existed" from "deleted".
func (s *serviceImpl) Join(ctx context.Context, req dto.JoinWorkspaceRequest) (res dto.JoinWorkspaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".JoinWorkspace")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	codeFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldInviteCode,
				Operator: gDto.FilterOperatorEq,
				Value:    req.InviteCode,
				Table:    model.TableName,
			},
		},
	}

	workspace, err := s.repo.Get(ctx, codeFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up invite code")

		return res, fmt.Errorf("failed to look up invite code: %w", err)
	}

	if workspace.ID == "" {
		return res, failure.Conflict("invalid invite code") // nolint:wrapcheck
	}

	member := dto.NewMember(workspace.ID, userID, constant.WorkspaceRoleMember)

	if err = s.repo.InsertMember(ctx, member); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("already a member") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to join workspace")

		return res, fmt.Errorf("failed to join workspace: %w", err)
	}

	if publishErr := s.publisher.PublishActivity(ctx, events.ActivityEvent{
		Type:      events.TypeWorkspaceJoined,
		UserID:    userID,
		SubjectID: workspace.ID,
		Subject:   workspace.Name,
	}); publishErr != nil {
		log.Warn().Err(publishErr).Msg("failed to publish workspace join event")
	}

	res.WorkspaceID = workspace.ID
	res.Name = workspace.Name
	res.Role = constant.WorkspaceRoleMember

	return res, nil
}

func (s *serviceImpl) GetMembers(ctx context.Context, workspaceID string) (res dto.GetMembersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMembers")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireMembership(ctx, workspaceID); err != nil {
		return res, err
	}

	members, err := s.repo.GetMembers(ctx, shared.FilterByOwner(workspaceID, model.MemberFieldWorkspaceID, model.MemberTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get workspace members")

		return res, fmt.Errorf("failed to get workspace members: %w", err)
	}

	userIDs := make([]string, len(members))
	for i, member := range members {
		userIDs[i] = member.UserID
	}

	userFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    userIDs,
				Table:    userModel.TableName,
			},
		},
	}

	users, err := s.userRepo.GetAll(ctx, gDto.QueryParams{}, userFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get member users")

		return res, fmt.Errorf("failed to get member users: %w", err)
	}

	res.FromModels(members, users)

	return res, nil
}

// AttachGoal links one of the caller's own goals to a workspace the caller
// belongs to.
func (s *serviceImpl) AttachGoal(ctx context.Context, req dto.AttachGoalRequest, workspaceID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachGoal")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireMembership(ctx, workspaceID); err != nil {
		return err
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	ownsGoal, err := s.goalRepo.Exist(ctx, shared.FilterOwnedByID(req.GoalID, userID, goalModel.FieldID, goalModel.FieldUserID, goalModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check goal ownership")

		return fmt.Errorf("failed to check goal ownership: %w", err)
	}

	if !ownsGoal {
		return failure.NotFound("goal not found") // nolint:wrapcheck
	}

	if err = s.repo.InsertGoal(ctx, req.ToModel(workspaceID, userID)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict("goal already attached") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to attach goal")

		return fmt.Errorf("failed to attach goal: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetGoals(ctx context.Context, workspaceID string) (res dto.GetWorkspaceGoalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWorkspaceGoals")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.requireMembership(ctx, workspaceID); err != nil {
		return res, err
	}

	links, err := s.repo.GetGoals(ctx, shared.FilterByOwner(workspaceID, model.GoalFieldWorkspaceID, model.GoalTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get workspace goal links")

		return res, fmt.Errorf("failed to get workspace goal links: %w", err)
	}

	if len(links) == 0 {
		res.FromModels(nil)

		return res, nil
	}

	goalIDs := make([]string, len(links))
	for i, link := range links {
		goalIDs[i] = link.GoalID
	}

	goalFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    goalModel.FieldID,
				Operator: gDto.FilterOperatorIn,
				Value:    goalIDs,
				Table:    goalModel.TableName,
			},
		},
	}

	goals, err := s.goalRepo.GetAll(ctx, gDto.QueryParams{}, goalFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get workspace goals")

		return res, fmt.Errorf("failed to get workspace goals: %w", err)
	}

	res.FromModels(goals)

	return res, nil
}

func (s *serviceImpl) requireMembership(ctx context.Context, workspaceID string) error {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	memberFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.MemberFieldWorkspaceID,
				Operator: gDto.FilterOperatorEq,
				Value:    workspaceID,
				Table:    model.MemberTableName,
			},
			gDto.Filter{
				Field:    model.MemberFieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.MemberTableName,
			},
		},
	}

	isMember, err := s.repo.MemberExists(ctx, memberFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check workspace membership")

		return fmt.Errorf("failed to check workspace membership: %w", err)
	}

	if !isMember {
		return failure.NotWorkspaceMember // nolint:wrapcheck
	}

	return nil
}
