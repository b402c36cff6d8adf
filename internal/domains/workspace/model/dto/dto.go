package dto

import (
	goalModel "streakhub/internal/domains/goal/model"
	goalDto "streakhub/internal/domains/goal/model/dto"
	userModel "streakhub/internal/domains/user/model"
	"streakhub/internal/domains/workspace/model"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	gModel "streakhub/shared/model"
	"streakhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateWorkspaceRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

func (c *CreateWorkspaceRequest) ToModel(ownerID, inviteCode string) model.Workspace {
	return model.Workspace{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        c.Name,
		Description: c.Description,
		InviteCode:  inviteCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  ownerID,
			ModifiedBy: ownerID,
		},
	}
}

func NewMember(workspaceID, userID, role string) model.WorkspaceMember {
	return model.WorkspaceMember{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        role,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type JoinWorkspaceRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=8"`
}

type AttachGoalRequest struct {
	GoalID string `json:"goal_id" validate:"required,uuid"`
}

func (a *AttachGoalRequest) ToModel(workspaceID, userID string) model.WorkspaceGoal {
	return model.WorkspaceGoal{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		GoalID:      a.GoalID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type WorkspaceResponse struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	InviteCode  string `json:"invite_code"`
	gDto.Metadata
}

func (r *WorkspaceResponse) FromModel(model model.Workspace) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.Description = model.Description
	r.InviteCode = model.InviteCode
	r.Metadata.FromModel(model.Metadata)
}

type GetWorkspacesResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
}

func (r *GetWorkspacesResponse) FromModels(models []model.Workspace) {
	r.Workspaces = make([]WorkspaceResponse, len(models))
	for i, mod := range models {
		r.Workspaces[i].FromModel(mod)
	}
}

type JoinWorkspaceResponse struct {
	WorkspaceID string `json:"workspace_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type MemberResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	JoinedAt string `json:"joined_at"`
}

type GetMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// FromModels merges membership rows with their user records. Members whose
// user row is missing are listed without a username rather than dropped.
func (r *GetMembersResponse) FromModels(members []model.WorkspaceMember, users []userModel.User) {
	usernames := make(map[string]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}

	r.Members = make([]MemberResponse, len(members))
	for i, member := range members {
		r.Members[i] = MemberResponse{
			UserID:   member.UserID,
			Username: usernames[member.UserID],
			Role:     member.Role,
			JoinedAt: timezone.Format(member.CreatedAt, constant.DateFormat),
		}
	}
}

type GetWorkspaceGoalsResponse struct {
	Goals []goalDto.GoalResponse `json:"goals"`
}

func (r *GetWorkspaceGoalsResponse) FromModels(models []goalModel.Goal) {
	r.Goals = make([]goalDto.GoalResponse, len(models))
	for i, mod := range models {
		r.Goals[i].FromModel(mod)
	}
}
