package model

import "streakhub/shared/model"

const (
	TableName  = "workspaces"
	EntityName = "workspace"

	FieldID         = "id"
	FieldOwnerID    = "owner_id"
	FieldName       = "name"
	FieldInviteCode = "invite_code"
)

const (
	MemberTableName  = "workspace_members"
	MemberEntityName = "workspace_member"

	MemberFieldID          = "id"
	MemberFieldWorkspaceID = "workspace_id"
	MemberFieldUserID      = "user_id"
	MemberFieldRole        = "role"
)

const (
	GoalTableName  = "workspace_goals"
	GoalEntityName = "workspace_goal"

	GoalFieldID          = "id"
	GoalFieldWorkspaceID = "workspace_id"
	GoalFieldGoalID      = "goal_id"
)

type Workspace struct {
	ID          string `db:"id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	InviteCode  string `db:"invite_code"`
	model.Metadata
}

type WorkspaceMember struct {
	ID          string `db:"id"`
	WorkspaceID string `db:"workspace_id"`
	UserID      string `db:"user_id"`
	Role        string `db:"role"`
	model.Metadata
}

type WorkspaceGoal struct {
	ID          string `db:"id"`
	WorkspaceID string `db:"workspace_id"`
	GoalID      string `db:"goal_id"`
	model.Metadata
}
