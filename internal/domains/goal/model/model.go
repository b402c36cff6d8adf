package model

import (
	"streakhub/shared/model"
	"time"
)

const (
	TableName  = "goals"
	EntityName = "goal"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldGoalType      = "goal_type"
	FieldTarget        = "target"
	FieldCurrent       = "current"
	FieldCurrentStreak = "current_streak"
	FieldBestStreak    = "best_streak"
	FieldLastCompleted = "last_completed"
	FieldActive        = "active"
)

const (
	ProgressTableName  = "goal_progress"
	ProgressEntityName = "goal_progress"

	ProgressFieldID            = "id"
	ProgressFieldGoalID        = "goal_id"
	ProgressFieldUserID        = "user_id"
	ProgressFieldCompletedDate = "completed_date"
	ProgressFieldNotes         = "notes"
)

type Goal struct {
	ID            string     `db:"id"`
	UserID        string     `db:"user_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	GoalType      string     `db:"goal_type"`
	Target        int        `db:"target"`
	Current       int        `db:"current"`
	CurrentStreak int        `db:"current_streak"`
	BestStreak    int        `db:"best_streak"`
	LastCompleted *time.Time `db:"last_completed"`
	Active        bool       `db:"active"`
	model.Metadata
}

type GoalProgress struct {
	ID            string    `db:"id"`
	GoalID        string    `db:"goal_id"`
	UserID        string    `db:"user_id"`
	CompletedDate time.Time `db:"completed_date"`
	Notes         string    `db:"notes"`
	model.Metadata
}
