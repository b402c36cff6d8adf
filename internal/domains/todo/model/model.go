package model

import (
	"streakhub/shared/model"
	"time"
)

const (
	TableName  = "todos"
	EntityName = "todo"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCompleted   = "completed"
	FieldPriority    = "priority"
	FieldDueDate     = "due_date"
	FieldGoalID      = "goal_id"
	FieldCompletedAt = "completed_at"
)

type Todo struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Completed   bool       `db:"completed"`
	Priority    string     `db:"priority"`
	DueDate     *time.Time `db:"due_date"`
	GoalID      *string    `db:"goal_id"`
	CompletedAt *time.Time `db:"completed_at"`
	model.Metadata
}
