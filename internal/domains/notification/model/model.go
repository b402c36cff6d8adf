package model

import "streakhub/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldKind    = "kind"
	FieldMessage = "message"
	FieldRead    = "read"
)

const (
	KindStreakReminder = "streak_reminder"
)

type Notification struct {
	ID      string `db:"id"`
	UserID  string `db:"user_id"`
	Kind    string `db:"kind"`
	Message string `db:"message"`
	Read    bool   `db:"read"`
	model.Metadata
}
