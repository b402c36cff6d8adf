package model

import (
	"streakhub/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldTheme     = "theme"
	FieldAvatarURL = "avatar_url"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string     `db:"id"`
	Username  string     `db:"username"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Role      string     `db:"role"`
	Theme     string     `db:"theme"`
	AvatarURL *string    `db:"avatar_url"`
	Active    bool       `db:"active"`
	LastLogin *time.Time `db:"last_login"`
	model.Metadata
}
