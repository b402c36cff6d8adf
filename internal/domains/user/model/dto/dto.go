package dto

import (
	"streakhub/internal/domains/user/model"
	gDto "streakhub/shared/dto"
)

type UpdateThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type ThemeUpdate struct {
	Theme string `db:"theme" json:"theme"`
}

// UploadAvatarRequest carries a base64 data URI. The mimetypes and
// maxfilesize validators inspect the encoded payload.
type UploadAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=2"`
}

type AvatarUpdate struct {
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
}

type UploadAvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Theme     string  `json:"theme"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Username = user.Username
	r.Email = user.Email
	r.Role = user.Role
	r.Theme = user.Theme
	r.AvatarURL = user.AvatarURL
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)
}
