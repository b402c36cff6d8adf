package dto

import (
	"streakhub/internal/domains/notification/model"
	gDto "streakhub/shared/dto"
	gModel "streakhub/shared/model"
	"streakhub/shared/timezone"

	"github.com/google/uuid"
)

func NewNotification(userID, kind, message string) model.Notification {
	return model.Notification{
		ID:      uuid.NewString(),
		UserID:  userID,
		Kind:    kind,
		Message: message,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type NotificationResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(model model.Notification) {
	r.ID = model.ID
	r.Kind = model.Kind
	r.Message = model.Message
	r.Read = model.Read
	r.Metadata.FromModel(model.Metadata)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification) {
	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
