package dto

import (
	"streakhub/internal/domains/share/model"
	todoModel "streakhub/internal/domains/todo/model"
	"streakhub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

func NewShare(todo todoModel.Todo, username string) model.Share {
	return model.Share{
		ID:          uuid.NewString(),
		TodoID:      todo.ID,
		UserID:      todo.UserID,
		SharedBy:    username,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Priority:    todo.Priority,
		DueDate:     todo.DueDate,
		SharedAt:    timezone.Now(),
	}
}

type ShareTodoResponse struct {
	ShareID  string `json:"share_id"`
	ShareURL string `json:"share_url"`
}

type SharedTodoResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	SharedBy    string     `json:"shared_by"`
	SharedAt    time.Time  `json:"shared_at"`
}

func (r *SharedTodoResponse) FromModel(share model.Share) {
	r.ID = share.ID
	r.Title = share.Title
	r.Description = share.Description
	r.Completed = share.Completed
	r.Priority = share.Priority
	r.DueDate = share.DueDate
	r.SharedBy = share.SharedBy
	r.SharedAt = share.SharedAt
}
