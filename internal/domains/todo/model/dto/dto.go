package dto

import (
	"streakhub/internal/domains/todo/model"
	"streakhub/shared"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	gModel "streakhub/shared/model"
	"streakhub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateTodoRequest struct {
	Title       string     `json:"title"                 validate:"required,max=255"`
	Description string     `json:"description"           validate:"omitempty,max=1000"`
	Priority    string     `json:"priority"              validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	GoalID      *string    `json:"goal_id,omitempty"     validate:"omitempty,uuid"`
}

func (c *CreateTodoRequest) ToModel(userID string) model.Todo {
	priority := c.Priority
	if priority == "" {
		priority = constant.PriorityMedium
	}

	return model.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       c.Title,
		Description: c.Description,
		Completed:   false,
		Priority:    priority,
		DueDate:     c.DueDate,
		GoalID:      c.GoalID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateTodoRequest struct {
	Title       string     `db:"title"       json:"title"              validate:"omitempty,max=255"`
	Description string     `db:"description" json:"description"        validate:"omitempty,max=1000"`
	Priority    string     `db:"priority"    json:"priority"           validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `db:"due_date"    json:"due_date,omitempty"`
	GoalID      *string    `db:"goal_id"     json:"goal_id,omitempty"  validate:"omitempty,uuid"`
	Completed   *bool      `db:"completed"   json:"completed"          validate:"omitempty"`
}

func (u *UpdateTodoRequest) IsEmpty() bool {
	return u.Title == "" && u.Description == "" && u.Priority == "" &&
		u.DueDate == nil && u.GoalID == nil && u.Completed == nil
}

type TodoResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	GoalID      *string    `json:"goal_id,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	gDto.Metadata
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Title = model.Title
	r.Description = model.Description
	r.Completed = model.Completed
	r.Priority = model.Priority
	r.DueDate = model.DueDate
	r.GoalID = model.GoalID
	r.CompletedAt = model.CompletedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetTodosResponse struct {
	Todos     []TodoResponse `json:"todos"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTodosResponse) FromModels(models []model.Todo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Todos = make([]TodoResponse, len(models))
	for i, mod := range models {
		r.Todos[i].FromModel(mod)
	}
}
