package dto

import (
	"streakhub/internal/domains/goal/model"
	"streakhub/shared"
	"streakhub/shared/constant"
	gDto "streakhub/shared/dto"
	gModel "streakhub/shared/model"
	"streakhub/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateGoalRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	GoalType    string `json:"goal_type"   validate:"omitempty,oneof=streak counter"`
	Target      int    `json:"target"      validate:"omitempty,gte=1"`
}

func (c *CreateGoalRequest) ToModel(userID string) model.Goal {
	goalType := c.GoalType
	if goalType == "" {
		goalType = constant.GoalTypeStreak
	}

	return model.Goal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       c.Title,
		Description: c.Description,
		GoalType:    goalType,
		Target:      c.Target,
		Active:      true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateGoalRequest struct {
	Title       string `db:"title"       json:"title"       validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Target      int    `db:"target"      json:"target"      validate:"omitempty,gte=1"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

func (u *UpdateGoalRequest) IsEmpty() bool {
	return u.Title == "" && u.Description == "" && u.Target == 0 && u.Active == nil
}

type CompleteGoalRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=1000"`
}

func (c *CompleteGoalRequest) ToProgressModel(goalID, userID string, completedDate time.Time) model.GoalProgress {
	return model.GoalProgress{
		ID:            uuid.NewString(),
		GoalID:        goalID,
		UserID:        userID,
		CompletedDate: completedDate,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type CompleteGoalResponse struct {
	NewStreak  int  `json:"new_streak"`
	BestStreak int  `json:"best_streak"`
	BestBeaten bool `json:"best_beaten"`
}

type IncrementProgressResponse struct {
	Current int  `json:"current"`
	Target  int  `json:"target"`
	Reached bool `json:"reached"`
}

type GoalResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	GoalType      string     `json:"goal_type"`
	Target        int        `json:"target"`
	Current       int        `json:"current"`
	CurrentStreak int        `json:"current_streak"`
	BestStreak    int        `json:"best_streak"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
	Active        bool       `json:"active"`
	gDto.Metadata
}

func (r *GoalResponse) FromModel(model model.Goal) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Title = model.Title
	r.Description = model.Description
	r.GoalType = model.GoalType
	r.Target = model.Target
	r.Current = model.Current
	r.CurrentStreak = model.CurrentStreak
	r.BestStreak = model.BestStreak
	r.LastCompleted = model.LastCompleted
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetGoalsResponse struct {
	Goals     []GoalResponse `json:"goals"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetGoalsResponse) FromModels(models []model.Goal, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Goals = make([]GoalResponse, len(models))
	for i, mod := range models {
		r.Goals[i].FromModel(mod)
	}
}

type GoalProgressResponse struct {
	ID            string    `json:"id"`
	GoalID        string    `json:"goal_id"`
	CompletedDate time.Time `json:"completed_date"`
	Notes         string    `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *GoalProgressResponse) FromModel(model model.GoalProgress) {
	r.ID = model.ID
	r.GoalID = model.GoalID
	r.CompletedDate = model.CompletedDate
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetGoalProgressResponse struct {
	Progress []GoalProgressResponse `json:"progress"`
}

func (r *GetGoalProgressResponse) FromModels(models []model.GoalProgress) {
	r.Progress = make([]GoalProgressResponse, len(models))
	for i, mod := range models {
		r.Progress[i].FromModel(mod)
	}
}
