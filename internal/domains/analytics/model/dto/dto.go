package dto

import (
	"streakhub/internal/domains/analytics/streak"
	"streakhub/shared/constant"
)

type StreakResponse struct {
	Streak int    `json:"streak"`
	Date   string `json:"date"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AnalyticsResponse struct {
	Days           []DayCount `json:"days"`
	TotalTodos     int        `json:"total_todos"`
	CompletedTodos int        `json:"completed_todos"`
	ActiveGoals    int        `json:"active_goals"`
}

func (r *AnalyticsResponse) FromSeries(series []streak.DayCount) {
	r.Days = make([]DayCount, len(series))
	for i, day := range series {
		r.Days[i] = DayCount{
			Date:  day.Date.Format(constant.DayFormat),
			Count: day.Count,
		}
	}
}
