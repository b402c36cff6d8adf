package di

import (
	"streakhub/internal/reminder"
	"streakhub/transport/http"
)

// App bundles the HTTP server with the background reminder job so both come
// out of one dependency graph.
type App struct {
	HTTP     *http.HTTP
	Reminder *reminder.Job
}

func NewApp(httpServer *http.HTTP, reminderJob *reminder.Job) *App {
	return &App{
		HTTP:     httpServer,
		Reminder: reminderJob,
	}
}
