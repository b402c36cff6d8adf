package main

import (
	"streakhub/config"
	"streakhub/di"
	"streakhub/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	app.Reminder.Start()
	defer app.Reminder.Stop()

	app.HTTP.Serve()
}
