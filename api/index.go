package handler

import (
	"net/http"
	"streakhub/config"
	"streakhub/di"
	"streakhub/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()
	app.HTTP.Handler().ServeHTTP(w, r)
}
