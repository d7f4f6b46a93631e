package handler

import (
	"net/http"

	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/di"
	"github.com/ah01567/Bookini/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()
	app.HTTP.Handler().ServeHTTP(w, r)
}
