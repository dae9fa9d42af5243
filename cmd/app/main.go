package main

import (
	"eventrix/config"
	"eventrix/di"
	"eventrix/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
