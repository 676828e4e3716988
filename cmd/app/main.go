package main

import (
	"stayadmin/config"
	"stayadmin/di"
	"stayadmin/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
