package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/wardrobe-service/wardrobe/app"
	"github.com/Astemirdum/wardrobe-service/wardrobe/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// @title                       Wardrobe Service API
// @version                     1.0
// @description                 Costume loans to student groups.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
