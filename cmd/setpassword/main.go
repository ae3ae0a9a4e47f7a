// Command setpassword replaces the password of an existing teacher account.
package main

import (
	"context"
	"flag"
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/wardrobe-service/pkg/logger"
	"github.com/Astemirdum/wardrobe-service/pkg/postgres"
	"github.com/Astemirdum/wardrobe-service/wardrobe/config"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/repository"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/service"
	"github.com/Astemirdum/wardrobe-service/wardrobe/migrations"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	email := flag.String("email", "", "teacher email")
	password := flag.String("password", "", "new password, at least 6 characters")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", err)
	}
	cfg := config.NewConfig()
	log, closeLog, err := logger.NewLogger(cfg.Log, "setpassword")
	if err != nil {
		stdLog.Fatal("logger ", err)
	}
	defer closeLog()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	defer db.Close()

	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	svc := service.NewService(repo, service.NewJournalPublisher(repo), nil, cfg.Auth, log)
	if err = svc.SetPassword(ctx, *email, *password); err != nil {
		log.Fatal("set password", zap.String("email", *email), zap.Error(err))
	}
	log.Info("password updated", zap.String("email", *email))
}
