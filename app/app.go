package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/cliff-de-tech/library-service/config"
	"github.com/cliff-de-tech/library-service/internal/handler"
	"github.com/cliff-de-tech/library-service/internal/repository"
	"github.com/cliff-de-tech/library-service/internal/server"
	"github.com/cliff-de-tech/library-service/internal/service"
	"github.com/cliff-de-tech/library-service/migrations"
	"github.com/cliff-de-tech/library-service/pkg/auth"
	"github.com/cliff-de-tech/library-service/pkg/logger"
	"github.com/cliff-de-tech/library-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	if cfg.JWTKey != "" {
		auth.JWTKey = []byte(cfg.JWTKey)
	}

	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}
	userRepo, err := repository.NewUserRepository(db, log)
	if err != nil {
		log.Fatal("user repo", zap.Error(err))
	}
	librarySvc := service.NewService(repo, log)
	authSvc := service.NewAuthService(userRepo, log, cfg.TokenTTL)

	h := handler.New(librarySvc, authSvc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
