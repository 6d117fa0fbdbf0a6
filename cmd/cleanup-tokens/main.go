// Command cleanup-tokens physically removes expired refresh tokens. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/projecthub-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/projecthub-backend/internal/app"
	"github.com/heartmarshall/projecthub-backend/internal/config"
	"github.com/heartmarshall/projecthub-backend/internal/service/refreshtoken"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store := refreshtoken.NewStore(logger, userrepo.New(pool), tokenrepo.New(pool),
		postgres.NewTxManager(pool), cfg.Auth.RefreshTokenTTL())

	deleted, err := store.DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("cleanup tokens completed", slog.Int64("deleted", deleted))
	fmt.Printf("Deleted %d expired refresh tokens.\n", deleted)
}
