package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hisarandre/P5-yoga-app/internal/config"
	"github.com/hisarandre/P5-yoga-app/internal/crypto"
	"github.com/hisarandre/P5-yoga-app/internal/logging"
	"github.com/hisarandre/P5-yoga-app/internal/model"
	"github.com/hisarandre/P5-yoga-app/internal/repository"
	"github.com/hisarandre/P5-yoga-app/internal/server"
)

func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store repository.Store
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connection failed: %v", err)
		}
		defer pool.Close()
		postgres := repository.NewPostgres(pool)
		if err := postgres.Migrate(ctx); err != nil {
			log.Fatalf("db migration failed: %v", err)
		}
		store = postgres
	} else {
		memory := repository.NewMemory()
		if err := seedDemoData(ctx, memory); err != nil {
			log.Fatalf("demo seed failed: %v", err)
		}
		logger.Info("no DATABASE_URL set, using in-memory store with demo data")
		store = memory
	}

	srv := server.NewServer(cfg, store, logger)
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("yoga api listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// seedDemoData mirrors the SQL seed used with a real database: two teachers
// and an admin account.
func seedDemoData(ctx context.Context, store repository.Store) error {
	for _, teacher := range []model.Teacher{
		{FirstName: "Margot", LastName: "DELAHAYE"},
		{FirstName: "Hélène", LastName: "THIERCELIN"},
	} {
		if _, err := store.CreateTeacher(ctx, teacher); err != nil {
			return err
		}
	}

	hash, err := crypto.HashPassword("test!1234")
	if err != nil {
		return err
	}
	_, err = store.CreateUser(ctx, model.User{
		Email:        "yoga@studio.com",
		FirstName:    "Admin",
		LastName:     "Admin",
		Admin:        true,
		PasswordHash: hash,
	})
	return err
}
