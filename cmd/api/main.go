package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resume-site/resume-backend/config"
	authrepo "github.com/resume-site/resume-backend/internal/auth/repository"
	authsvc "github.com/resume-site/resume-backend/internal/auth/service"
	"github.com/resume-site/resume-backend/internal/auth/token"
	"github.com/resume-site/resume-backend/internal/bootstrap"
	"github.com/resume-site/resume-backend/internal/presence"
)

const serviceName = "resume-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The registry must keep working without a database, so a failed
	// connect only degrades the CRUD and auth groups.
	db, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Printf("warning: database unavailable, starting in degraded mode: %v", err)
		db = nil
	} else {
		defer db.Close()

		if err := bootstrap.EnsureSchema(ctx, db); err != nil {
			log.Printf("warning: %v", err)
		} else if err := seedAdmin(ctx, db, cfg); err != nil {
			log.Printf("warning: seed admin user: %v", err)
		}
	}

	tokens := token.New([]byte(cfg.Auth.SecretKey), cfg.Auth.TokenTTL)

	hub := presence.NewHub()
	go hub.Run(ctx)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		Tokens:      tokens,
		Hub:         hub,
		DB:          db,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func seedAdmin(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	users := authrepo.NewUserRepository(db)
	hash := authsvc.HashPassword(cfg.Auth.AdminPassword)
	if err := users.EnsureAdmin(ctx, cfg.Auth.AdminUsername, hash); err != nil {
		return err
	}
	log.Printf("admin user ensured: username=%s", cfg.Auth.AdminUsername)
	return nil
}
