package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/ha0himanshuarora/QuickDesk/internal/auth"
	"github.com/ha0himanshuarora/QuickDesk/internal/cache"
	"github.com/ha0himanshuarora/QuickDesk/internal/config"
	"github.com/ha0himanshuarora/QuickDesk/internal/db"
	httphandler "github.com/ha0himanshuarora/QuickDesk/internal/handler/http"
	"github.com/ha0himanshuarora/QuickDesk/internal/handler/middleware"
	"github.com/ha0himanshuarora/QuickDesk/internal/infrastructure/search"
	"github.com/ha0himanshuarora/QuickDesk/internal/repository/postgres"
	appretry "github.com/ha0himanshuarora/QuickDesk/internal/retry"
	"github.com/ha0himanshuarora/QuickDesk/internal/usecase"
)

// splitAndTrim splits s by sep and trims results.
func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func main() {
	zlog.Init()
	zlog.Logger.Info().Msg("zlog initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath := "config.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "/app/config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to load config")
	}

	masterDSN := cfg.Database.DSN
	slaves := []string{}
	if strings.TrimSpace(cfg.Database.Slaves) != "" {
		slaves = splitAndTrim(cfg.Database.Slaves, ",")
	}
	dbOpts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetimeSec) * time.Second,
	}

	var database *dbpg.DB
	for i := 0; i < cfg.Database.ConnectRetries; i++ {
		database, err = dbpg.New(masterDSN, slaves, dbOpts)
		if err == nil {
			if pingErr := database.Master.Ping(); pingErr == nil {
				break
			} else {
				zlog.Logger.Warn().Err(pingErr).Msg("db ping failed")
				err = pingErr
			}
		}
		zlog.Logger.Warn().Err(err).Msgf("waiting for database (attempt %d/%d)", i+1, cfg.Database.ConnectRetries)
		time.Sleep(time.Duration(cfg.Database.ConnectRetryDelaySec) * time.Second)
	}
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database after retries")
	}

	if err := db.RunMigrations(database, cfg.Migrations.Path); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("migrations failed")
	}

	strategy := appretry.DefaultStrategy
	ticketRepo := postgres.NewTicketRepository(database, strategy)
	commentRepo := postgres.NewCommentRepository(database, strategy)
	userRepo := postgres.NewUserRepository(database, strategy)
	categoryRepo := postgres.NewCategoryRepository(database, strategy)
	requestRepo := postgres.NewRoleRequestRepository(database, strategy)
	voteRepo := postgres.NewVoteRepository(database, strategy)

	// optional: redis cache for the community listing
	var ticketCache usecase.TicketCache
	if cfg.Redis.Addr != "" {
		rdb := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		ticketCache = cache.NewTicketCache(rdb, cfg.Cache.Prefix, time.Duration(cfg.Cache.TTLSec)*time.Second, strategy)
		zlog.Logger.Info().Str("redis", cfg.Redis.Addr).Msg("redis cache initialized")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	searcher := search.NewPostgresFullText(ticketRepo)

	ticketSvc := usecase.NewTicketUsecase(ticketRepo, commentRepo, searcher, ticketCache)
	commentSvc := usecase.NewCommentUsecase(ticketRepo, commentRepo)
	voteSvc := usecase.NewVoteUsecase(ticketRepo, voteRepo, ticketCache)
	authSvc := usecase.NewAuthUsecase(userRepo, requestRepo, tokens)
	adminSvc := usecase.NewAdminUsecase(categoryRepo, requestRepo, userRepo, ticketRepo)

	authMW := middleware.AuthMiddleware(tokens)
	server := httphandler.NewServer(
		httphandler.ServerOptions{
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		},
		authMW,
		httphandler.NewAuthHandler(authSvc),
		httphandler.NewTicketHandler(ticketSvc, voteSvc),
		httphandler.NewCommentHandler(commentSvc),
		httphandler.NewAdminHandler(adminSvc),
	)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.Addr).Msg("starting HTTP server")
		if err := server.Start(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			zlog.Logger.Fatal().Err(err).Msg("failed to start API server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("graceful shutdown failed")
	}
	zlog.Logger.Info().Msg("server stopped")
}
