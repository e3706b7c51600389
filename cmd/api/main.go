// Command api serves the band site content API.
//
// @title                       Band Site CMS API
// @version                     1.0
// @description                 Content management for the band website: line-up, gigs, songs, gallery, news, contact and guestbook.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/bandsite/cms-api/docs"
	"github.com/bandsite/cms-api/internal/api"
	"github.com/bandsite/cms-api/internal/core/service"
	"github.com/bandsite/cms-api/internal/core/token"
	"github.com/bandsite/cms-api/internal/infrastructure/config"
	mongodb "github.com/bandsite/cms-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bandsite/cms-api/internal/infrastructure/db/redis"
	"github.com/bandsite/cms-api/internal/infrastructure/http/handlers"
	"github.com/bandsite/cms-api/internal/infrastructure/media"
	"github.com/bandsite/cms-api/internal/infrastructure/queue"
	"github.com/bandsite/cms-api/pkg/logger"
)

const (
	serviceName     = "cms-api"
	cleanupWorkers  = 2
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		// The logger may not exist yet.
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
		Service:     serviceName,
	})

	policy, err := api.ParsePolicy(cfg.RolePolicy)
	if err != nil {
		return err
	}

	codec, err := token.NewCodec(cfg.JWTSecret, cfg.TokenLifetime.Duration())
	if err != nil {
		return err
	}

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	if err := mongodb.EnsureValidators(ctx, db); err != nil {
		return err
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// --- Media ---
	host, err := media.NewCloudinary(media.Config{
		CloudName: cfg.Cloudinary.CloudName,
		APIKey:    cfg.Cloudinary.APIKey,
		APISecret: cfg.Cloudinary.APISecret,
		Folder:    cfg.Cloudinary.Folder,
	})
	if err != nil {
		return err
	}
	cleaner := queue.NewDispatcher(cleanupWorkers, host, log)
	cleaner.Start(ctx)

	// --- Services ---
	users := mongodb.NewUserRepository(db)
	text := service.NewTextProcessor()

	e := api.NewRouter(api.Dependencies{
		Log:            log,
		Development:    cfg.Development(),
		CORSOrigins:    cfg.CORSOrigins,
		UploadMaxBytes: cfg.UploadMaxBytes,
		Policy:         policy,
		TrustedProxies: cfg.TrustedProxies,
		Verifier:       codec,
		Limiter:        redisdb.NewRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window),
		Checks: map[string]handlers.Check{
			"mongodb": handlers.MongoCheck(db),
			"redis":   handlers.RedisCheck(rdb),
		},

		Auth:      service.NewAuthService(users, codec, log),
		Users:     service.NewUserService(users, log),
		Members:   service.NewMemberService(mongodb.NewMemberRepository(db), cleaner),
		Gigs:      service.NewGigService(mongodb.NewGigRepository(db)),
		Songs:     service.NewSongService(mongodb.NewSongRepository(db)),
		Gallery:   service.NewGalleryService(mongodb.NewGalleryRepository(db), cleaner),
		News:      service.NewNewsService(mongodb.NewNewsRepository(db), text, cleaner, log),
		Contact:   service.NewContactService(mongodb.NewContactRepository(db), text, log),
		Guestbook: service.NewGuestbookService(mongodb.NewGuestbookRepository(db), text, log),
		Uploads:   service.NewUploadService(host, cfg.UploadMaxBytes, log),
	})

	// --- Serve ---
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
