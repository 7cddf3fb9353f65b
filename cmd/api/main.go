package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	_ "github.com/zazzlife/zazz-api/docs" // Swagger docs (generated)
	"github.com/zazzlife/zazz-api/internal/album"
	"github.com/zazzlife/zazz-api/internal/apiauth"
	"github.com/zazzlife/zazz-api/internal/auth"
	"github.com/zazzlife/zazz-api/internal/cache"
	"github.com/zazzlife/zazz-api/internal/client"
	"github.com/zazzlife/zazz-api/internal/comment"
	"github.com/zazzlife/zazz-api/internal/config"
	"github.com/zazzlife/zazz-api/internal/database"
	"github.com/zazzlife/zazz-api/internal/email"
	"github.com/zazzlife/zazz-api/internal/event"
	"github.com/zazzlife/zazz-api/internal/feed"
	"github.com/zazzlife/zazz-api/internal/follow"
	httpServer "github.com/zazzlife/zazz-api/internal/http"
	"github.com/zazzlife/zazz-api/internal/logging"
	"github.com/zazzlife/zazz-api/internal/notification"
	"github.com/zazzlife/zazz-api/internal/photo"
	"github.com/zazzlife/zazz-api/internal/post"
	"github.com/zazzlife/zazz-api/internal/ratelimit"
	"github.com/zazzlife/zazz-api/internal/reward"
	"github.com/zazzlife/zazz-api/internal/token"
	"github.com/zazzlife/zazz-api/internal/user"
	"github.com/zazzlife/zazz-api/internal/vote"
	"github.com/zazzlife/zazz-api/internal/weekly"
)

// @title           Zazz API
// @version         1.0
// @description     Social network API secured by signed client requests and HMAC bearer tokens.

// @contact.name   Zazz API Support
// @contact.email  support@zazzlife.com

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey ZazzHMAC
// @in header
// @name Authorization
// @description ZAZZ-HMAC-SHA256 {clientId}:{signature} plus X-Zazz-Date, X-Zazz-Nonce and, on user routes, X-Access-Token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		applied, err := database.Migrate(ctx, db.DB)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "versions", applied)
	}

	redisClient, err := initRedis(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize Redis: %w", err)
	}
	defer redisClient.Close()

	codec, err := token.NewCodec(cfg.Auth.TokenSecret,
		token.WithIssuer(cfg.Auth.Issuer),
		token.WithAudience(cfg.Auth.Audience),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}

	clientKeys := client.NewCachedKeyStore(client.NewRepository(db), cfg.Cache.Capacity, cfg.Cache.ClientKeyTTL)
	authorizer := apiauth.NewAuthorizer(clientKeys, apiauth.NewRedisNonceGuard(redisClient), codec, cfg.Auth.ClockSkew)
	authMiddleware := apiauth.NewMiddleware(authorizer, cfg.Server.MaxBodyBytes)

	handlers, err := buildHandlers(cfg, db, redisClient, codec, logger)
	if err != nil {
		return err
	}

	router := httpServer.NewRouter(cfg, handlers, authMiddleware, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// buildHandlers wires repositories and services into the API handlers
func buildHandlers(cfg *config.Config, db *bun.DB, redisClient *redis.Client, codec *token.Codec, logger *logging.Logger) (httpServer.Handlers, error) {
	tx := database.NewTransactor(db)

	users := user.NewRepository(db)
	directory := user.NewDirectory(users,
		cache.NewRing[string, int64](cfg.Cache.Capacity),
		cache.NewRing[int64, string](cfg.Cache.Capacity),
	)

	resetTokens, err := auth.NewPasetoService(cfg.Auth.PasetoKey)
	if err != nil {
		return httpServer.Handlers{}, fmt.Errorf("failed to initialize PASETO service: %w", err)
	}

	authService := auth.NewService(auth.Deps{
		Users:         users,
		RefreshTokens: auth.NewRedisRepository(redisClient),
		ResetGuard:    auth.NewPasswordResetRepository(redisClient),
		ResetTokens:   resetTokens,
		Codec:         codec,
		Email:         email.NewService(cfg.Email),
		Logger:        logger,
	}, cfg.Auth.AccessTokenDuration, cfg.Auth.RefreshTokenDuration)

	feeds := feed.NewRepository(db)
	follows := follow.NewRepository(db)
	photos := photo.NewRepository(db)
	posts := post.NewRepository(db)
	events := event.NewRepository(db)
	albums := album.NewRepository(db)

	notifications := notification.NewService(notification.NewRepository(db), follows)
	comments := comment.NewService(comment.NewRepository(db), comment.Owners{
		Photos: photos,
		Posts:  posts,
		Events: events,
	}, notifications, tx)

	eventService := event.NewService(event.Deps{
		Events:        events,
		Tags:          event.NewTagRepository(db),
		Accounts:      users,
		Feeds:         feeds,
		Comments:      comments,
		Notifications: notifications,
		Tx:            tx,
	})

	photoService := photo.NewService(photos, albums, feeds, comments, notifications, tx)

	return httpServer.Handlers{
		Auth:          auth.NewHandler(authService, ratelimit.NewLimiter(redisClient)),
		Users:         user.NewHandler(users, directory),
		Posts:         post.NewHandler(post.NewService(posts, feeds, comments, notifications, tx)),
		Events:        event.NewHandler(eventService),
		Photos:        photo.NewHandler(photoService),
		Albums:        album.NewHandler(album.NewService(albums, photoService, tx)),
		Comments:      comment.NewHandler(comments),
		Votes:         vote.NewHandler(vote.NewService(vote.NewRepository(db), photos, tx)),
		Follows:       follow.NewHandler(follow.NewService(follows, users, notifications, tx)),
		Notifications: notification.NewHandler(notifications),
		Feed:          feed.NewHandler(feeds),
		Rewards:       reward.NewHandler(reward.NewService(reward.NewRepository(db), users, tx)),
		Weeklies:      weekly.NewHandler(weekly.NewService(weekly.NewRepository(db), users, photos, tx)),
	}, nil
}

// initRedis connects to Redis and verifies the connection
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}
