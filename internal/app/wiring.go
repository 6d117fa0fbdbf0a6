package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/projecthub-backend/internal/adapter/postgres"
	companyrepo "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres/company"
	tokenrepo "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/projecthub-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/projecthub-backend/internal/adapter/redis"
	"github.com/heartmarshall/projecthub-backend/internal/auth"
	"github.com/heartmarshall/projecthub-backend/internal/config"
	authsvc "github.com/heartmarshall/projecthub-backend/internal/service/auth"
	companysvc "github.com/heartmarshall/projecthub-backend/internal/service/company"
	"github.com/heartmarshall/projecthub-backend/internal/service/refreshtoken"
	"github.com/heartmarshall/projecthub-backend/internal/transport/middleware"
	"github.com/heartmarshall/projecthub-backend/internal/transport/rest"
)

type loginLimiter interface {
	Check(ctx context.Context, email string) error
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// NewHandler builds repositories, services and the router on top of an open
// pool. redisClient may be nil, which disables login throttling. The returned
// cleanup stops background workers owned by the handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, redisClient *goredis.Client) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	companies := companyrepo.New(pool)
	tokens := tokenrepo.New(pool)

	var limiter loginLimiter = redis.NoopLimiter{}
	checks := []rest.Check{{Name: "database", Pinger: pool}}
	if redisClient != nil {
		limiter = redis.NewLoginLimiter(redisClient, cfg.Redis.KeyPrefix, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginAttemptWindow)
		checks = append(checks, rest.Check{Name: "redis", Pinger: rest.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})})
	}

	store := refreshtoken.NewStore(logger, users, tokens, txm, cfg.Auth.RefreshTokenTTL())
	authService := authsvc.NewService(
		logger,
		users,
		companies,
		store,
		txm,
		auth.NewPasswordHasher(cfg.Auth.PasswordHashCost),
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		limiter,
		cfg.Auth,
	)
	companyService := companysvc.NewService(logger, companies)

	rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:    rest.NewAuthHandler(authService, logger),
		Company: rest.NewCompanyHandler(companyService, logger),
		Health:  rest.NewHealthHandler(BuildVersion(), checks...),
		Global: []middleware.Middleware{
			middleware.RequestID(),
			middleware.Recovery(logger),
			middleware.CORS(cfg.CORS),
			middleware.Auth(authService),
			middleware.Logger(logger),
		},
		AuthLimit: rl.Limit(cfg.RateLimit.AuthPerMinute),
	})

	return router, rl.Stop
}
