package app

import (
	"context"
	"net/http"

	"notes-auth/internal/account"
	"notes-auth/internal/auth"
	"notes-auth/internal/auth/handler"
	"notes-auth/internal/config"
	"notes-auth/internal/middleware"
	"notes-auth/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var accounts account.Store = account.NewMemoryStore()
	if infra.DB != nil {
		accounts = account.NewPostgresStore(infra.DB)
	}

	var sessionStore session.Store = session.NewMemoryStore()
	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	}

	sessions := session.NewManager(sessionStore, cfg.SessionTTL)
	service := auth.NewService(accounts, sessions)

	authHandler := handler.NewHandler(
		service,
		auth.NewLoginLimiter(),
		session.CookieOptions{
			Secure:   cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		},
	)

	authMiddleware := middleware.NewAuthMiddleware(sessions)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	authHandler.RegisterRoutes(router, middleware.GinRequireAuth(authMiddleware))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		if infra.DB != nil {
			return infra.DB.Close()
		}
		return nil
	}, nil
}
