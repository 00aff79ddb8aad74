package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mlukic92/blogd/internal/auth"
	"github.com/mlukic92/blogd/internal/cache"
	"github.com/mlukic92/blogd/internal/config"
	"github.com/mlukic92/blogd/internal/database"
	postgresrepo "github.com/mlukic92/blogd/internal/repository/postgres"
	"github.com/mlukic92/blogd/internal/service"
	"github.com/mlukic92/blogd/internal/transport/http/handlers"
	"github.com/mlukic92/blogd/internal/transport/http/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout

	cfg := config.Load()
	ctx := context.Background()

	// Database
	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Info("connected to database")

	if err := database.CreateTables(ctx, pool); err != nil {
		log.Fatal(err)
	}

	// Cache
	store, err := cache.NewRedisStore(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()
	log.Info("connected to redis")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	articleRepo := postgresrepo.NewArticleRepo(pool)
	heroRepo := postgresrepo.NewHeroRepo(pool)

	// Services
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, codec)
	articleService := service.NewArticleService(articleRepo)
	heroService := service.NewHeroService(heroRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	articleHandler := handlers.NewArticleHandler(articleService, log)
	heroHandler := handlers.NewHeroHandler(heroService, log)
	cacheHandler := handlers.NewCacheHandler(store, log)

	// Session middleware
	session := middleware.Session(authService, log)

	// Routes
	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})
	mux.HandleFunc("POST /api/v1/users/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/users/token", authHandler.Token)
	mux.HandleFunc("GET /api/v1/articles", articleHandler.List)

	// Protected - Users
	mux.Handle("GET /api/v1/users/me", session(http.HandlerFunc(authHandler.Me)))

	// Protected - Articles
	mux.Handle("POST /api/v1/articles", session(http.HandlerFunc(articleHandler.Create)))
	mux.Handle("GET /api/v1/articles/{id}", session(http.HandlerFunc(articleHandler.Get)))
	mux.Handle("PUT /api/v1/articles/{id}", session(http.HandlerFunc(articleHandler.Update)))
	mux.Handle("DELETE /api/v1/articles/{id}", session(http.HandlerFunc(articleHandler.Delete)))

	// Protected - Heroes
	mux.Handle("GET /api/v1/heroes", session(http.HandlerFunc(heroHandler.List)))
	mux.Handle("GET /api/v1/heroes/{id}", session(http.HandlerFunc(heroHandler.Get)))
	mux.Handle("POST /api/v1/heroes", session(http.HandlerFunc(heroHandler.Create)))
	mux.Handle("PUT /api/v1/heroes/{id}", session(http.HandlerFunc(heroHandler.Update)))
	mux.Handle("DELETE /api/v1/heroes/{id}", session(http.HandlerFunc(heroHandler.Delete)))

	// Protected - Cache
	mux.Handle("PUT /api/v1/cache/{key}", session(http.HandlerFunc(cacheHandler.Set)))
	mux.Handle("GET /api/v1/cache/{key}", session(http.HandlerFunc(cacheHandler.Get)))
	mux.Handle("DELETE /api/v1/cache/{key}", session(http.HandlerFunc(cacheHandler.Delete)))
	mux.Handle("GET /api/v1/cache", session(http.HandlerFunc(cacheHandler.Keys)))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: middleware.RequestID(middleware.CORS(mux)),
	}

	go func() {
		log.Infof("starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
