package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"forum-api/internal/config"
	"forum-api/internal/domain"
	apphttp "forum-api/internal/http"
	"forum-api/internal/repository/sqlite"
	"forum-api/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.TokenSecret) == "" {
		logger.Fatalf("auth token secret is required")
	}
	if cfg.Auth.SessionTTLHours <= 0 {
		logger.Fatalf("session ttl must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := sqlite.NewUserRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	questionRepo := sqlite.NewQuestionRepository(db)
	answerRepo := sqlite.NewAnswerRepository(db)

	if err := userRepo.Init(ctx); err != nil {
		logger.Fatalf("init user repository: %v", err)
	}
	if err := sessionRepo.Init(ctx); err != nil {
		logger.Fatalf("init session repository: %v", err)
	}
	if err := questionRepo.Init(ctx); err != nil {
		logger.Fatalf("init question repository: %v", err)
	}
	if err := answerRepo.Init(ctx); err != nil {
		logger.Fatalf("init answer repository: %v", err)
	}

	sessionTTL := time.Duration(cfg.Auth.SessionTTLHours) * time.Hour
	authService := service.NewAuthService(userRepo, sessionRepo, cfg.Auth.TokenSecret, sessionTTL)
	userService := service.NewUserService(authService, userRepo)
	questionService := service.NewQuestionService(authService, questionRepo, userRepo)
	answerService := service.NewAnswerService(authService, answerRepo, questionRepo)

	if err := bootstrapAdmin(ctx, cfg, authService, logger); err != nil {
		logger.Fatalf("bootstrap admin: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(authService, userService, questionService, answerService, logger)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}

// bootstrapAdmin creates the configured admin account if it does not exist
// yet. Sign-up itself only ever produces members, so this is the single
// path by which an admin comes to be.
func bootstrapAdmin(ctx context.Context, cfg config.Config, auth service.AuthService, logger *logrus.Logger) error {
	username := strings.TrimSpace(cfg.Admin.Username)
	if username == "" {
		return nil
	}

	admin := &domain.User{
		Username: username,
		Email:    cfg.Admin.Email,
		Role:     domain.RoleAdmin,
	}
	if _, err := auth.SignUp(ctx, admin, cfg.Admin.Password); err != nil {
		if domain.KindOf(err) == domain.KindConflict {
			return nil // already provisioned
		}
		return err
	}
	logger.Infof("created admin user %s", username)
	return nil
}
