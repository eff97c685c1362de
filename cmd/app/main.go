package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/taskhub/internal/config"
	"github.com/bagdasarian/taskhub/internal/db"
	"github.com/bagdasarian/taskhub/internal/handler"
	"github.com/bagdasarian/taskhub/internal/handler/server"
	"github.com/bagdasarian/taskhub/internal/repository/postgres"
	"github.com/bagdasarian/taskhub/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgres.NewUserRepository(database)
	companyRepo := postgres.NewCompanyRepository(database)
	personalRepo := postgres.NewPersonalAccountRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	categoryRepo := postgres.NewCategoryRepository(database)
	commentRepo := postgres.NewCommentRepository(database)
	notificationRepo := postgres.NewNotificationRepository(database)

	tokenService := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	userService := service.NewUserService(userRepo, tokenService)
	companyService := service.NewCompanyService(companyRepo, personalRepo, userRepo, taskRepo, notificationRepo, logger)
	membershipService := service.NewMembershipService(companyRepo, userRepo, taskRepo, notificationRepo)
	inviteService := service.NewInviteService(companyRepo, userRepo, notificationRepo)
	taskService := service.NewTaskService(taskRepo, companyRepo, personalRepo, userRepo, categoryRepo, notificationRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, personalRepo)
	commentService := service.NewCommentService(commentRepo, taskRepo)
	notificationService := service.NewNotificationService(notificationRepo, userRepo, companyRepo, personalRepo, taskRepo)

	h := handler.NewHandler(
		userService,
		companyService,
		membershipService,
		inviteService,
		taskService,
		categoryService,
		commentService,
		notificationService,
		tokenService,
	)
	srv := server.NewServer(h, cfg.HTTP.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
