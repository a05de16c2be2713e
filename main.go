package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avilaj/bookwish-be/internal/api"
	"github.com/avilaj/bookwish-be/internal/auth"
	"github.com/avilaj/bookwish-be/internal/config"
	"github.com/avilaj/bookwish-be/internal/database"
	"github.com/avilaj/bookwish-be/internal/logger"
	"github.com/avilaj/bookwish-be/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init()

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply database migrations: %v", err)
	}

	// Auth primitives are built once and shared read-only
	hasher := auth.DefaultHasher()
	codec := auth.NewCodec([]byte(cfg.SecretKey), cfg.TokenTTL)

	// Set up services
	userService := services.NewUserService(db, hasher)
	authService := services.NewAuthService(userService, hasher, codec)
	wishlistService := services.NewWishlistService(db)
	bookService := services.NewBookService(cfg.GoogleBooksAPIKey)

	// Set up router
	router := api.NewRouter(authService, userService, wishlistService, bookService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on port %d\n", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
