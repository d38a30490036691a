package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	intdb "github.com/Mpictdev01/adventure-hub/internal/db"
	"github.com/Mpictdev01/adventure-hub/internal/events"
	router "github.com/Mpictdev01/adventure-hub/internal/http"
	"github.com/Mpictdev01/adventure-hub/internal/http/handlers"
	"github.com/Mpictdev01/adventure-hub/internal/repositories"
	"github.com/Mpictdev01/adventure-hub/internal/services"
)

func main() {
	env := intconfig.LoadEnv()
	if err := env.ResolveJWTSecret(); err != nil {
		log.Fatalf("Konfigurasi tidak valid: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		log.Fatalf("Gagal terhubung ke database: %v", err)
	}
	defer intconfig.CloseDB()

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 10*time.Second)
	if err := intdb.EnsureSchema(schemaCtx, db); err != nil {
		cancelSchema()
		log.Fatalf("Gagal menyiapkan skema: %v", err)
	}
	if err := services.SeedAdmin(schemaCtx, repositories.AdminUserRepository{DB: db}, env.AdminUsername, env.AdminPassword); err != nil {
		cancelSchema()
		log.Fatalf("Gagal menyiapkan admin: %v", err)
	}
	cancelSchema()

	var pub events.Publisher = events.Nop{}
	if env.RabbitMQURL != "" {
		amqpPub, err := events.Dial(env.RabbitMQURL)
		if err != nil {
			log.Printf("warning: RabbitMQ tidak tersedia, event booking dimatikan: %v", err)
		} else {
			defer amqpPub.Close()
			pub = amqpPub
		}
	}

	deps := services.NewDeps(db, env, pub)
	h := handlers.NewHandler(db, deps)
	r := router.NewRouter(env, h, deps.Auth)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
