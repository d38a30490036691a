package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	JWTSecret     string
	AdminTokenTTL time.Duration

	// AdminPassword seeds AdminUsername on startup when set.
	AdminUsername string
	AdminPassword string

	UploadDir     string
	PublicBaseURL string

	CORSAllowedOrigins []string
	RabbitMQURL        string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

func LoadEnv() Env {
	env := Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:     strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminTokenTTL: 24 * time.Hour,
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		UploadDir:     getenv("UPLOAD_DIR", "./uploads"),
		PublicBaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/"),
		RabbitMQURL:   strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
	}

	env.DBDSN = strings.TrimSpace(os.Getenv("DB_DSN"))
	if env.DBDSN == "" {
		env.DBDSN = fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
			getenv("DB_USER", "root"),
			os.Getenv("DB_PASS"),
			getenv("DB_HOST", "127.0.0.1:3306"),
			getenv("DB_NAME", "adventure_hub"),
		)
	}

	if raw := strings.TrimSpace(os.Getenv("ADMIN_TOKEN_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			env.AdminTokenTTL = d
		}
	}

	env.CORSAllowedOrigins = defaultOrigins
	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		env.CORSAllowedOrigins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSAllowedOrigins = append(env.CORSAllowedOrigins, o)
			}
		}
	}

	return env
}

// ErrMissingJWTSecret stops a release build from signing admin tokens with a
// guessable key.
var ErrMissingJWTSecret = errors.New("JWT_SECRET wajib diisi saat GIN_MODE=release")

// ResolveJWTSecret fails in release mode without JWT_SECRET. Elsewhere it
// generates a random per-process secret, so tokens do not survive a restart.
func (e *Env) ResolveJWTSecret() error {
	if e.JWTSecret != "" {
		return nil
	}
	if e.GinMode == "release" {
		return ErrMissingJWTSecret
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generate jwt secret: %w", err)
	}
	e.JWTSecret = hex.EncodeToString(buf)
	log.Println("warning: JWT_SECRET kosong, memakai secret acak sementara")
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
