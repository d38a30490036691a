package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
	"github.com/Mpictdev01/adventure-hub/internal/utils"
)

const RoleAdmin = "admin"

// ErrInvalidCredentials is returned for an unknown user or a wrong password.
var ErrInvalidCredentials = errors.New("username atau password salah")

// ErrInvalidToken covers malformed, expired and wrongly signed tokens.
var ErrInvalidToken = errors.New("token tidak valid")

type AuthService struct {
	Users  AdminUserStore
	Secret []byte
	TTL    time.Duration
	Now    func() time.Time
}

type Claims struct {
	Subject string
	Role    string
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the bcrypt hash and issues an HS256 token.
func (s AuthService) Login(ctx context.Context, username, password string) (string, models.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", models.AdminUser{}, domain.ValidationError{Field: "username", Msg: "username dan password wajib diisi"}
	}
	u, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.AdminUser{}, ErrInvalidCredentials
		}
		return "", models.AdminUser{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", models.AdminUser{}, ErrInvalidCredentials
	}

	ttl := s.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.Username,
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.AdminUser{}, fmt.Errorf("sign token: %w", err)
	}
	utils.LogEvent(utils.RequestIDFrom(ctx), "auth", "login", "username="+u.Username)
	u.PasswordHash = ""
	return signed, u, nil
}

// ParseToken validates signature, algorithm and expiry.
func (s AuthService) ParseToken(raw string) (Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	return Claims{Subject: sub, Role: role}, nil
}

// HashPassword is used when seeding admin users.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

type AdminSeeder interface {
	CreateIfMissing(ctx context.Context, u models.AdminUser) (bool, error)
}

// SeedAdmin makes sure the bootstrap admin exists. An existing account keeps
// its password.
func SeedAdmin(ctx context.Context, store AdminSeeder, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	created, err := store.CreateIfMissing(ctx, models.AdminUser{
		Username:     username,
		Name:         "Administrator",
		Role:         RoleAdmin,
		PasswordHash: hash,
	})
	if err != nil {
		return fmt.Errorf("seed admin %s: %w", username, err)
	}
	if created {
		utils.LogEvent("", "auth", "seed_admin", "created admin user "+username)
	}
	return nil
}
