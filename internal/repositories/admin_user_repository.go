package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

type AdminUserRepository struct {
	DB *sql.DB
}

func (r AdminUserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AdminUserRepository) GetByUsername(ctx context.Context, username string) (models.AdminUser, error) {
	var u models.AdminUser
	err := r.db().QueryRowContext(ctx, `
		SELECT id, username, COALESCE(name,''), COALESCE(role,'admin'), password_hash
		FROM admin_users
		WHERE username = ?
		LIMIT 1`, username).Scan(&u.ID, &u.Username, &u.Name, &u.Role, &u.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AdminUser{}, domain.NotFoundError{Resource: "admin user", ID: username}
	}
	return u, err
}

// CreateIfMissing inserts u unless the username is taken. It reports whether
// a row was written.
func (r AdminUserRepository) CreateIfMissing(ctx context.Context, u models.AdminUser) (bool, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT IGNORE INTO admin_users (username, name, role, password_hash)
		VALUES (?, ?, ?, ?)`, u.Username, u.Name, u.Role, u.PasswordHash)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
