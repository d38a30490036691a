package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables lists every table the API owns, in creation order.
var Tables = []string{"trips", "bank_accounts", "bookings", "admin_users"}

var ddl = map[string]string{
	"trips": `CREATE TABLE IF NOT EXISTS trips (
		id VARCHAR(64) PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		badge VARCHAR(32) NOT NULL DEFAULT 'Open Trip',
		price VARCHAR(64) NOT NULL DEFAULT '',
		date VARCHAR(64) NULL,
		image_url TEXT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"bank_accounts": `CREATE TABLE IF NOT EXISTS bank_accounts (
		id VARCHAR(64) PRIMARY KEY,
		bank_name VARCHAR(128) NOT NULL,
		account_number VARCHAR(64) NOT NULL,
		account_name VARCHAR(255) NOT NULL,
		logo TEXT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"bookings": `CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR(32) PRIMARY KEY,
		trip_id VARCHAR(64) NOT NULL,
		trip_name VARCHAR(255) NOT NULL DEFAULT '',
		trip_image TEXT NULL,
		trip_location VARCHAR(255) NOT NULL DEFAULT '',
		customer_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(64) NOT NULL,
		date VARCHAR(32) NOT NULL,
		guests INT NOT NULL,
		total_price BIGINT NOT NULL,
		price_per_pax BIGINT NOT NULL DEFAULT 0,
		participants JSON NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'Pending',
		payment_status VARCHAR(16) NOT NULL DEFAULT 'Unpaid',
		payment_method VARCHAR(128) NOT NULL DEFAULT '',
		proof_of_payment_url MEDIUMTEXT NULL,
		version BIGINT NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		INDEX idx_bookings_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	"admin_users": `CREATE TABLE IF NOT EXISTS admin_users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL DEFAULT '',
		role VARCHAR(32) NOT NULL DEFAULT 'admin',
		password_hash VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates missing tables. Existing tables are left as they are.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, table := range Tables {
		if _, err := db.ExecContext(ctx, ddl[table]); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	return nil
}

type QueryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func HasTable(ctx context.Context, q QueryRower, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		LIMIT 1
	`, table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}

// MissingTables reports which of Tables are absent.
func MissingTables(ctx context.Context, q QueryRower) []string {
	var missing []string
	for _, t := range Tables {
		if !HasTable(ctx, q, t) {
			missing = append(missing, t)
		}
	}
	return missing
}
