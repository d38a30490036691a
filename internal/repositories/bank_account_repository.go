package repositories

import (
	"context"
	"database/sql"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

type BankAccountRepository struct {
	DB *sql.DB
}

func (r BankAccountRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BankAccountRepository) List(ctx context.Context, activeOnly bool) ([]models.BankAccount, error) {
	query := `
		SELECT id, bank_name, account_number, account_name, COALESCE(logo,''), is_active
		FROM bank_accounts`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY bank_name`

	rows, err := r.db().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BankAccount{}
	for rows.Next() {
		var a models.BankAccount
		if err := rows.Scan(&a.ID, &a.BankName, &a.AccountNumber, &a.AccountName, &a.Logo, &a.IsActive); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
