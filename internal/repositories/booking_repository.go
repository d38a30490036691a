package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `
	id,
	trip_id,
	COALESCE(trip_name,''),
	COALESCE(trip_image,''),
	COALESCE(trip_location,''),
	customer_name,
	email,
	phone,
	date,
	guests,
	total_price,
	COALESCE(price_per_pax,0),
	participants,
	status,
	payment_status,
	COALESCE(payment_method,''),
	COALESCE(proof_of_payment_url,''),
	version,
	created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		b            models.Booking
		participants sql.NullString
		status       string
		payStatus    string
	)
	if err := row.Scan(
		&b.ID,
		&b.TripID,
		&b.TripName,
		&b.TripImage,
		&b.TripLocation,
		&b.CustomerName,
		&b.Email,
		&b.Phone,
		&b.Date,
		&b.Guests,
		&b.TotalPrice,
		&b.PricePerPax,
		&participants,
		&status,
		&payStatus,
		&b.PaymentMethod,
		&b.ProofOfPaymentURL,
		&b.Version,
		&b.CreatedAt,
	); err != nil {
		return models.Booking{}, err
	}
	b.Status = domain.BookingStatus(status)
	b.PaymentStatus = domain.PaymentStatus(payStatus)
	b.Participants = []models.Participant{}
	if participants.Valid && strings.TrimSpace(participants.String) != "" {
		if err := json.Unmarshal([]byte(participants.String), &b.Participants); err != nil {
			return models.Booking{}, fmt.Errorf("booking %s participants: %w", b.ID, err)
		}
	}
	return b, nil
}

func (r BookingRepository) Create(ctx context.Context, b models.Booking) error {
	participants := b.Participants
	if participants == nil {
		participants = []models.Participant{}
	}
	raw, err := json.Marshal(participants)
	if err != nil {
		return err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	_, err = r.db().ExecContext(ctx, `
		INSERT INTO bookings (
			id, trip_id, trip_name, trip_image, trip_location,
			customer_name, email, phone, date, guests,
			total_price, price_per_pax, participants,
			status, payment_status, payment_method, proof_of_payment_url,
			version, created_at
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.TripID, b.TripName, b.TripImage, b.TripLocation,
		b.CustomerName, b.Email, b.Phone, b.Date, b.Guests,
		b.TotalPrice, b.PricePerPax, string(raw),
		string(b.Status), string(b.PaymentStatus), b.PaymentMethod, b.ProofOfPaymentURL,
		b.Version, b.CreatedAt,
	)
	return err
}

func (r BookingRepository) GetByID(ctx context.Context, id string) (models.Booking, error) {
	row := r.db().QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", ID: id}
	}
	return b, err
}

// List returns bookings newest first.
func (r BookingRepository) List(ctx context.Context) ([]models.Booking, error) {
	rows, err := r.db().QueryContext(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateReconciliation writes status and paymentStatus in one statement and
// bumps version. With expectedVersion set the row must still carry that
// version. It reports false when no row matched.
func (r BookingRepository) UpdateReconciliation(ctx context.Context, id string, rec domain.Reconciliation, expectedVersion *int64) (bool, error) {
	query := `UPDATE bookings SET status=?, payment_status=?, version=version+1 WHERE id=?`
	args := []any{string(rec.Status), string(rec.PaymentStatus), id}
	if expectedVersion != nil {
		query += ` AND version=?`
		args = append(args, *expectedVersion)
	}
	res, err := r.db().ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r BookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db().ExecContext(ctx, `DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
