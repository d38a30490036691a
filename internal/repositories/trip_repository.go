package repositories

import (
	"context"
	"database/sql"
	"errors"

	intconfig "github.com/Mpictdev01/adventure-hub/internal/config"
	"github.com/Mpictdev01/adventure-hub/internal/domain"
	"github.com/Mpictdev01/adventure-hub/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TripRepository) GetByID(ctx context.Context, id string) (models.Trip, error) {
	var (
		t     models.Trip
		badge string
	)
	err := r.db().QueryRowContext(ctx, `
		SELECT id,
		       title,
		       COALESCE(location,''),
		       COALESCE(badge,''),
		       COALESCE(price,''),
		       COALESCE(date,''),
		       COALESCE(image_url,'')
		FROM trips
		WHERE id=? LIMIT 1`, id).Scan(&t.ID, &t.Title, &t.Location, &badge, &t.Price, &t.Date, &t.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Trip{}, domain.NotFoundError{Resource: "trip", ID: id}
	}
	if err != nil {
		return models.Trip{}, err
	}
	t.Badge = models.TripBadge(badge)
	if t.Badge != models.BadgePrivateTrip {
		t.Badge = models.BadgeOpenTrip
	}
	return t, nil
}
