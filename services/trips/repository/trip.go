package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
)

// TripRepo implements trip persistence over Postgres
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// CreateTrip inserts a new trip row
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	query := `
		INSERT INTO trips (
			id, match_id, driver_id, rider_id,
			pickup_station, destination, fare, status, created_at
		) VALUES (
			:id, :match_id, :driver_id, :rider_id,
			:pickup_station, :destination, :fare, :status, :created_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return fmt.Errorf("failed to insert trip %s: %w", trip.ID, err)
	}
	return nil
}

// GetTrip returns the trip with the given id
func (r *TripRepo) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	query := `
		SELECT id, match_id, driver_id, rider_id,
		       pickup_station, destination, fare, status, created_at
		FROM trips
		WHERE id = $1
	`
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, query, tripID)
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("trip %s not found", tripID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip %s: %w", tripID, err)
	}
	return &trip, nil
}
