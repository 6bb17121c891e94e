package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/logger"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/services/match/pricing"
)

// priceMatch resolves the pickup station's coordinates and prices the
// pickup against the driver's last known location. A failed station
// lookup degrades to the default fare; pricing never fails a dispatch.
func (uc *MatchUC) priceMatch(ctx context.Context, pickupStation string, driver *models.DriverRoute) int {
	station, err := uc.stationGW.GetStation(ctx, pickupStation)
	if err != nil {
		logger.Warn("Station lookup failed during pricing, using default fare",
			logger.String("station_id", pickupStation),
			logger.Err(err))
		return pricing.Price(nil, driver.Location)
	}
	return pricing.Price(station, driver.Location)
}

// notify publishes a match notification and logs on failure. The match
// exists whether or not the driver was informed.
func (uc *MatchUC) notify(ctx context.Context, notification models.MatchNotification) {
	if err := uc.notifyGW.SendMatchNotification(ctx, notification); err != nil {
		logger.Warn("Failed to send match notification",
			logger.String("match_id", notification.MatchID),
			logger.String("driver_id", notification.DriverID),
			logger.Err(err))
	}
}

// MatchRiderWithDriver finds the first eligible driver for the rider's
// request, prices the pickup and persists a MATCHED match. A registry
// failure during the scan is a no-match outcome, not an error.
func (uc *MatchUC) MatchRiderWithDriver(ctx context.Context, req *models.MatchRequest) (*models.MatchOutcome, error) {
	if req.RiderID == "" {
		return nil, apperrors.Validation("rider id is required")
	}
	if req.PickupStation == "" || req.Destination == "" {
		return nil, apperrors.Validation("pickup station and destination are required")
	}

	eligible, err := uc.driverGW.ListEligible(ctx, req.PickupStation, req.Destination, "")
	if err != nil {
		logger.Warn("Eligibility scan failed, reporting no match",
			logger.String("rider_id", req.RiderID),
			logger.Err(err))
		uc.metrics.NoDriverFound.Inc()
		return &models.MatchOutcome{Found: false}, nil
	}

	driver := uc.selector(eligible)
	if driver == nil {
		uc.metrics.NoDriverFound.Inc()
		return &models.MatchOutcome{Found: false}, nil
	}

	fare := uc.priceMatch(ctx, req.PickupStation, driver)

	now := time.Now()
	m := &models.Match{
		ID:            uuid.New().String(),
		DriverID:      driver.DriverID,
		RiderID:       req.RiderID,
		PickupStation: req.PickupStation,
		Destination:   req.Destination,
		Status:        models.MatchStatusMatched,
		Fare:          fare,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.matchRepo.CreateMatch(ctx, m); err != nil {
		return nil, err
	}

	uc.metrics.MatchesCreated.Inc()
	logger.Info("Match created",
		logger.String("match_id", m.ID),
		logger.String("driver_id", m.DriverID),
		logger.String("rider_id", m.RiderID),
		logger.Int("fare", m.Fare))

	uc.notify(ctx, models.MatchNotification{
		DriverID: m.DriverID,
		RiderID:  m.RiderID,
		MatchID:  m.ID,
	})

	return &models.MatchOutcome{
		Found:    true,
		MatchID:  m.ID,
		DriverID: m.DriverID,
		Fare:     m.Fare,
	}, nil
}

// AcceptMatch confirms a match through trip creation. The trip is created
// first; only then does the match transition to CONFIRMED with the trip
// id stored. Trip creation failure leaves the match MATCHED.
func (uc *MatchUC) AcceptMatch(ctx context.Context, matchID, driverID string) (string, error) {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return "", err
	}
	if m.Status != models.MatchStatusMatched || m.DriverID != driverID {
		return "", apperrors.InvalidState("match %s is not valid for acceptance", matchID)
	}

	trip, err := uc.tripGW.CreateTrip(ctx, &models.CreateTripRequest{
		MatchID:       m.ID,
		DriverID:      m.DriverID,
		RiderID:       m.RiderID,
		PickupStation: m.PickupStation,
		Destination:   m.Destination,
		Fare:          m.Fare,
	})
	if err != nil {
		return "", apperrors.Unavailable("trip creation failed", err)
	}

	_, err = uc.matchRepo.UpdateMatch(ctx, matchID, func(current *models.Match) error {
		if current.Status != models.MatchStatusMatched || current.DriverID != driverID {
			return apperrors.InvalidState("match %s is not valid for acceptance", matchID)
		}
		current.Status = models.MatchStatusConfirmed
		current.TripID = trip.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.metrics.MatchesConfirmed.Inc()
	logger.Info("Match confirmed",
		logger.String("match_id", matchID),
		logger.String("trip_id", trip.ID))

	uc.notify(ctx, models.MatchNotification{
		DriverID: m.DriverID,
		RiderID:  m.RiderID,
		MatchID:  m.ID,
		TripID:   trip.ID,
	})

	return trip.ID, nil
}

// DeclineMatch declines a match and tries to reassign it. With a
// replacement driver the match keeps its id and MATCHED status but gets
// the new driver, a recomputed fare and a reset timestamp. Without one
// the match is CANCELLED, which is still a successful decline.
func (uc *MatchUC) DeclineMatch(ctx context.Context, matchID, driverID string) (*models.MatchOutcome, error) {
	m, err := uc.matchRepo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.Status != models.MatchStatusMatched || m.DriverID != driverID {
		return nil, apperrors.InvalidState("match %s is not valid for decline", matchID)
	}

	eligible, err := uc.driverGW.ListEligible(ctx, m.PickupStation, m.Destination, driverID)
	if err != nil {
		logger.Warn("Eligibility scan failed during reassignment",
			logger.String("match_id", matchID),
			logger.Err(err))
		eligible = nil
	}

	newDriver := uc.selector(eligible)
	if newDriver == nil {
		_, err := uc.matchRepo.UpdateMatch(ctx, matchID, func(current *models.Match) error {
			if current.Status != models.MatchStatusMatched || current.DriverID != driverID {
				return apperrors.InvalidState("match %s is not valid for decline", matchID)
			}
			current.Status = models.MatchStatusCancelled
			return nil
		})
		if err != nil {
			return nil, err
		}

		uc.metrics.MatchesCancelled.Inc()
		logger.Info("Match cancelled, no replacement driver",
			logger.String("match_id", matchID))
		return &models.MatchOutcome{Found: false, MatchID: matchID}, nil
	}

	fare := uc.priceMatch(ctx, m.PickupStation, newDriver)

	updated, err := uc.matchRepo.UpdateMatch(ctx, matchID, func(current *models.Match) error {
		if current.Status != models.MatchStatusMatched || current.DriverID != driverID {
			return apperrors.InvalidState("match %s is not valid for decline", matchID)
		}
		current.DriverID = newDriver.DriverID
		current.Fare = fare
		current.CreatedAt = time.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.MatchesReassigned.Inc()
	logger.Info("Match reassigned",
		logger.String("match_id", matchID),
		logger.String("old_driver_id", driverID),
		logger.String("new_driver_id", newDriver.DriverID),
		logger.Int("fare", fare))

	uc.notify(ctx, models.MatchNotification{
		DriverID: newDriver.DriverID,
		RiderID:  updated.RiderID,
		MatchID:  updated.ID,
	})

	return &models.MatchOutcome{
		Found:    true,
		MatchID:  updated.ID,
		DriverID: newDriver.DriverID,
		Fare:     fare,
	}, nil
}

// GetMatchStatus returns the match's current state. The PENDING shim for
// unrecognized persisted statuses is applied at the read boundary.
func (uc *MatchUC) GetMatchStatus(ctx context.Context, matchID string) (*models.Match, error) {
	return uc.matchRepo.GetMatch(ctx, matchID)
}
