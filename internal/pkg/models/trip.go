package models

import "time"

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusOngoing   TripStatus = "ONGOING"
	TripStatusCompleted TripStatus = "COMPLETED"
	TripStatusCancelled TripStatus = "CANCELLED"
)

// Trip is the persistent record produced when a match is accepted.
// It references the match that produced it but never mutates it.
type Trip struct {
	ID            string     `json:"trip_id" db:"id"`
	MatchID       string     `json:"match_id" db:"match_id"`
	DriverID      string     `json:"driver_id" db:"driver_id"`
	RiderID       string     `json:"rider_id" db:"rider_id"`
	PickupStation string     `json:"pickup_station" db:"pickup_station"`
	Destination   string     `json:"destination" db:"destination"`
	Fare          int        `json:"fare" db:"fare"`
	Status        TripStatus `json:"status" db:"status"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
