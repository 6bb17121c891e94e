package models

import "time"

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusMatched   MatchStatus = "MATCHED"
	MatchStatusConfirmed MatchStatus = "CONFIRMED"
	MatchStatusCancelled MatchStatus = "CANCELLED"

	// MatchStatusPending is the migration-compatibility default: persisted
	// status values that no longer parse map here instead of erroring.
	MatchStatusPending MatchStatus = "PENDING"
)

// ParseMatchStatus maps a persisted status string onto the closed enum.
// The boolean is false for values outside the enum; callers decide whether
// to apply the PENDING shim.
func ParseMatchStatus(s string) (MatchStatus, bool) {
	switch MatchStatus(s) {
	case MatchStatusMatched, MatchStatusConfirmed, MatchStatusCancelled:
		return MatchStatus(s), true
	}
	return MatchStatusPending, false
}

// Terminal reports whether no further transitions exist from this status
func (s MatchStatus) Terminal() bool {
	return s == MatchStatusConfirmed || s == MatchStatusCancelled
}

// Match is a proposed pairing between a rider request and a driver's route.
// The fare is fixed at creation (or reassignment) and never recomputed
// afterward. The driver id may change only while the match is MATCHED.
type Match struct {
	ID            string      `json:"match_id"`
	DriverID      string      `json:"driver_id"`
	RiderID       string      `json:"rider_id"`
	PickupStation string      `json:"pickup_station"`
	Destination   string      `json:"destination"`
	Status        MatchStatus `json:"status"`
	Fare          int         `json:"fare"`
	TripID        string      `json:"trip_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// MatchOutcome is the result of a dispatch attempt
type MatchOutcome struct {
	Found    bool   `json:"found"`
	MatchID  string `json:"match_id,omitempty"`
	DriverID string `json:"driver_id,omitempty"`
	Fare     int    `json:"fare,omitempty"`
}

// MatchNotification is the fire-and-forget payload published to the
// notification topic when a driver is matched or reassigned.
type MatchNotification struct {
	DriverID string `json:"driver_id"`
	RiderID  string `json:"rider_id"`
	MatchID  string `json:"match_id"`
	TripID   string `json:"trip_id"`
}
