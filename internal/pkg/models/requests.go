package models

// Request and response shapes for the public operation surface. Every
// response carries a success flag and a human-readable message; business
// failures are success=false, not transport errors.

// RegisterRouteRequest registers or replaces a driver's route. Stations is
// the caller-supplied fallback list used when the route-geometry lookup is
// unavailable or empty.
type RegisterRouteRequest struct {
	DriverID       string   `json:"driver_id"`
	OriginStation  string   `json:"origin_station"`
	Destination    string   `json:"destination"`
	AvailableSeats int      `json:"available_seats"`
	Stations       []string `json:"stations"`
}

// RegisterRouteResponse returns the freshly generated route id
type RegisterRouteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	RouteID string `json:"route_id,omitempty"`
}

// UpdateLocationRequest reports a driver's current position
type UpdateLocationRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdatePickupStatusRequest toggles the pickup-in-progress flag
type UpdatePickupStatusRequest struct {
	IsPickingUp bool `json:"is_picking_up"`
}

// MatchRequest asks dispatch to find a driver for a rider
type MatchRequest struct {
	RiderID       string `json:"rider_id"`
	PickupStation string `json:"pickup_station"`
	Destination   string `json:"destination"`
}

// MatchResponse reports the dispatch outcome
type MatchResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	MatchID  string `json:"match_id,omitempty"`
	DriverID string `json:"driver_id,omitempty"`
	Fare     int    `json:"fare,omitempty"`
}

// MatchActionRequest identifies the driver acting on a match
type MatchActionRequest struct {
	DriverID string `json:"driver_id"`
}

// MatchActionResponse reports the result of an accept or decline
type MatchActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TripID  string `json:"trip_id,omitempty"`
}

// MatchStatusResponse reports a match's current state
type MatchStatusResponse struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	MatchID  string      `json:"match_id,omitempty"`
	DriverID string      `json:"driver_id,omitempty"`
	RiderID  string      `json:"rider_id,omitempty"`
	Status   MatchStatus `json:"status,omitempty"`
	TripID   string      `json:"trip_id"`
}

// CreateTripRequest is the trip collaborator's input, carried over the
// narrow TripGW interface.
type CreateTripRequest struct {
	MatchID       string `json:"match_id"`
	DriverID      string `json:"driver_id"`
	RiderID       string `json:"rider_id"`
	PickupStation string `json:"pickup_station"`
	Destination   string `json:"destination"`
	Fare          int    `json:"fare"`
}
