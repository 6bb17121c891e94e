package models

// DriverRoute is the registry document for a driver's declared route.
// Registration replaces the whole route; location and pickup updates
// replace only their own fields. RouteID is regenerated on every
// registration and never reused.
type DriverRoute struct {
	DriverID       string    `json:"driver_id"`
	RouteID        string    `json:"route_id"`
	OriginStation  string    `json:"origin_station"`
	Destination    string    `json:"destination"`
	AvailableSeats int       `json:"available_seats"`
	Stations       []string  `json:"stations"`
	PickingUp      bool      `json:"is_picking_up"`
	Location       *Location `json:"current_location,omitempty"`
	Geohash        string    `json:"geohash,omitempty"`
}

// HasStation reports whether the given station id appears in the
// driver's resolved station sequence.
func (d *DriverRoute) HasStation(stationID string) bool {
	for _, s := range d.Stations {
		if s == stationID {
			return true
		}
	}
	return false
}
