package models

// Station is a metro station record. Stations are immutable once created;
// the ingestion path overwrites the whole document on update.
type Station struct {
	ID        string  `json:"station_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ValidCoordinates reports whether the station's coordinates are within
// the valid latitude/longitude ranges.
func (s *Station) ValidCoordinates() bool {
	return s.Latitude >= -90 && s.Latitude <= 90 &&
		s.Longitude >= -180 && s.Longitude <= 180
}

// NearbyStation is a station together with its distance from a query point
type NearbyStation struct {
	Station  Station `json:"station"`
	Distance float64 `json:"distance_m"`
}

// LegacyStation is the flat record shape used by the pre-geo station list.
// EnsureIndexed replays these into the hash and the geo set.
type LegacyStation struct {
	Name     string `json:"name"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}
