package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeGeohash converts coordinates to a geohash cell at the given precision
func EncodeGeohash(lat, lon float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lon, precision)
}

// DecodeGeohash converts a geohash string back to coordinates
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// HaversineDistance calculates the great-circle distance between two
// points in meters.
func HaversineDistance(p1, p2 GeoPoint) float64 {
	const earthRadiusM = 6371000.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

// Interpolate returns the point at fraction t along the straight segment
// from p1 to p2. Linear in lat/lon, which is adequate at city scale.
func Interpolate(p1, p2 GeoPoint, t float64) GeoPoint {
	return GeoPoint{
		Latitude:  p1.Latitude + (p2.Latitude-p1.Latitude)*t,
		Longitude: p1.Longitude + (p2.Longitude-p1.Longitude)*t,
	}
}
