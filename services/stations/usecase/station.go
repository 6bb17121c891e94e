package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/lastmile/dispatch/internal/pkg/apperrors"
	"github.com/lastmile/dispatch/internal/pkg/models"
	"github.com/lastmile/dispatch/internal/utils"
	"github.com/lastmile/dispatch/services/stations"
)

// StationUC implements the station use case interface
type StationUC struct {
	cfg         *models.Config
	stationRepo stations.StationRepo
}

// NewStationUC creates a new station use case
func NewStationUC(cfg *models.Config, stationRepo stations.StationRepo) *StationUC {
	return &StationUC{
		cfg:         cfg,
		stationRepo: stationRepo,
	}
}

// UpsertStation validates and stores a station record
func (uc *StationUC) UpsertStation(ctx context.Context, station *models.Station) error {
	if station.ID == "" {
		return apperrors.Validation("station id is required")
	}
	if !station.ValidCoordinates() {
		return apperrors.Validation("station %s has invalid coordinates (%f, %f)",
			station.ID, station.Latitude, station.Longitude)
	}
	return uc.stationRepo.UpsertStation(ctx, station)
}

// GetStation returns a station by id
func (uc *StationUC) GetStation(ctx context.Context, stationID string) (*models.Station, error) {
	if stationID == "" {
		return nil, apperrors.Validation("station id is required")
	}
	return uc.stationRepo.GetStation(ctx, stationID)
}

// NearbyStations returns stations within radiusM meters of a point. A zero
// radius falls back to the configured default.
func (uc *StationUC) NearbyStations(ctx context.Context, lat, lon, radiusM float64) ([]models.NearbyStation, error) {
	point := models.Location{Latitude: lat, Longitude: lon}
	if !point.Valid() {
		return nil, apperrors.Validation("invalid coordinates (%f, %f)", lat, lon)
	}
	if radiusM <= 0 {
		radiusM = uc.cfg.Match.StationRadiusM
	}
	return uc.stationRepo.FindWithinRadius(ctx, lat, lon, radiusM)
}

// StationsAlongRoute returns the ordered station ids in the corridor
// between two stations. The segment between the endpoints is sampled at a
// fixed spacing and each sample point is queried for stations within the
// corridor width; the union is ordered by distance from the origin, ties
// broken by station id.
func (uc *StationUC) StationsAlongRoute(ctx context.Context, originID, destinationID string) ([]string, error) {
	origin, err := uc.stationRepo.GetStation(ctx, originID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.stationRepo.GetStation(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	originPt := utils.GeoPoint{Latitude: origin.Latitude, Longitude: origin.Longitude}
	destPt := utils.GeoPoint{Latitude: destination.Latitude, Longitude: destination.Longitude}

	span := utils.HaversineDistance(originPt, destPt)
	steps := int(math.Ceil(span / uc.cfg.Match.RouteSampleM))
	if steps < 1 {
		steps = 1
	}

	type candidate struct {
		id         string
		fromOrigin float64
	}
	seen := make(map[string]bool)
	var found []candidate

	for i := 0; i <= steps; i++ {
		sample := utils.Interpolate(originPt, destPt, float64(i)/float64(steps))
		nearby, err := uc.stationRepo.FindWithinRadius(ctx, sample.Latitude, sample.Longitude, uc.cfg.Match.RouteCorridorM)
		if err != nil {
			return nil, err
		}
		for _, ns := range nearby {
			if seen[ns.Station.ID] {
				continue
			}
			seen[ns.Station.ID] = true
			stationPt := utils.GeoPoint{Latitude: ns.Station.Latitude, Longitude: ns.Station.Longitude}
			found = append(found, candidate{
				id:         ns.Station.ID,
				fromOrigin: utils.HaversineDistance(originPt, stationPt),
			})
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].fromOrigin != found[j].fromOrigin {
			return found[i].fromOrigin < found[j].fromOrigin
		}
		return found[i].id < found[j].id
	})

	route := make([]string, len(found))
	for i, c := range found {
		route[i] = c.id
	}
	return route, nil
}
