package drivers

import "context"

// StationGW is the route-geometry provider collaborator. Failures and
// timeouts surface as CollaboratorUnavailable; the resolver decides what
// degrades to the fallback list.
type StationGW interface {
	GetStationsAlongRoute(ctx context.Context, origin, destination string) ([]string, error)
}
