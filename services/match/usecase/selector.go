package usecase

import "github.com/lastmile/dispatch/internal/pkg/models"

// Selector picks one driver from a list of eligible candidates, or nil
// when none is acceptable. Candidates arrive in registry order.
type Selector func(candidates []*models.DriverRoute) *models.DriverRoute

// FirstFit picks the first eligible driver in registry order. This is an
// explicit policy choice: it favors dispatch latency over route quality.
// A cost-based ranking can replace it without touching lifecycle code.
func FirstFit(candidates []*models.DriverRoute) *models.DriverRoute {
	if len(candidates) == 0 {
		return nil
	}
	return candidates[0]
}
