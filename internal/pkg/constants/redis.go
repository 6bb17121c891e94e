package constants

// Redis key formats
const (
	// Station Service
	KeyStationGeo    = "stations:geo"    // GEO set of station coordinates
	KeyStationData   = "stations:data"   // Hash: station id -> station JSON
	KeyStationLegacy = "stations:legacy" // Legacy flat list of station JSON

	// Driver Registry
	KeyDriverRoute = "driver:route:%s" // Format: driver:route:{driver_id}
	KeyDriverIDs   = "drivers:ids"     // Sorted set of registered driver ids
	KeyDriverGeo   = "drivers:geo"     // GEO set of last known driver locations

	// Match Service
	KeyMatch = "match:%s" // Format: match:{match_id}
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
)
