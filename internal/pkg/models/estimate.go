package models

// VehicleType selects a price multiplier
type VehicleType string

const (
	VehicleEconomy VehicleType = "economy"
	VehicleComfort VehicleType = "comfort"
	VehiclePremium VehicleType = "premium"
)

// EstimateRequest asks for a price between two points
type EstimateRequest struct {
	Origin      Point       `json:"origin"`
	Destination Point       `json:"destination"`
	VehicleType VehicleType `json:"vehicleType"`
}

// RouteOption is one priced alternative
type RouteOption struct {
	Name            string  `json:"name"`
	DistanceKm      float64 `json:"distanceKm"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           int64   `json:"price"`
}

// Estimate is the priced answer
type Estimate struct {
	DistanceKm      float64       `json:"distanceKm"`
	DurationMinutes int           `json:"durationMinutes"`
	Price           int64         `json:"price"`
	Currency        string        `json:"currency"`
	Routes          []RouteOption `json:"routes"`
}
