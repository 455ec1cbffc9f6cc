package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// GeohashPrecision gives cells of roughly 5m, enough to tell pickup points apart
const GeohashPrecision uint = 9

// EncodeLocation converts a coordinate pair to a geohash string
func EncodeLocation(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 models.Point) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// ValidCoordinates reports whether the pair lies on the globe
func ValidCoordinates(latitude, longitude float64) bool {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return false
	}
	return latitude >= -90 && latitude <= 90 && longitude >= -180 && longitude <= 180
}
