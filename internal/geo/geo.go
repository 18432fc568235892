// Package geo implements great-circle distance and per-mode travel-time
// estimation. No routing, no road network: travel time is a clamped linear
// function of haversine distance.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// TransportMode selects the speed/detour/clamp parameters for travel time.
type TransportMode string

const (
	Walking TransportMode = "walking"
	Transit TransportMode = "transit"
	Driving TransportMode = "driving"
)

// modeParams holds the per-mode parameter table from spec.md §4.G.
type modeParams struct {
	speedKmh    float64
	detour      float64
	minMinutes  float64
	maxMinutes  float64
}

var params = map[TransportMode]modeParams{
	Walking: {speedKmh: 4.5, detour: 1.4, minMinutes: 5, maxMinutes: 120},
	Transit: {speedKmh: 20, detour: 1.3, minMinutes: 10, maxMinutes: 120},
	Driving: {speedKmh: 30, detour: 1.2, minMinutes: 5, maxMinutes: 120},
}

// ValidMode reports whether mode is one of the three supported transport modes.
func ValidMode(mode TransportMode) bool {
	_, ok := params[mode]
	return ok
}

// Point is a location in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// HaversineMeters returns the great-circle distance between a and b in metres.
func HaversineMeters(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	c := 2 * math.Asin(math.Sqrt(h))

	return EarthRadiusMeters * c
}

// TravelTimeMinutes returns the estimated travel time in minutes for
// distanceKm under mode, clamped to the mode's [min, max] bounds. Negative
// or zero distances clamp to the minimum.
func TravelTimeMinutes(distanceKm float64, mode TransportMode) float64 {
	p, ok := params[mode]
	if !ok {
		p = params[Driving]
	}
	if distanceKm <= 0 {
		return p.minMinutes
	}

	actual := distanceKm * p.detour
	minutes := (actual / p.speedKmh) * 60

	if minutes < p.minMinutes {
		return p.minMinutes
	}
	if minutes > p.maxMinutes {
		return p.maxMinutes
	}
	return minutes
}

// Matrix is a symmetric n×n distance or time matrix with a zero diagonal.
type Matrix [][]float64

// NewMatrix allocates an n×n zeroed matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// DistanceTimeMatrices computes symmetric distance (metres) and time
// (minutes) matrices over points, given a transport mode.
func DistanceTimeMatrices(points []Point, mode TransportMode) (dist Matrix, travel Matrix) {
	n := len(points)
	dist = NewMatrix(n)
	travel = NewMatrix(n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := HaversineMeters(points[i], points[j])
			t := TravelTimeMinutes(d/1000, mode)
			dist[i][j], dist[j][i] = d, d
			travel[i][j], travel[j][i] = t, t
		}
	}
	return dist, travel
}
