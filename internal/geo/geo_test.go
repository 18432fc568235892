package geo

import (
	"math"
	"testing"
)

func TestHaversineSamePoint(t *testing.T) {
	p := Point{Lat: 48.8566, Lng: 2.3522}
	if d := HaversineMeters(p, p); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := Point{Lat: 48.8566, Lng: 2.3522}
	b := Point{Lat: 51.5074, Lng: -0.1278}
	if HaversineMeters(a, b) != HaversineMeters(b, a) {
		t.Fatal("haversine distance is not symmetric")
	}
}

func TestHaversineHalfCircumference(t *testing.T) {
	a := Point{Lat: 0, Lng: 0}
	b := Point{Lat: 0, Lng: 180}
	got := HaversineMeters(a, b)
	want := math.Pi * EarthRadiusMeters
	if math.Abs(got-want) > 1.0 {
		t.Fatalf("expected ~%f, got %f", want, got)
	}
}

func TestTravelTimeMonotoneAndClamped(t *testing.T) {
	for _, mode := range []TransportMode{Walking, Transit, Driving} {
		prev := TravelTimeMinutes(-1, mode)
		for _, km := range []float64{0, 0.1, 1, 5, 20, 100, 1000} {
			got := TravelTimeMinutes(km, mode)
			if got < prev {
				t.Fatalf("%s: travel time not monotone at %f km: %f < %f", mode, km, got, prev)
			}
			prev = got
		}
		if got := TravelTimeMinutes(0, mode); got != TravelTimeMinutes(-5, mode) {
			t.Fatalf("%s: zero/negative distance should both clamp to minimum", mode)
		}
		if got := TravelTimeMinutes(100000, mode); got != params[mode].maxMinutes {
			t.Fatalf("%s: expected clamp to max %f, got %f", mode, params[mode].maxMinutes, got)
		}
	}
}

func TestDistanceTimeMatricesSymmetricZeroDiagonal(t *testing.T) {
	pts := []Point{
		{Lat: 48.8566, Lng: 2.3522},
		{Lat: 48.8606, Lng: 2.3376},
		{Lat: 48.8584, Lng: 2.2945},
	}
	dist, travel := DistanceTimeMatrices(pts, Walking)
	n := len(pts)
	for i := 0; i < n; i++ {
		if dist[i][i] != 0 || travel[i][i] != 0 {
			t.Fatalf("expected zero diagonal at %d", i)
		}
		for j := 0; j < n; j++ {
			if dist[i][j] != dist[j][i] {
				t.Fatalf("distance matrix not symmetric at (%d,%d)", i, j)
			}
			if travel[i][j] != travel[j][i] {
				t.Fatalf("time matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}
}
