package router

import (
	"testing"

	"tripweave/internal/domain"
	"tripweave/internal/geo"
)

func lodgingAt(lat, lng float64) domain.NormalizedPlace {
	return domain.NormalizedPlace{ID: "hotel", Name: "Hotel", Location: geo.Point{Lat: lat, Lng: lng}, Category: domain.CategoryLodging}
}

func attr(id string, lat, lng float64, rating float64, minutes int) domain.NormalizedPlace {
	return domain.NormalizedPlace{ID: id, Name: id, Location: geo.Point{Lat: lat, Lng: lng}, Category: domain.CategoryTouristAttraction, Rating: rating, VisitDurationMinutes: minutes}
}

func realRestaurant(id string, lat, lng float64) domain.NormalizedPlace {
	return domain.NormalizedPlace{ID: id, Name: id, Location: geo.Point{Lat: lat, Lng: lng}, Category: domain.CategoryRestaurant, Variant: domain.VariantReal, Rating: 4.5, VisitDurationMinutes: 75}
}

func TestRouteEmptyDayReturnsLodgingBookends(t *testing.T) {
	plan := Route(nil, lodgingAt(48.85, 2.35), geo.Walking, map[string]bool{})
	if len(plan.Entries) != 2 {
		t.Fatalf("expected 2 bookend entries, got %d", len(plan.Entries))
	}
}

func TestRoutePureVirtualShortcut(t *testing.T) {
	lodging := lodgingAt(48.85, 2.35)
	lunch := domain.NewVirtualMeal("vl", domain.MealLunch, lodging.Location)
	dinner := domain.NewVirtualMeal("vd", domain.MealDinner, lodging.Location)
	plan := Route([]domain.NormalizedPlace{lunch, dinner}, lodging, geo.Walking, map[string]bool{})
	if len(plan.Entries) != 4 {
		t.Fatalf("expected lodging+lunch+dinner+lodging, got %d entries", len(plan.Entries))
	}
	if plan.Entries[1].Place.Variant != domain.VariantVirtualLunch {
		t.Fatalf("expected lunch first, got %+v", plan.Entries[1].Place)
	}
	if plan.Entries[2].Place.Variant != domain.VariantVirtualDinner {
		t.Fatalf("expected dinner second, got %+v", plan.Entries[2].Place)
	}
}

func TestRouteSchedulesRealRestaurantDuringMealWindow(t *testing.T) {
	lodging := lodgingAt(48.85, 2.35)
	places := []domain.NormalizedPlace{
		attr("museum", 48.851, 2.351, 4.0, 90),
		realRestaurant("bistro", 48.852, 2.352),
	}
	plan := Route(places, lodging, geo.Walking, map[string]bool{})

	foundRestaurant := false
	for _, e := range plan.Entries {
		if e.Place.ID == "bistro" {
			foundRestaurant = true
			if e.Start.Before(domain.LunchWindow.Start) || e.Start.After(domain.DinnerWindow.End) {
				t.Fatalf("expected restaurant scheduled within a meal window, got start %v", e.Start)
			}
		}
	}
	if !foundRestaurant {
		t.Fatal("expected bistro to appear in the route")
	}
}

func TestRouteEntriesAreTimeOrdered(t *testing.T) {
	lodging := lodgingAt(48.85, 2.35)
	places := []domain.NormalizedPlace{
		attr("a", 48.851, 2.351, 4.2, 90),
		attr("b", 48.853, 2.353, 3.8, 60),
		realRestaurant("resto", 48.852, 2.352),
	}
	plan := Route(places, lodging, geo.Walking, map[string]bool{})
	for i := 1; i < len(plan.Entries); i++ {
		if plan.Entries[i].Start.Before(plan.Entries[i-1].Start) {
			t.Fatalf("entries not time-ordered at index %d", i)
		}
	}
}

func TestRouteConsumedRestaurantExcludedOnSecondDay(t *testing.T) {
	lodging := lodgingAt(48.85, 2.35)
	restaurant := realRestaurant("only-resto", 48.852, 2.352)
	consumed := map[string]bool{}

	Route([]domain.NormalizedPlace{restaurant}, lodging, geo.Walking, consumed)
	if !consumed["only-resto"] {
		t.Fatal("expected restaurant to be marked consumed after first day")
	}

	plan := Route([]domain.NormalizedPlace{restaurant}, lodging, geo.Walking, consumed)
	for _, e := range plan.Entries {
		if e.Place.ID == "only-resto" {
			t.Fatal("expected consumed restaurant to be excluded on second day")
		}
	}
}
