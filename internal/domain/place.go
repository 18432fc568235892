package domain

import "tripweave/internal/geo"

// Category classifies a normalized place for duration lookup and scoring.
type Category string

const (
	CategoryLodging            Category = "lodging"
	CategoryRestaurant         Category = "restaurant"
	CategoryMuseum             Category = "museum"
	CategoryPark               Category = "park"
	CategoryShoppingMall       Category = "shopping_mall"
	CategoryTouristAttraction  Category = "tourist_attraction"
	CategoryDefault            Category = "default"
)

// categoryPriority ranks which Google Places "types" entry wins when a place
// carries more than one recognized type; lower index wins.
var categoryPriority = []Category{
	CategoryLodging,
	CategoryRestaurant,
	CategoryMuseum,
	CategoryPark,
	CategoryShoppingMall,
	CategoryTouristAttraction,
}

var typeToCategory = map[string]Category{
	"lodging":            CategoryLodging,
	"hotel":              CategoryLodging,
	"restaurant":         CategoryRestaurant,
	"food":               CategoryRestaurant,
	"cafe":               CategoryRestaurant,
	"museum":             CategoryMuseum,
	"park":               CategoryPark,
	"shopping_mall":      CategoryShoppingMall,
	"tourist_attraction": CategoryTouristAttraction,
	"point_of_interest":  CategoryTouristAttraction,
}

// ResolveCategory applies categoryPriority to a place's raw type list,
// falling back to CategoryDefault when no recognized type is present.
func ResolveCategory(types []string) Category {
	found := map[Category]bool{}
	for _, t := range types {
		if c, ok := typeToCategory[t]; ok {
			found[c] = true
		}
	}
	for _, c := range categoryPriority {
		if found[c] {
			return c
		}
	}
	return CategoryDefault
}

// LatLng is the flat {lat, lng} shape used by both input location forms.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// geometry wraps the nested Google-Places-style location shape.
type geometry struct {
	Location *LatLng `json:"location"`
}

// RawPlace is a place exactly as received from the caller. Its location may
// arrive nested under "geometry.location" or flat under "location" — both
// shapes are accepted through the Coordinates accessor rather than branching
// on shape at every call site.
type RawPlace struct {
	PlaceID          string    `json:"place_id"`
	Name             string    `json:"name"`
	Types            []string  `json:"types"`
	Rating           float64   `json:"rating"`
	UserRatingsTotal int       `json:"user_ratings_total"`
	PriceLevel       int       `json:"price_level"`
	Geometry         *geometry `json:"geometry,omitempty"`
	Location         *LatLng   `json:"location,omitempty"`
}

// Coordinates returns the place's location, preferring the nested
// geometry.location shape over a flat location field when both are present.
func (p RawPlace) Coordinates() (geo.Point, bool) {
	if p.Geometry != nil && p.Geometry.Location != nil {
		return geo.Point{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng}, true
	}
	if p.Location != nil {
		return geo.Point{Lat: p.Location.Lat, Lng: p.Location.Lng}, true
	}
	return geo.Point{}, false
}

// RestaurantVariant distinguishes a real restaurant record from a
// synthesized meal placeholder, replacing name-string sentinels.
type RestaurantVariant string

const (
	VariantReal          RestaurantVariant = "real"
	VariantVirtualLunch  RestaurantVariant = "virtual_lunch"
	VariantVirtualDinner RestaurantVariant = "virtual_dinner"
)

// MealType names a meal slot a virtual restaurant was synthesized for.
type MealType string

const (
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)

// NormalizedPlace is a place after validation, category resolution, and
// visit-duration assignment. Virtual meal placeholders are NormalizedPlace
// values with Original == nil and Variant != VariantReal.
type NormalizedPlace struct {
	ID                   string
	Name                 string
	Location             geo.Point
	Category             Category
	VisitDurationMinutes int
	Rating               float64
	Variant              RestaurantVariant
	Original             *RawPlace
}

// IsLodging reports whether this place is the trip's lodging anchor.
func (p NormalizedPlace) IsLodging() bool {
	return p.Category == CategoryLodging
}

// IsRestaurant reports whether this place occupies a meal slot, real or virtual.
func (p NormalizedPlace) IsRestaurant() bool {
	return p.Category == CategoryRestaurant
}

// IsVirtual reports whether this place was synthesized rather than supplied.
func (p NormalizedPlace) IsVirtual() bool {
	return p.Variant == VariantVirtualLunch || p.Variant == VariantVirtualDinner
}

// NewVirtualMeal synthesizes a placeholder restaurant for an unmet meal slot
// at loc, tagged with the meal it fills.
func NewVirtualMeal(id string, meal MealType, loc geo.Point) NormalizedPlace {
	variant := VariantVirtualLunch
	name := "Lunch Break"
	if meal == MealDinner {
		variant = VariantVirtualDinner
		name = "Dinner Break"
	}
	return NormalizedPlace{
		ID:                   id,
		Name:                 name,
		Location:             loc,
		Category:             CategoryRestaurant,
		VisitDurationMinutes: VirtualMealDurationMinutes,
		Variant:              variant,
	}
}
