package domain

import (
	"time"

	"tripweave/internal/geo"
)

// DayPlanEntry places a single NormalizedPlace within a day's timeline.
type DayPlanEntry struct {
	Place NormalizedPlace
	Start time.Time
	End   time.Time
}

// DayPlan is one day's ordered sequence of visits, produced by the router.
type DayPlan struct {
	Day     int
	Entries []DayPlanEntry
}

// EventType distinguishes a place visit from a transit hop in the assembled
// schedule's flat event list.
type EventType string

const (
	EventPlace   EventType = "place"
	EventTransit EventType = "transit"
)

// PlaceRef is the place information carried on a place Event — either the
// caller's original record or a synthesized stand-in for a virtual meal.
type PlaceRef struct {
	ID        string   `json:"-"`
	PlaceID   string   `json:"place_id,omitempty"`
	Name      string   `json:"name"`
	Types     []string `json:"types,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
	IsVirtual bool     `json:"is_virtual,omitempty"`
	Location  LatLng   `json:"location"`
}

// Event is one entry in the final flattened schedule: a place visit or a
// transit hop between two consecutive visits.
type Event struct {
	ID              string    `json:"id"`
	Type            EventType `json:"type"`
	Day             int       `json:"day"`
	Title           string    `json:"title"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Place           *PlaceRef `json:"place,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Mode            string    `json:"mode,omitempty"`
}

// Summary holds the assembler's roll-up counts for a finished schedule.
type Summary struct {
	TotalPlaces         int `json:"total_places"`
	TotalTravelMinutes  int `json:"total_travel_minutes"`
	RestaurantCount     int `json:"restaurant_count"`
	AttractionCount     int `json:"attraction_count"`
}

// Schedule is the fully assembled multi-day itinerary.
type Schedule struct {
	Events  []Event `json:"events"`
	Summary Summary `json:"summary"`
}

// WarningType names a reasonability-check finding.
type WarningType string

const (
	WarningEmptyDays         WarningType = "empty_days"
	WarningUnscheduledPlaces WarningType = "unscheduled_places"
	WarningOvertimeDays      WarningType = "overtime_days"
	WarningTooManyPlaces     WarningType = "too_many_places"
	WarningInvalidInput      WarningType = "invalid_input"
	WarningNoLodging         WarningType = "no_lodging"
)

// Severity grades how concerning a schedule's warnings are overall.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityWarning Severity = "warning"
	SeveritySevere  Severity = "severe"
)

// Warning is a single reasonability-check finding attached to a Status.
type Warning struct {
	Type       WarningType `json:"type"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion"`
}

// Status is the schedule-reasonability verdict produced alongside a Schedule.
type Status struct {
	IsReasonable bool      `json:"is_reasonable"`
	Warnings     []Warning `json:"warnings"`
	Severity     Severity  `json:"severity"`
}

// Scores holds the four-dimension metric suite's output plus the weighted total.
type Scores struct {
	Distance     float64 `json:"distance"`
	TimeWindow   float64 `json:"time_window"`
	Distribution float64 `json:"distribution"`
	Clustering   float64 `json:"clustering"`
	Total        float64 `json:"total"`
}

// PlannerInput is the caller-supplied request shared by /plan, /baseline, and
// /evaluate.
type PlannerInput struct {
	Places        []RawPlace       `json:"places"`
	StartDate     string           `json:"start_date"`
	EndDate       string           `json:"end_date"`
	TransportMode geo.TransportMode `json:"transport_mode"`
}

// PlannerOutput is the response envelope shared by /plan and /baseline.
type PlannerOutput struct {
	Success  bool     `json:"success"`
	Schedule Schedule `json:"schedule"`
	Status   Status   `json:"status"`
	Scores   Scores   `json:"scores"`
	Error    string   `json:"error,omitempty"`
}
