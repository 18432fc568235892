package planner

import (
	"fmt"
	"time"

	"tripweave/internal/domain"
)

// checkReasonability flags a completed plan that is too sparse, too packed,
// or runs past the day window, without failing the request outright.
func checkReasonability(dayBuckets [][]domain.NormalizedPlace, schedule domain.Schedule, places []domain.NormalizedPlace) domain.Status {
	status := domain.Status{IsReasonable: true, Severity: domain.SeverityNormal}

	if emptyDays := countEmptyDays(dayBuckets); emptyDays > 0 {
		status.Warnings = append(status.Warnings, domain.Warning{
			Type:       domain.WarningEmptyDays,
			Message:    fmt.Sprintf("Found %d day(s) with only virtual restaurants. Your schedule might be too sparse.", emptyDays),
			Suggestion: "Consider reducing the number of days or adding more places to visit.",
		})
		status.Severity = domain.SeverityWarning
	}

	if unscheduled := countUnscheduled(schedule, places); unscheduled > 0 {
		status.Warnings = append(status.Warnings, domain.Warning{
			Type:       domain.WarningUnscheduledPlaces,
			Message:    fmt.Sprintf("%d place(s) could not be scheduled. Your schedule might be too packed.", unscheduled),
			Suggestion: "Consider increasing the number of days or reducing the number of places.",
		})
		status.Severity = domain.SeveritySevere
	}

	if overtime := countOvertimeDays(schedule); overtime > 0 {
		status.Warnings = append(status.Warnings, domain.Warning{
			Type:       domain.WarningOvertimeDays,
			Message:    fmt.Sprintf("%d day(s) exceed the recommended end time of %s.", overtime, domain.DayWindowEnd.Format("03:04 PM")),
			Suggestion: "Consider extending your trip duration or reducing the number of places per day.",
		})
		status.Severity = domain.SeveritySevere
	}

	status.IsReasonable = len(status.Warnings) == 0
	return status
}

func countEmptyDays(dayBuckets [][]domain.NormalizedPlace) int {
	count := 0
	for _, bucket := range dayBuckets {
		if len(bucket) == 0 {
			continue
		}
		allVirtual := true
		for _, p := range bucket {
			if !p.IsVirtual() {
				allVirtual = false
				break
			}
		}
		if allVirtual {
			count++
		}
	}
	return count
}

func countUnscheduled(schedule domain.Schedule, places []domain.NormalizedPlace) int {
	scheduled := map[string]bool{}
	for _, e := range schedule.Events {
		if e.Type == domain.EventPlace && e.Place != nil && !e.Place.IsVirtual {
			scheduled[e.Place.ID] = true
		}
	}
	unscheduled := 0
	for _, p := range places {
		if p.IsVirtual() {
			continue
		}
		if !scheduled[p.ID] {
			unscheduled++
		}
	}
	return unscheduled
}

func countOvertimeDays(schedule domain.Schedule) int {
	lastEndByDay := map[int]time.Time{}
	for _, e := range schedule.Events {
		if e.Type != domain.EventPlace || e.EndTime == "" {
			continue
		}
		t, err := time.Parse("03:04 PM", e.EndTime)
		if err != nil {
			continue
		}
		t = domain.OnReferenceDate(t)
		if t.After(lastEndByDay[e.Day]) {
			lastEndByDay[e.Day] = t
		}
	}
	count := 0
	for _, end := range lastEndByDay {
		if end.After(domain.DayWindowEnd) {
			count++
		}
	}
	return count
}
