package booking

import "github.com/brisastudio/studio-booking-backend/internal/schedule"

// Overlaps reports whether two half-open intervals intersect. Touching
// endpoints (one ending exactly when the other starts) do not count.
func Overlaps(a, b Interval) bool {
	return a.Start < b.End && a.End > b.Start
}

// FreeSlots enumerates candidate start times for a booking of the given
// duration inside the working window, stepping by schedule.SlotStepMin,
// and drops every candidate whose interval overlaps a booked one.
// The result is ascending and possibly empty.
func FreeSlots(win schedule.Window, durationMin int, booked []Interval) []int {
	var slots []int
	for t := win.Open; t+durationMin <= win.Close; t += schedule.SlotStepMin {
		candidate := Interval{Start: t, End: t + durationMin}
		free := true
		for _, b := range booked {
			if Overlaps(candidate, b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, t)
		}
	}
	return slots
}
