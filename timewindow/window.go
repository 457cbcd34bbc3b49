package timewindow

import (
	"time"
)

// Window is a [Start, End) instant range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls in [Start, End)
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// ContainsInclusive reports whether t falls in [Start, End]
func (w Window) ContainsInclusive(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// IsPastTodayDeadline reports whether now is strictly after today's
// order deadline. At the exact deadline instant it is still false.
func IsPastTodayDeadline(now time.Time, deadline TimeOfDay) bool {
	return now.After(Combine(now, deadline))
}

// TodayMenuWindow computes which period counts as "today's menu".
// The window always spans one full meal-prep cycle ending at the nearest
// upcoming or most recent deadline:
//
//	past today's deadline: [today mealStart, tomorrow deadline)
//	otherwise:             [yesterday mealStart, today deadline)
func TodayMenuWindow(now time.Time, deadline, mealStart TimeOfDay) Window {
	return menuWindow(now, now, deadline, mealStart)
}

// TomorrowMenuWindow applies the same policy with the base date advanced
// one calendar day.
func TomorrowMenuWindow(now time.Time, deadline, mealStart TimeOfDay) Window {
	return menuWindow(now, now.AddDate(0, 0, 1), deadline, mealStart)
}

func menuWindow(now, base time.Time, deadline, mealStart TimeOfDay) Window {
	var startDay time.Time
	if IsPastTodayDeadline(now, deadline) {
		startDay = base
	} else {
		startDay = base.AddDate(0, 0, -1)
	}
	return Window{
		Start: Combine(startDay, mealStart),
		End:   Combine(startDay.AddDate(0, 0, 1), deadline),
	}
}

// DeliveryPeriod is today's blackout interval [deadline, mealStart)
// during which ordering is always forbidden.
func DeliveryPeriod(now time.Time, deadline, mealStart TimeOfDay) Window {
	return Window{
		Start: Combine(now, deadline),
		End:   Combine(now, mealStart),
	}
}

// OrderablePeriods returns the two windows during which ordering is
// permitted: [yesterday mealStart, today deadline] and
// [today mealStart, tomorrow deadline]. Both boundaries are inclusive.
func OrderablePeriods(now time.Time, deadline, mealStart TimeOfDay) (Window, Window) {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	first := Window{Start: Combine(yesterday, mealStart), End: Combine(now, deadline)}
	second := Window{Start: Combine(now, mealStart), End: Combine(tomorrow, deadline)}
	return first, second
}

// CanOrderNow reports whether now falls in either orderable period,
// boundaries included. An order submitted at the exact deadline instant
// is accepted.
func CanOrderNow(now time.Time, deadline, mealStart TimeOfDay) bool {
	first, second := OrderablePeriods(now, deadline, mealStart)
	return first.ContainsInclusive(now) || second.ContainsInclusive(now)
}
