package week

import "time"

// LeaveType marks how much of a day is covered by leave credit.
type LeaveType string

const (
	LeaveNone LeaveType = "none"
	LeaveHalf LeaveType = "half"
	LeaveFull LeaveType = "full"
)

// DayStatus places a day relative to "today".
type DayStatus string

const (
	StatusFuture  DayStatus = "future"
	StatusPresent DayStatus = "present"
	StatusPast    DayStatus = "past"
	StatusLeave   DayStatus = "leave"
	StatusWeekend DayStatus = "weekend"
)

// DayIDs lists the five weekday identifiers in display order.
var DayIDs = []string{"mon", "tue", "wed", "thu", "fri"}

// DayRecord is one Mon-Fri weekday of the displayed week. PunchIn and
// PunchOut are "HH:MM" clock strings; empty means not recorded. GrossHours
// stays consistent with the punch pair whenever both are present.
type DayRecord struct {
	ID         string
	DateLabel  string // "Jan 19" style, correlated against imported text
	IsToday    bool
	PunchIn    string
	PunchOut   string
	GrossHours float64
	LeaveType  LeaveType
	Status     DayStatus
}

// Settings carries the user-tunable knobs every engine call receives by
// value. Defaults are the configuration layer's concern, not ours.
type Settings struct {
	StandardInTime    string
	MaxOutTime        string
	EnableMaxTime     bool
	LateBufferMinutes int
}

// Seed builds a fresh Mon-Fri week anchored on weekStart (assumed to be a
// Monday), with labels, today marker and status derived against today.
func Seed(weekStart, today time.Time) []DayRecord {
	days := make([]DayRecord, 0, len(DayIDs))
	for i, id := range DayIDs {
		date := weekStart.AddDate(0, 0, i)
		days = append(days, DayRecord{
			ID:        id,
			DateLabel: date.Format("Jan 2"),
			IsToday:   SameDay(date, today),
			LeaveType: LeaveNone,
			Status:    DeriveStatus(date, today, LeaveNone),
		})
	}
	return days
}

// DeriveStatus classifies a day's date against today. Leave wins over the
// date comparison; weekends only show up if a caller feeds a Sat/Sun date.
func DeriveStatus(date, today time.Time, leave LeaveType) DayStatus {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return StatusWeekend
	}
	if leave == LeaveFull {
		return StatusLeave
	}
	switch {
	case SameDay(date, today):
		return StatusPresent
	case date.Before(today):
		return StatusPast
	default:
		return StatusFuture
	}
}

// Clone returns an independent copy so engines can hand back revised weeks
// without touching the caller's slice.
func Clone(days []DayRecord) []DayRecord {
	out := make([]DayRecord, len(days))
	copy(out, days)
	return out
}

// Find returns a pointer into days for the given id, or nil.
func Find(days []DayRecord, id string) *DayRecord {
	for i := range days {
		if days[i].ID == id {
			return &days[i]
		}
	}
	return nil
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
