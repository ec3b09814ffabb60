package planner

import (
	"fmt"
	"math"

	"github.com/hazri/internal/clock"
	"github.com/hazri/internal/week"
)

// SuggestionStatus classifies a punch-out suggestion.
type SuggestionStatus string

const (
	// SuggestionOK means the target fits under the cap.
	SuggestionOK SuggestionStatus = "ok"
	// SuggestionCredit means the cap only works with half-day leave credits.
	SuggestionCredit SuggestionStatus = "suggestion"
	// SuggestionImpossible means the target cannot be met even at the cap.
	SuggestionImpossible SuggestionStatus = "impossible"
	// SuggestionNone means no suggestion applies to this day.
	SuggestionNone SuggestionStatus = "none"
	// SuggestionLate flags an ok suggestion on a day that arrived past the
	// grace window.
	SuggestionLate SuggestionStatus = "late"
)

// SuggestionResult is one punch-out recommendation. Time is always a
// concrete clock value except for SuggestionNone, which carries an empty one.
type SuggestionResult struct {
	Time   string
	Status SuggestionStatus
	Msg    string
}

// CalculateOutTimeFromMinutes converts a target duration into a punch-out
// suggestion. The target is rounded up and padded with the policy's safety
// buffer, then checked against the effective cap; when the cap cannot absorb
// it, whole half-day leave credits are counted toward closing the gap.
func CalculateOutTimeFromMinutes(punchIn string, targetMinutes float64, settings week.Settings, pol week.Policy) SuggestionResult {
	buffered := math.Ceil(targetMinutes)
	if targetMinutes > 0 {
		buffered += float64(pol.SafetyBufferMinutes)
	}

	inMin := float64(clock.TimeToMinutes(punchIn))
	capMin := float64(clock.TimeToMinutes(effectiveCap(settings)))
	outMin := inMin + buffered

	if outMin <= capMin {
		return SuggestionResult{
			Time:   clock.MinutesToTime(outMin),
			Status: SuggestionOK,
			Msg:    fmt.Sprintf("leave at %s to meet the target", clock.MinutesToTime(outMin)),
		}
	}

	available := math.Max(0, capMin-inMin)
	deficit := buffered - available
	halfDays := int(math.Ceil(deficit / float64(pol.HalfDayCreditMinutes)))
	if halfDays >= 1 {
		credited := buffered - float64(halfDays*pol.HalfDayCreditMinutes)
		return SuggestionResult{
			Time:   clock.MinutesToTime(inMin + credited),
			Status: SuggestionCredit,
			Msg: fmt.Sprintf("target exceeds the cap; apply %d half-day leave credit(s) and leave at %s",
				halfDays, clock.MinutesToTime(inMin+credited)),
		}
	}

	return SuggestionResult{
		Time:   clock.MinutesToTime(capMin),
		Status: SuggestionImpossible,
		Msg:    fmt.Sprintf("still %s short at the cap", clock.MinutesToDuration(deficit)),
	}
}

// SmartSuggestions computes the two candidate punch-outs for a day: the
// standard one targeting the day's own expectation, and the weekly-adjusted
// one spreading the whole week's remaining requirement across the still-open
// days. Both come back as SuggestionNone once the day is closed, off, or has
// no punch-in to anchor on.
func SmartSuggestions(day week.DayRecord, all []week.DayRecord, settings week.Settings, pol week.Policy) (standard, adjusted SuggestionResult) {
	switch {
	case day.PunchIn == "":
		none := SuggestionResult{Status: SuggestionNone, Msg: "no punch-in recorded"}
		return none, none
	case day.PunchOut != "":
		none := SuggestionResult{Status: SuggestionNone, Msg: "already punched out"}
		return none, none
	case day.LeaveType == week.LeaveFull:
		none := SuggestionResult{Status: SuggestionNone, Msg: "on leave"}
		return none, none
	}

	standard = CalculateOutTimeFromMinutes(day.PunchIn, pol.DailyExpectation(day.LeaveType)*60, settings, pol)
	if grace := clock.TimeToMinutes(settings.StandardInTime) + settings.LateBufferMinutes; standard.Status == SuggestionOK &&
		clock.TimeToMinutes(day.PunchIn) > grace {
		late := clock.TimeToMinutes(day.PunchIn) - grace
		standard.Status = SuggestionLate
		standard.Msg = fmt.Sprintf("arrived %s past the grace window; leave at %s", clock.MinutesToDuration(float64(late)), standard.Time)
	}

	stats := week.CalculateWeekStats(all, pol)
	var otherWorked float64
	availableDays := 0
	for _, d := range all {
		if d.ID != day.ID {
			otherWorked += d.GrossHours
		}
		if d.LeaveType != week.LeaveFull && d.PunchOut == "" &&
			(d.ID == day.ID || d.Status == week.StatusFuture) {
			availableDays++
		}
	}
	remainingNeeded := math.Max(0, stats.RequiredTotal-otherWorked)
	adjustedTarget := remainingNeeded / math.Max(1, float64(availableDays))

	adjusted = CalculateOutTimeFromMinutes(day.PunchIn, adjustedTarget*60, settings, pol)
	return standard, adjusted
}
