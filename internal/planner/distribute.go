// Package planner turns a week of day records into actionable punch-out
// plans: an even redistribution of the remaining quota, and per-day
// punch-out suggestions under the hard end-of-day cap.
package planner

import (
	"math"

	"github.com/hazri/internal/clock"
	"github.com/hazri/internal/week"
)

// DistributeDeficit spreads the remaining required hours evenly across the
// adjustable days and returns the revised week. A day is locked out of the
// split when it is fully on leave, already in the past, or is today with a
// recorded punch-out; locked days come back untouched.
//
// The split is a single pass: when the cap trims one day below its equal
// share, the shortfall is not pushed onto the other days.
func DistributeDeficit(days []week.DayRecord, settings week.Settings, pol week.Policy) []week.DayRecord {
	stats := week.CalculateWeekStats(days, pol)
	out := week.Clone(days)

	var lockedHours float64
	var unlocked []int
	for i := range out {
		if isLocked(out[i]) {
			lockedHours += out[i].GrossHours
		} else {
			unlocked = append(unlocked, i)
		}
	}
	if len(unlocked) == 0 {
		return out
	}

	needed := math.Max(0, stats.RequiredTotal-lockedHours)
	hoursPerDay := needed / float64(len(unlocked))

	for _, i := range unlocked {
		d := &out[i]
		start := d.PunchIn
		if start == "" {
			start = settings.StandardInTime
		}
		end := clock.AddMinutesToTime(start, hoursPerDay*60)
		if capTime := effectiveCap(settings); clock.TimeToMinutes(end) > clock.TimeToMinutes(capTime) {
			end = capTime
		}
		d.PunchIn = start
		d.PunchOut = end
		d.GrossHours = clock.CalculateDuration(start, end)
	}

	return out
}

func isLocked(d week.DayRecord) bool {
	if d.LeaveType == week.LeaveFull {
		return true
	}
	if d.Status == week.StatusPast {
		return true
	}
	return d.Status == week.StatusPresent && d.PunchOut != ""
}

func effectiveCap(settings week.Settings) string {
	if settings.EnableMaxTime {
		return settings.MaxOutTime
	}
	return "23:59"
}
