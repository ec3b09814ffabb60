package week

import "math"

// WeekStats is the derived weekly picture, recomputed whenever the day
// records change.
type WeekStats struct {
	TotalWorked         float64
	RequiredTotal       float64
	OriginalTarget      float64
	TotalLeaveDeduction float64
	RemainingWeekly     float64
	WeeklyDeficit       float64
	ProjectedTotal      float64
	OnTrack             bool
}

// CalculateWeekStats aggregates the week under the given policy.
//
// Projection is optimistic for days still in flight: a closed day (punch-out
// recorded) counts its actual hours, an open day counts at least its daily
// expectation, a not-yet-started Future/Present day counts the expectation,
// and a Past day with no data contributes nothing.
//
// The running deficit only looks at settled days (Past, or any day already
// punched out) so an in-progress day never shows as behind.
func CalculateWeekStats(days []DayRecord, pol Policy) WeekStats {
	stats := WeekStats{OriginalTarget: pol.WeeklyTargetHours}

	var expectedSoFar, workedSoFar float64
	for _, d := range days {
		stats.TotalWorked += d.GrossHours
		stats.TotalLeaveDeduction += pol.LeaveDeduction(d.LeaveType)

		expectation := pol.DailyExpectation(d.LeaveType)
		switch {
		case d.PunchOut != "":
			stats.ProjectedTotal += d.GrossHours
		case d.PunchIn != "":
			stats.ProjectedTotal += math.Max(d.GrossHours, expectation)
		case d.Status == StatusFuture || d.Status == StatusPresent:
			stats.ProjectedTotal += expectation
		}

		if d.Status == StatusPast || d.PunchOut != "" {
			expectedSoFar += expectation
			workedSoFar += d.GrossHours
		}
	}

	stats.RequiredTotal = math.Max(0, pol.WeeklyTargetHours-stats.TotalLeaveDeduction)
	stats.RemainingWeekly = math.Max(0, stats.RequiredTotal-stats.TotalWorked)
	stats.WeeklyDeficit = math.Max(0, expectedSoFar-workedSoFar)
	stats.OnTrack = stats.ProjectedTotal >= stats.RequiredTotal-pol.OnTrackTolerance

	return stats
}
