package week

// =============================================================================
// ATTENDANCE POLICY CONFIGURATION
// =============================================================================
// These defaults mirror the portal's policy: a 47.5 hour week over five
// weekdays, with half/full day leave credited against the weekly target.
// Every engine takes a Policy explicitly so tests can run alternate rules.
// =============================================================================

// Policy bundles the fixed accounting constants.
type Policy struct {
	// WeeklyTargetHours is the full weekly quota before leave deductions.
	WeeklyTargetHours float64

	// DailyExpectationHours is one working day's share of the quota.
	DailyExpectationHours float64

	// HalfLeaveCreditHours is the credit for a half-day leave.
	HalfLeaveCreditHours float64

	// SafetyBufferMinutes pads punch-out suggestions to absorb the
	// seconds-level drift the portal hides at minute granularity.
	SafetyBufferMinutes int

	// HalfDayCreditMinutes is one half-day leave credit in minutes (285 = 4.75h).
	HalfDayCreditMinutes int

	// OnTrackTolerance absorbs rounding when comparing projection to quota.
	OnTrackTolerance float64
}

// DefaultPolicy returns the standard 47.5h/week rules.
func DefaultPolicy() Policy {
	return Policy{
		WeeklyTargetHours:     47.5,
		DailyExpectationHours: 9.5,
		HalfLeaveCreditHours:  4.75,
		SafetyBufferMinutes:   2,
		HalfDayCreditMinutes:  285,
		OnTrackTolerance:      0.1,
	}
}

// DailyExpectation returns the hours a day must contribute toward the
// weekly target given its leave type.
func (p Policy) DailyExpectation(leave LeaveType) float64 {
	switch leave {
	case LeaveFull:
		return 0
	case LeaveHalf:
		return p.HalfLeaveCreditHours
	default:
		return p.DailyExpectationHours
	}
}

// LeaveDeduction returns the hours a day's leave subtracts from the weekly
// target.
func (p Policy) LeaveDeduction(leave LeaveType) float64 {
	switch leave {
	case LeaveFull:
		return p.DailyExpectationHours
	case LeaveHalf:
		return p.HalfLeaveCreditHours
	default:
		return 0
	}
}
