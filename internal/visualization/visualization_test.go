package visualization

import (
	"strings"
	"testing"

	"github.com/hazri/internal/week"
)

func TestGenerateWeekSVGBasics(t *testing.T) {
	v := New()
	pol := week.DefaultPolicy()
	days := []week.DayRecord{
		{ID: "mon", DateLabel: "Jan 19", PunchIn: "11:20", PunchOut: "18:48", GrossHours: 7.4667, Status: week.StatusPast},
		{ID: "tue", DateLabel: "Jan 20", LeaveType: week.LeaveFull, Status: week.StatusLeave},
		{ID: "wed", DateLabel: "Jan 21", IsToday: true, PunchIn: "10:30", GrossHours: 4.25, Status: week.StatusPresent},
		{ID: "thu", DateLabel: "Jan 22", Status: week.StatusFuture},
		{ID: "fri", DateLabel: "Jan 23", Status: week.StatusFuture},
	}
	stats := week.CalculateWeekStats(days, pol)

	svg := v.GenerateWeekSVG(days, stats, pol)

	assertContains(t, svg, "<?xml")
	assertContains(t, svg, "Weekly Attendance")
	// Worked 11.7167h, required 38h, projected 7.4667+9.5+2*9.5 = 35.9667h.
	assertContains(t, svg, "Jan 19 - Jan 23 | Worked: 11.7/38.0h | Projected: 36.0h")
	assertContains(t, svg, "Daily Target")
	assertContains(t, svg, ">Mon</text>")
	assertContains(t, svg, ">Fri</text>")

	// A verb/argument mismatch in the template leaves %!f / %!s(MISSING)
	// markers behind; none may survive.
	if strings.Contains(svg, "%!") {
		t.Errorf("SVG contains fmt artifacts:\n%s", svg)
	}

	rectCount := strings.Count(svg, "<rect")
	if rectCount != 6 {
		t.Fatalf("expected 6 rects (background + 5 bars), got %d", rectCount)
	}
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("output missing %q", substr)
	}
}
