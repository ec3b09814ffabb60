package parser

import (
	"reflect"
	"testing"

	"github.com/hazri/internal/week"
)

var testSettings = week.Settings{
	StandardInTime:    "10:30",
	MaxOutTime:        "20:31",
	EnableMaxTime:     true,
	LateBufferMinutes: 30,
}

func testWeek() []week.DayRecord {
	labels := []string{"Jan 19", "Jan 20", "Jan 21", "Jan 22", "Jan 23"}
	days := make([]week.DayRecord, 0, len(week.DayIDs))
	for i, id := range week.DayIDs {
		days = append(days, week.DayRecord{
			ID:        id,
			DateLabel: labels[i],
			LeaveType: week.LeaveNone,
			Status:    week.StatusFuture,
		})
	}
	return days
}

func TestParseLateArrivalWithDuration(t *testing.T) {
	text := `Mon, 19 Jan
7h 28m
0:50:45 late`

	out := Parse(text, testWeek(), testSettings)

	mon := out[0]
	if mon.PunchIn != "11:20" {
		t.Errorf("PunchIn = %q, want %q", mon.PunchIn, "11:20")
	}
	if mon.PunchOut != "18:48" {
		t.Errorf("PunchOut = %q, want %q", mon.PunchOut, "18:48")
	}
	if mon.GrossHours != 7.4667 {
		t.Errorf("GrossHours = %v, want 7.4667", mon.GrossHours)
	}
	if mon.LeaveType != week.LeaveNone {
		t.Errorf("LeaveType = %v, want %v", mon.LeaveType, week.LeaveNone)
	}

	for _, d := range out[1:] {
		if d.PunchIn != "" || d.GrossHours != 0 {
			t.Errorf("day %s changed without evidence: %+v", d.ID, d)
		}
	}
}

func TestParseOnTimeArrival(t *testing.T) {
	text := `Tue, 20 Jan
Shift 10:30 - 20:00 on time
9h 30m`

	out := Parse(text, testWeek(), testSettings)

	tue := out[1]
	if tue.PunchIn != "10:30" {
		t.Errorf("PunchIn = %q, want %q", tue.PunchIn, "10:30")
	}
	if tue.PunchOut != "20:00" {
		t.Errorf("PunchOut = %q, want %q", tue.PunchOut, "20:00")
	}
	if tue.GrossHours != 9.5 {
		t.Errorf("GrossHours = %v, want 9.5", tue.GrossHours)
	}
}

func TestParseUnknownArrivalKeepsPunchesOpen(t *testing.T) {
	text := `Wed, 21 Jan
4h 15m`

	out := Parse(text, testWeek(), testSettings)

	wed := out[2]
	if wed.PunchIn != "" || wed.PunchOut != "" {
		t.Errorf("punches = %q/%q, want both empty without arrival evidence", wed.PunchIn, wed.PunchOut)
	}
	if wed.GrossHours != 4.25 {
		t.Errorf("GrossHours = %v, want 4.25", wed.GrossHours)
	}
}

func TestParseTodaySuppressesPunchOut(t *testing.T) {
	days := testWeek()
	days[0].IsToday = true
	days[0].Status = week.StatusPresent

	text := `Mon, 19 Jan
3h 10m
on time`

	out := Parse(text, days, testSettings)

	mon := out[0]
	if mon.PunchIn != "10:30" {
		t.Errorf("PunchIn = %q, want %q", mon.PunchIn, "10:30")
	}
	if mon.PunchOut != "" {
		t.Errorf("PunchOut = %q, want empty for a day still in progress", mon.PunchOut)
	}
}

func TestParseRunningTotalTakesMax(t *testing.T) {
	// The portal repeats the running total several times per row.
	text := `Mon, 19 Jan
2h 05m 2h 05m
5h 40m
on time
7h 28m 7h 28m`

	out := Parse(text, testWeek(), testSettings)

	if out[0].GrossHours != 7.4667 {
		t.Errorf("GrossHours = %v, want the max reading 7.4667", out[0].GrossHours)
	}
}

func TestParseInlineLeaveSuffix(t *testing.T) {
	text := `Fri, 16 JanLeave`

	days := testWeek()
	days[4].DateLabel = "Jan 16"

	out := Parse(text, days, testSettings)

	fri := out[4]
	if fri.LeaveType != week.LeaveFull {
		t.Errorf("LeaveType = %v, want %v", fri.LeaveType, week.LeaveFull)
	}
	if fri.PunchIn != "" || fri.PunchOut != "" {
		t.Errorf("punches = %q/%q, want both empty on full leave", fri.PunchIn, fri.PunchOut)
	}
	if fri.GrossHours != 0 {
		t.Errorf("GrossHours = %v, want 0", fri.GrossHours)
	}
}

func TestParseLeaveKeywords(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"holiday", "Holiday"},
		{"paid leave", "Paid Leave"},
		{"unpaid leave", "unpaid leave"},
		{"sick leave", "SICK LEAVE"},
		{"casual leave", "Casual Leave applied"},
		{"weekly off", "Weekly-off"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Thu, 22 Jan\n" + tt.line
			out := Parse(text, testWeek(), testSettings)
			if out[3].LeaveType != week.LeaveFull {
				t.Errorf("line %q: LeaveType = %v, want %v", tt.line, out[3].LeaveType, week.LeaveFull)
			}
		})
	}
}

func TestParseHoursOverrideLeaveTag(t *testing.T) {
	text := `Wed, 21 Jan
Sick Leave
5h 0m
on time`

	out := Parse(text, testWeek(), testSettings)

	wed := out[2]
	if wed.LeaveType != week.LeaveNone {
		t.Errorf("LeaveType = %v, want %v (hours win over a same-day tag)", wed.LeaveType, week.LeaveNone)
	}
	if wed.GrossHours != 5 {
		t.Errorf("GrossHours = %v, want 5", wed.GrossHours)
	}
}

func TestParseIgnoresOtherWeeks(t *testing.T) {
	// A heading outside the displayed week drops the cursor; everything up
	// to the next recognized heading must be skipped.
	text := `Mon, 12 Jan
9h 30m
on time
Tue, 20 Jan
6h 00m
on time`

	days := testWeek()
	out := Parse(text, days, testSettings)

	if out[0].GrossHours != 0 || out[0].PunchIn != "" {
		t.Errorf("mon picked up data from another week: %+v", out[0])
	}
	if out[1].GrossHours != 6 {
		t.Errorf("tue GrossHours = %v, want 6", out[1].GrossHours)
	}
}

func TestParseUnrecognizedTextChangesNothing(t *testing.T) {
	days := testWeek()
	out := Parse("random pasted noise\nnothing to see\n42", days, testSettings)

	if !reflect.DeepEqual(days, out) {
		t.Errorf("unrecognized text must leave the week unchanged\nbefore: %+v\nafter: %+v", days, out)
	}
}

func TestParseDoesNotMutateInput(t *testing.T) {
	days := testWeek()
	before := make([]week.DayRecord, len(days))
	copy(before, days)

	Parse("Mon, 19 Jan\n7h 28m\non time", days, testSettings)

	if !reflect.DeepEqual(before, days) {
		t.Error("Parse mutated its input slice")
	}
}

func TestParseIdempotent(t *testing.T) {
	text := `Mon, 19 Jan
7h 28m
0:50:45 late
Tue, 20 Jan
Paid Leave
Wed, 21 Jan
9h 30m
on time`

	first := Parse(text, testWeek(), testSettings)
	second := Parse(text, first, testSettings)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-running the parser on its own output changed it\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
