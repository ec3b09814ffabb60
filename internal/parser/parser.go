// Package parser extracts attendance facts from semi-structured text pasted
// out of the attendance portal and merges them into the displayed week.
//
// The scan is a two-state machine over lines: Idle, or inside the block of
// one recognized day. A date heading like "Mon, 19 Jan" anchors a block; a
// heading that does not match any displayed day drops the machine back to
// Idle so stray rows from other weeks never bleed into this one. Evidence
// found inside a block (running duration totals, lateness, leave keywords)
// collects into a per-day accumulator and is resolved in a single pass after
// the scan. Malformed text is never an error, it just yields no evidence.
package parser

import (
	"bufio"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hazri/internal/clock"
	"github.com/hazri/internal/week"
)

var (
	dateLinePattern = regexp.MustCompile(`^(Mon|Tue|Wed|Thu|Fri|Sat|Sun),\s+(\d{1,2})\s+([A-Za-z]{3})`)
	durationPattern = regexp.MustCompile(`(\d+)h\s+(\d+)m`)
	latePattern     = regexp.MustCompile(`(?i)(\d+):(\d+)(?::\d+)?\s+late`)
	onTimePattern   = regexp.MustCompile(`(?i)\bon\s+time\b`)
	leavePattern    = regexp.MustCompile(`(?i)\b(holiday|paid leave|unpaid leave|sick leave|casual leave|weekly-off)\b`)
)

// Inline suffixes the portal glues straight onto a date heading ("16 JanLeave").
var dateLineSuffixes = []string{"leave", "hldy", "w-off", "holiday"}

type arrival uint8

const (
	arrivalUnknown arrival = iota
	arrivalOnTime
	arrivalLate
)

// accumulator gathers evidence for one day across all lines of its block.
type accumulator struct {
	maxMinutes  int // largest "Nh Nm" reading; the portal repeats a running total
	arrival     arrival
	lateMinutes int
	leave       bool
}

// Parse scans raw portal text against the displayed week and returns a new
// day slice with punches, gross hours and leave type filled in wherever the
// text carried evidence. Days without a matching block come back unchanged;
// the input slice is never mutated.
func Parse(text string, days []week.DayRecord, settings week.Settings) []week.DayRecord {
	acc := scan(text, days)
	return resolve(days, acc, settings)
}

func scan(text string, days []week.DayRecord) map[string]*accumulator {
	acc := make(map[string]*accumulator)
	cursor := "" // day id of the open block; empty means Idle

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if loc := dateLinePattern.FindStringSubmatchIndex(line); loc != nil {
			cursor = matchDate(line, loc, days)
			if cursor != "" {
				a := dayAcc(acc, cursor)
				if hasLeaveEvidence(line, line[loc[1]:]) {
					a.leave = true
				}
			}
			continue
		}
		if cursor == "" {
			continue // Idle: skip until the next recognized heading
		}
		collect(dayAcc(acc, cursor), line)
	}

	return acc
}

// matchDate correlates a date heading against the displayed days and returns
// the matched day id, or empty when the heading belongs to another week.
func matchDate(line string, loc []int, days []week.DayRecord) string {
	dom, err := strconv.Atoi(line[loc[4]:loc[5]])
	if err != nil {
		return ""
	}
	month := line[loc[6]:loc[7]]

	for _, d := range days {
		fields := strings.Fields(d.DateLabel)
		if len(fields) != 2 {
			continue
		}
		labelDom, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		if strings.EqualFold(fields[0], month) && labelDom == dom {
			return d.ID
		}
	}
	return ""
}

func collect(a *accumulator, line string) {
	for _, m := range durationPattern.FindAllStringSubmatch(line, -1) {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if total := h*60 + min; total > a.maxMinutes {
			a.maxMinutes = total
		}
	}

	if m := latePattern.FindStringSubmatch(line); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		a.arrival = arrivalLate
		a.lateMinutes = h*60 + min
	}
	if onTimePattern.MatchString(line) {
		a.arrival = arrivalOnTime
		a.lateMinutes = 0
	}

	if leavePattern.MatchString(line) {
		a.leave = true
	}
}

func hasLeaveEvidence(line, rest string) bool {
	if leavePattern.MatchString(line) {
		return true
	}
	rest = strings.ToLower(rest)
	for _, suffix := range dateLineSuffixes {
		if strings.Contains(rest, suffix) {
			return true
		}
	}
	return false
}

// resolve folds the accumulators into a fresh copy of the week. Hours found
// on a day always win over a leave tag seen on the same day.
func resolve(days []week.DayRecord, acc map[string]*accumulator, settings week.Settings) []week.DayRecord {
	out := week.Clone(days)
	for i := range out {
		a, ok := acc[out[i].ID]
		if !ok {
			continue
		}
		d := &out[i]

		switch {
		case a.maxMinutes > 0:
			in := ""
			switch a.arrival {
			case arrivalLate:
				in = clock.AddMinutesToTime(settings.StandardInTime, float64(a.lateMinutes))
			case arrivalOnTime:
				in = settings.StandardInTime
			}
			if in != "" {
				d.PunchIn = in
				// A day still in progress keeps an open punch-out; an
				// inferred "out" would claim the employee already left.
				if d.IsToday {
					d.PunchOut = ""
				} else {
					d.PunchOut = clock.AddMinutesToTime(in, float64(a.maxMinutes))
				}
			}
			d.GrossHours = math.Round(float64(a.maxMinutes)/60*10000) / 10000
			d.LeaveType = week.LeaveNone
		case a.leave:
			d.LeaveType = week.LeaveFull
			d.PunchIn = ""
			d.PunchOut = ""
			d.GrossHours = 0
		}
	}
	return out
}

func dayAcc(acc map[string]*accumulator, id string) *accumulator {
	a, ok := acc[id]
	if !ok {
		a = &accumulator{}
		acc[id] = a
	}
	return a
}
