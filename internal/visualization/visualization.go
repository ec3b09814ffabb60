package visualization

import (
	"fmt"
	"strings"

	"github.com/hazri/internal/week"
)

type Visualizer struct{}

func New() *Visualizer {
	return &Visualizer{}
}

// GenerateWeekSVG renders the five weekdays as worked-hour bars against the
// daily expectation line, with the weekly picture in the header.
func (v *Visualizer) GenerateWeekSVG(days []week.DayRecord, stats week.WeekStats, pol week.Policy) string {
	width := 600
	height := 300
	padding := 40
	barWidth := float64((width - 2*padding) / len(week.DayIDs))
	maxHours := 12.0 // Max hours per day to display

	var labels []string
	var bars strings.Builder
	for i, d := range days {
		labels = append(labels, strings.ToUpper(d.ID[:1])+d.ID[1:])

		barHeight := (d.GrossHours / maxHours) * float64(height-2*padding)
		if barHeight > float64(height-2*padding) {
			barHeight = float64(height - 2*padding)
		}

		x := float64(padding) + float64(i)*barWidth + 5
		y := float64(height) - float64(padding) - barHeight

		color := "#4CAF50"
		switch {
		case d.LeaveType != week.LeaveNone:
			color = "#9E9E9E"
		case d.GrossHours < pol.DailyExpectation(d.LeaveType) && d.Status == week.StatusPast:
			color = "#F44336"
		case d.PunchOut == "" && d.PunchIn != "":
			color = "#FF9800"
		}

		bars.WriteString(fmt.Sprintf(`<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" fill="%s" rx="4"/>
    <text x="%.0f" y="%d" text-anchor="middle" font-size="12" fill="#333">%.1fh</text>`,
			x, y, barWidth-10, barHeight, color,
			x+barWidth/2-5, int(y)-5, d.GrossHours))
	}

	goalY := float64(height) - float64(padding) - (pol.DailyExpectationHours/maxHours)*float64(height-2*padding)

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">
  <defs>
    <linearGradient id="bgGrad" x1="0%%" y1="0%%" x2="0%%" y2="100%%">
      <stop offset="0%%" style="stop-color:#f5f7fa"/>
      <stop offset="100%%" style="stop-color:#e4e8ec"/>
    </linearGradient>
  </defs>
  <rect width="%d" height="%d" fill="url(#bgGrad)" rx="10"/>
  <text x="%d" y="30" text-anchor="middle" font-size="18" font-weight="bold" fill="#2c3e50">Weekly Attendance</text>
  <text x="%d" y="55" text-anchor="middle" font-size="12" fill="#7f8c8d">%s | Worked: %.1f/%.1fh | Projected: %.1fh</text>

  <!-- Daily expectation line -->
  <line x1="%d" y1="%.0f" x2="%d" y2="%.0f" stroke="#E74C3C" stroke-width="2" stroke-dasharray="5,5"/>
  <text x="%d" y="%.0f" font-size="10" fill="#E74C3C">Daily Target</text>

  <!-- Bars -->
  %s

  <!-- X-axis labels -->
  %s

  <!-- Grid lines -->
  %s
</svg>`,
		width, height, width, height,
		width, height,
		width/2,
		width/2, weekRangeLabel(days), stats.TotalWorked, stats.RequiredTotal, stats.ProjectedTotal,
		padding, goalY, width-padding, goalY,
		width-padding+2, goalY-5,
		bars.String(),
		v.generateXLabels(labels, float64(padding), barWidth, float64(height-padding)),
		v.generateGridLines(maxHours, height, padding, width),
	)
}

func weekRangeLabel(days []week.DayRecord) string {
	if len(days) == 0 {
		return ""
	}
	return fmt.Sprintf("%s - %s", days[0].DateLabel, days[len(days)-1].DateLabel)
}

func (v *Visualizer) generateXLabels(days []string, padding float64, barWidth float64, y float64) string {
	var labels strings.Builder
	for i, day := range days {
		x := padding + float64(i)*barWidth + barWidth/2 - 5
		labels.WriteString(fmt.Sprintf(`<text x="%.0f" y="%d" text-anchor="middle" font-size="12" fill="#7f8c8d">%s</text>`,
			x, int(y)+20, day))
	}
	return labels.String()
}

func (v *Visualizer) generateGridLines(maxHours float64, height int, padding int, width int) string {
	var lines strings.Builder
	for i := 1; i <= 4; i++ {
		y := float64(height) - float64(padding) - (float64(i)/4.0)*float64(height-2*padding)
		lines.WriteString(fmt.Sprintf(`<line x1="%d" y1="%.0f" x2="%d" y2="%.0f" stroke="#E0E0E0"/>`,
			padding, y, width-padding, y))
	}
	return lines.String()
}
