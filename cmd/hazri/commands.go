package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hazri/internal/clock"
	"github.com/hazri/internal/config"
	"github.com/hazri/internal/parser"
	"github.com/hazri/internal/planner"
	"github.com/hazri/internal/visualization"
	"github.com/hazri/internal/week"
)

var importCmd = &cobra.Command{
	Use:     "import [file]",
	Aliases: []string{"i"},
	Short:   "Import attendance text pasted from the portal",
	Long: `Parse attendance text copied out of the portal and merge the recognized
punches, durations and leave tags into the current week. Reads from a file
argument, the clipboard with -c, or stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		fromClipboard, _ := cmd.Flags().GetBool("clipboard")
		switch {
		case fromClipboard:
			var err error
			text, err = clipboard.ReadAll()
			if err != nil {
				return fmt.Errorf("failed to read clipboard: %w", err)
			}
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text = string(data)
		default:
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			text = string(data)
		}

		days, start, err := currentWeek()
		if err != nil {
			return err
		}

		updated := parser.Parse(text, days, settings)
		changed := diffDays(days, updated)
		if changed == 0 {
			return fmt.Errorf("no attendance data recognized for the displayed week")
		}
		rederiveStatuses(updated, start)

		if err := db.SaveWeek(start, updated); err != nil {
			return err
		}

		fmt.Printf("Imported data for %d day(s)\n", changed)
		printWeek(updated, week.CalculateWeekStats(updated, policy))
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w", "status"},
	Short:   "Show the current week against the quota",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _, err := currentWeek()
		if err != nil {
			return err
		}
		printWeek(days, week.CalculateWeekStats(days, policy))
		return nil
	},
}

var suggestCmd = &cobra.Command{
	Use:     "suggest [day]",
	Aliases: []string{"s"},
	Short:   "Suggest punch-out times for a day",
	Long: `Compute two punch-out candidates for a day: the standard one targeting the
day's own expectation, and the weekly-adjusted one spreading the remaining
weekly requirement over the still-open days. Defaults to today.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _, err := currentWeek()
		if err != nil {
			return err
		}

		day, err := pickDay(days, args)
		if err != nil {
			return err
		}

		standard, adjusted := planner.SmartSuggestions(*day, days, settings, policy)
		printSuggestion("Standard", standard)
		printSuggestion("Adjusted", adjusted)
		return nil
	},
}

var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Spread the remaining required hours across open days",
	Long: `Redistribute the remaining weekly requirement evenly across the days that
are still adjustable, capping punch-outs at the configured max-out time.
Past days, full-leave days and a punched-out today are left alone.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		days, start, err := currentWeek()
		if err != nil {
			return err
		}

		revised := planner.DistributeDeficit(days, settings, policy)
		printWeek(revised, week.CalculateWeekStats(revised, policy))

		if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
			fmt.Println("(dry run, nothing saved)")
			return nil
		}
		return db.SaveWeek(start, revised)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <day>",
	Short: "Edit a day's punches or leave",
	Long: `Set punch-in/punch-out times or the leave type for one weekday (mon..fri).
Gross hours are re-derived from the punch pair; full leave clears the punches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, start, err := currentWeek()
		if err != nil {
			return err
		}

		day := week.Find(days, strings.ToLower(args[0]))
		if day == nil {
			return fmt.Errorf("unknown day %q (use mon..fri)", args[0])
		}

		if cmd.Flags().Changed("in") {
			day.PunchIn, _ = cmd.Flags().GetString("in")
		}
		if cmd.Flags().Changed("out") {
			day.PunchOut, _ = cmd.Flags().GetString("out")
		}
		if cmd.Flags().Changed("leave") {
			leave, _ := cmd.Flags().GetString("leave")
			switch week.LeaveType(leave) {
			case week.LeaveNone, week.LeaveHalf, week.LeaveFull:
				day.LeaveType = week.LeaveType(leave)
			default:
				return fmt.Errorf("invalid leave type %q (use none, half or full)", leave)
			}
		}

		clearedPunch := (cmd.Flags().Changed("in") && day.PunchIn == "") ||
			(cmd.Flags().Changed("out") && day.PunchOut == "")

		// Full leave means no punches and no hours.
		switch {
		case day.LeaveType == week.LeaveFull:
			day.PunchIn = ""
			day.PunchOut = ""
			day.GrossHours = 0
		case day.PunchIn != "" && day.PunchOut != "":
			day.GrossHours = clock.CalculateDuration(day.PunchIn, day.PunchOut)
		case clearedPunch:
			// An explicitly cleared punch takes the derived hours with it.
			day.GrossHours = 0
		}
		rederiveStatuses(days, start)

		if err := db.SaveWeek(start, days); err != nil {
			return err
		}
		printWeek(days, week.CalculateWeekStats(days, policy))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored week",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, start, err := currentWeek()
		if err != nil {
			return err
		}
		if err := db.DeleteWeek(start); err != nil {
			return err
		}
		fmt.Printf("Cleared week of %s\n", start.Format("Jan 2"))
		return nil
	},
}

var chartCmd = &cobra.Command{
	Use:   "chart [output.svg]",
	Short: "Write the week as an SVG chart",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _, err := currentWeek()
		if err != nil {
			return err
		}

		path := "week.svg"
		if len(args) == 1 {
			path = args[0]
		}

		svg := visualization.New().GenerateWeekSVG(days, week.CalculateWeekStats(days, policy), policy)
		if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("StandardInTime:    %s\n", cfg.StandardInTime)
		fmt.Printf("MaxOutTime:        %s\n", cfg.MaxOutTime)
		fmt.Printf("EnableMaxTime:     %t\n", settings.EnableMaxTime)
		fmt.Printf("LateBufferMinutes: %d\n", settings.LateBufferMinutes)
		fmt.Printf("DatabasePath:      %s\n", cfg.DatabasePath)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long:  `Keys: standard-in, max-out, cap, late-buffer, db.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		switch key {
		case "standard-in":
			cfg.StandardInTime = value
		case "max-out":
			cfg.MaxOutTime = value
		case "cap":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid bool %q", value)
			}
			cfg.EnableMaxTime = &enabled
		case "late-buffer":
			minutes, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid minutes %q", value)
			}
			cfg.LateBufferMinutes = &minutes
		case "db":
			cfg.DatabasePath = value
		default:
			return fmt.Errorf("unknown key %q", key)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

func init() {
	importCmd.Flags().BoolP("clipboard", "c", false, "read the text from the clipboard")
	spreadCmd.Flags().Bool("dry-run", false, "show the redistribution without saving")
	setCmd.Flags().String("in", "", "punch-in time (HH:MM)")
	setCmd.Flags().String("out", "", "punch-out time (HH:MM)")
	setCmd.Flags().String("leave", "", "leave type: none, half or full")
	configCmd.AddCommand(configSetCmd)
}

// pickDay resolves the day argument, defaulting to today.
func pickDay(days []week.DayRecord, args []string) (*week.DayRecord, error) {
	if len(args) == 1 {
		day := week.Find(days, strings.ToLower(args[0]))
		if day == nil {
			return nil, fmt.Errorf("unknown day %q (use mon..fri)", args[0])
		}
		return day, nil
	}
	for i := range days {
		if days[i].IsToday {
			return &days[i], nil
		}
	}
	return nil, fmt.Errorf("no day given and the displayed week has no today")
}

func diffDays(before, after []week.DayRecord) int {
	changed := 0
	for i := range before {
		if before[i] != after[i] {
			changed++
		}
	}
	return changed
}

func printWeek(days []week.DayRecord, stats week.WeekStats) {
	fmt.Printf("%-5s %-8s %-7s %-7s %8s %-7s %s\n",
		"Day", "Date", "In", "Out", "Hours", "Leave", "Status")
	for _, d := range days {
		marker := " "
		if d.IsToday {
			marker = "*"
		}
		in, out := d.PunchIn, d.PunchOut
		if in == "" {
			in = "-"
		}
		if out == "" {
			out = "-"
		}
		leave := "-"
		if d.LeaveType != week.LeaveNone {
			leave = string(d.LeaveType)
		}
		fmt.Printf("%s%-4s %-8s %-7s %-7s %8.2f %-7s %s\n",
			marker, d.ID, d.DateLabel, in, out, d.GrossHours, leave, d.Status)
	}

	fmt.Printf("\nWorked: %.2fh | Required: %.2fh | Remaining: %.2fh | Deficit so far: %s | Projected: %.2fh\n",
		stats.TotalWorked, stats.RequiredTotal, stats.RemainingWeekly,
		clock.DecimalToDuration(stats.WeeklyDeficit), stats.ProjectedTotal)

	if stats.OnTrack {
		color.New(color.FgGreen).Println("On track for the week")
	} else {
		color.New(color.FgRed).Printf("Off track: projected %.2fh of %.2fh required\n",
			stats.ProjectedTotal, stats.RequiredTotal)
	}
}

func printSuggestion(label string, s planner.SuggestionResult) {
	switch s.Status {
	case planner.SuggestionNone:
		fmt.Printf("%-9s -      %s\n", label, s.Msg)
	case planner.SuggestionOK:
		fmt.Printf("%-9s %s  %s\n", label, s.Time, s.Msg)
	case planner.SuggestionLate:
		color.New(color.FgYellow).Printf("%-9s %s  %s\n", label, s.Time, s.Msg)
	case planner.SuggestionCredit:
		color.New(color.FgYellow).Printf("%-9s %s  %s\n", label, s.Time, s.Msg)
	case planner.SuggestionImpossible:
		color.New(color.FgRed).Printf("%-9s %s  %s\n", label, s.Time, s.Msg)
	}
}
