package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazri/internal/config"
	"github.com/hazri/internal/storage"
	"github.com/hazri/internal/week"
)

var (
	cfg      *config.Config
	db       *storage.Database
	settings week.Settings
	policy   week.Policy
)

var rootCmd = &cobra.Command{
	Use:   "hazri",
	Short: "Reconcile portal attendance against your weekly hour quota",
	Long: `Hazri imports punch data pasted from the attendance portal, tracks the
week against the hour quota, and suggests punch-out times that keep you on track.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		db, err = storage.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		settings = cfg.Settings()
		policy = week.DefaultPolicy()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(spreadCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(configCmd)
}

// mondayOf returns the Monday of the week containing t, at midnight.
func mondayOf(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := t.AddDate(0, 0, -weekday+1)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// currentWeek loads the stored week or seeds a fresh one, re-deriving the
// today marker and day statuses so a week saved yesterday stays coherent.
func currentWeek() ([]week.DayRecord, time.Time, error) {
	now := time.Now()
	start := mondayOf(now)

	days, err := db.LoadWeek(start)
	if err != nil {
		return nil, start, err
	}
	if days == nil {
		return week.Seed(start, now), start, nil
	}

	rederiveStatuses(days, start)
	return days, start, nil
}

// rederiveStatuses refreshes the today marker and day statuses against the
// wall clock; leave edits and imports change what DeriveStatus returns.
func rederiveStatuses(days []week.DayRecord, start time.Time) {
	now := time.Now()
	for i := range days {
		date := start.AddDate(0, 0, i)
		days[i].IsToday = week.SameDay(date, now)
		days[i].Status = week.DeriveStatus(date, now, days[i].LeaveType)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
