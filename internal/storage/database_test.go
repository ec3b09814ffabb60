package storage

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/hazri/internal/week"
)

func testDB(t *testing.T) *Database {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleWeek() []week.DayRecord {
	return []week.DayRecord{
		{ID: "mon", DateLabel: "Jan 19", PunchIn: "11:20", PunchOut: "18:48", GrossHours: 7.4667, LeaveType: week.LeaveNone, Status: week.StatusPast},
		{ID: "tue", DateLabel: "Jan 20", LeaveType: week.LeaveFull, Status: week.StatusLeave},
		{ID: "wed", DateLabel: "Jan 21", IsToday: true, PunchIn: "10:30", GrossHours: 4.25, LeaveType: week.LeaveNone, Status: week.StatusPresent},
		{ID: "thu", DateLabel: "Jan 22", LeaveType: week.LeaveHalf, Status: week.StatusFuture},
		{ID: "fri", DateLabel: "Jan 23", LeaveType: week.LeaveNone, Status: week.StatusFuture},
	}
}

func TestSaveAndLoadWeek(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)
	days := sampleWeek()

	if err := db.SaveWeek(start, days); err != nil {
		t.Fatalf("SaveWeek() error: %v", err)
	}

	loaded, err := db.LoadWeek(start)
	if err != nil {
		t.Fatalf("LoadWeek() error: %v", err)
	}
	if !reflect.DeepEqual(days, loaded) {
		t.Errorf("LoadWeek() = %+v, want %+v", loaded, days)
	}
}

func TestLoadWeekMissing(t *testing.T) {
	db := testDB(t)

	days, err := db.LoadWeek(time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("LoadWeek() error: %v", err)
	}
	if days != nil {
		t.Errorf("LoadWeek() = %+v, want nil for an unsaved week", days)
	}
}

func TestSaveWeekReplacesPrevious(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)

	if err := db.SaveWeek(start, sampleWeek()); err != nil {
		t.Fatalf("SaveWeek() error: %v", err)
	}

	revised := sampleWeek()
	revised[4].PunchIn = "10:30"
	revised[4].PunchOut = "20:00"
	revised[4].GrossHours = 9.5
	if err := db.SaveWeek(start, revised); err != nil {
		t.Fatalf("SaveWeek() error: %v", err)
	}

	loaded, err := db.LoadWeek(start)
	if err != nil {
		t.Fatalf("LoadWeek() error: %v", err)
	}
	if len(loaded) != 5 {
		t.Fatalf("LoadWeek() returned %d days, want 5 after replace", len(loaded))
	}
	if !reflect.DeepEqual(revised, loaded) {
		t.Errorf("LoadWeek() = %+v, want the revised week", loaded)
	}
}

func TestWeeksAreIsolated(t *testing.T) {
	db := testDB(t)
	thisWeek := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)
	nextWeek := thisWeek.AddDate(0, 0, 7)

	if err := db.SaveWeek(thisWeek, sampleWeek()); err != nil {
		t.Fatalf("SaveWeek() error: %v", err)
	}

	days, err := db.LoadWeek(nextWeek)
	if err != nil {
		t.Fatalf("LoadWeek() error: %v", err)
	}
	if days != nil {
		t.Errorf("next week should be empty, got %+v", days)
	}
}

func TestDeleteWeek(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)

	if err := db.SaveWeek(start, sampleWeek()); err != nil {
		t.Fatalf("SaveWeek() error: %v", err)
	}
	if err := db.DeleteWeek(start); err != nil {
		t.Fatalf("DeleteWeek() error: %v", err)
	}

	days, err := db.LoadWeek(start)
	if err != nil {
		t.Fatalf("LoadWeek() error: %v", err)
	}
	if days != nil {
		t.Errorf("LoadWeek() after delete = %+v, want nil", days)
	}
}
