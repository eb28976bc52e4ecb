package services

import (
	"reflect"
	"testing"
	"time"

	"backend/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// Food logs replace wholesale: submitting the same payload against the
// result of the first submission yields the same stored state.
func TestFoodMerge_ReplaceIsIdempotent(t *testing.T) {
	entries := []models.FoodEntry{
		{FoodName: "Banana", Grams: 120, Kcal: 106.8, Proteins: 1.32, Carbs: 27.6, Fats: 0.36},
	}
	merge := replaceFoodLog(1, "2026-03-01", entries)

	first := merge(nil)
	second := merge(&first)

	if !reflect.DeepEqual(first.Entries, second.Entries) {
		t.Errorf("entries differ after resubmission: %+v vs %+v", first.Entries, second.Entries)
	}
	if first.TotalKcal != second.TotalKcal || first.TotalProteins != second.TotalProteins ||
		first.TotalCarbs != second.TotalCarbs || first.TotalFats != second.TotalFats {
		t.Errorf("totals differ after resubmission: %+v vs %+v", first, second)
	}
}

func TestFoodMerge_RecomputesTotals(t *testing.T) {
	stale := models.FoodLog{
		UserID:    1,
		Date:      "2026-03-01",
		Entries:   models.FoodEntries{{FoodName: "Oats", Kcal: 389}},
		TotalKcal: 389,
	}
	incoming := []models.FoodEntry{
		{FoodName: "Eggs", Grams: 100, Kcal: 155, Proteins: 13, Carbs: 1.1, Fats: 11},
		{FoodName: "Milk", Grams: 200, Kcal: 84, Proteins: 6.8, Carbs: 10, Fats: 2},
	}

	next := replaceFoodLog(1, "2026-03-01", incoming)(&stale)

	if len(next.Entries) != 2 {
		t.Fatalf("expected wholesale replace, got %d entries", len(next.Entries))
	}
	if next.TotalKcal != 239 {
		t.Errorf("TotalKcal = %v, want 239", next.TotalKcal)
	}
	if next.TotalProteins != 19.8 {
		t.Errorf("TotalProteins = %v, want 19.8", next.TotalProteins)
	}
}

func TestWaterMerge_FirstPourSnapshotsGoal(t *testing.T) {
	next := accumulateWater(1, "2026-03-01", 250, 2145, testNow)(nil)

	if next.TotalIntakeML != 250 {
		t.Errorf("TotalIntakeML = %d, want 250", next.TotalIntakeML)
	}
	if next.GoalML != 2145 {
		t.Errorf("GoalML = %d, want 2145", next.GoalML)
	}
	if len(next.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(next.Entries))
	}
	if next.Entries[0].AmountML != 250 {
		t.Errorf("entry amount = %d, want 250", next.Entries[0].AmountML)
	}
	if next.Entries[0].Time != testNow.UTC().Format(time.RFC3339) {
		t.Errorf("entry time = %q", next.Entries[0].Time)
	}
	if next.Entries[0].ID == "" {
		t.Error("entry missing id")
	}
}

// Two pours accumulate into one record, and the goal from the first
// pour survives even when the user's target has since changed.
func TestWaterMerge_Accumulates(t *testing.T) {
	first := accumulateWater(1, "2026-03-01", 250, 2145, testNow)(nil)
	// user's weight (and thus target) changes between pours
	second := accumulateWater(1, "2026-03-01", 300, 2310, testNow.Add(time.Hour))(&first)

	if second.TotalIntakeML != 550 {
		t.Errorf("TotalIntakeML = %d, want 550", second.TotalIntakeML)
	}
	if len(second.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(second.Entries))
	}
	if second.GoalML != 2145 {
		t.Errorf("GoalML = %d, want the first pour's 2145", second.GoalML)
	}
	if second.Entries[0].ID == second.Entries[1].ID {
		t.Error("pour ids must be unique")
	}
}

func TestSleepMerge_Overwrites(t *testing.T) {
	existing := replaceSleepLog(1, "2026-03-01", 6, "fair", "restless")(nil)
	next := replaceSleepLog(1, "2026-03-01", 8, "good", "")(&existing)

	if next.Hours != 8 || next.Quality != "good" || next.Notes != "" {
		t.Errorf("sleep log not fully replaced: %+v", next)
	}
}

func TestMoodMerge_Overwrites(t *testing.T) {
	existing := replaceMoodLog(1, "2026-03-01", "neutral", "")(nil)
	next := replaceMoodLog(1, "2026-03-01", "happy", "sunny day")(&existing)

	if next.Mood != "happy" || next.Notes != "sunny day" {
		t.Errorf("mood log not fully replaced: %+v", next)
	}
}

// Replace merges keep the existing row identity so the update hits the
// same primary key instead of inserting a second row for the day.
func TestReplaceMerges_PreserveRowIdentity(t *testing.T) {
	existing := replaceFoodLog(1, "2026-03-01", nil)(nil)
	existing.ID = 42

	next := replaceFoodLog(1, "2026-03-01", []models.FoodEntry{{FoodName: "Apple", Kcal: 52}})(&existing)
	if next.ID != 42 {
		t.Errorf("food replace lost row id: got %d, want 42", next.ID)
	}

	sleep := replaceSleepLog(1, "2026-03-01", 7, "good", "")(nil)
	sleep.ID = 7
	if got := replaceSleepLog(1, "2026-03-01", 8, "excellent", "")(&sleep); got.ID != 7 {
		t.Errorf("sleep replace lost row id: got %d, want 7", got.ID)
	}
}
