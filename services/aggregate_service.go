package services

import (
	"sort"

	"backend/models"
)

// FoodTotals is the elementwise sum over a food log's entries.
type FoodTotals struct {
	Kcal     float64 `json:"total_kcal"`
	Proteins float64 `json:"total_proteins"`
	Carbs    float64 `json:"total_carbs"`
	Fats     float64 `json:"total_fats"`
}

func SumFoodEntries(entries []models.FoodEntry) FoodTotals {
	var t FoodTotals
	for _, e := range entries {
		t.Kcal += e.Kcal
		t.Proteins += e.Proteins
		t.Carbs += e.Carbs
		t.Fats += e.Fats
	}
	return t
}

// ActivitySummary reduces one date's activity rows.
type ActivitySummary struct {
	Date          string  `json:"date"`
	TotalDuration float64 `json:"total_duration"`
	TotalCalories float64 `json:"total_calories"`
	TotalSteps    int     `json:"total_steps"`
	ActivityCount int     `json:"activity_count"`
}

func SummarizeActivities(date string, logs []models.ActivityLog) ActivitySummary {
	s := ActivitySummary{Date: date}
	for _, l := range logs {
		s.TotalDuration += l.DurationMin
		s.TotalCalories += l.CaloriesBurned
		s.TotalSteps += l.Steps
		s.ActivityCount++
	}
	return s
}

// GroupActivityHistory buckets rows by their date string and reduces
// each bucket independently. Dates with no entries simply don't appear;
// the range is not zero-filled. Rows come back in ascending date order.
func GroupActivityHistory(logs []models.ActivityLog) []ActivitySummary {
	byDate := make(map[string][]models.ActivityLog)
	for _, l := range logs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	out := make([]ActivitySummary, 0, len(byDate))
	for date, group := range byDate {
		out = append(out, SummarizeActivities(date, group))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
