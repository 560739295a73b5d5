// Package itinerary materializes a committed trip into a day-by-day plan.
//
// The activity template is a fixed placeholder: every day of every trip
// gets the same four entries regardless of the selected preferences. A
// real generation backend would replace this (see planner.Generator).
package itinerary

import (
	"time"

	"github.com/wanderlane/trip-planner-api/internal/models"
)

// FixedTemplate is the mock schedule applied to every day.
var FixedTemplate = []models.Activity{
	{
		Time:        "09:00-11:00",
		Title:       "Morning Museum Visit",
		Description: "Explore the city's rich cultural heritage",
		Location:    "Central Museum",
		Cost:        25,
		Weather:     models.Weather{Icon: "☀️", Temp: "72°F", Condition: "Sunny"},
		Transport:   "Walk",
		TravelTime:  "15 min",
	},
	{
		Time:        "11:30-13:00",
		Title:       "Local Market Tour",
		Description: "Browse local crafts and sample street food",
		Location:    "Market Square",
		Cost:        30,
		Weather:     models.Weather{Icon: "☀️", Temp: "75°F", Condition: "Clear"},
		Transport:   "Public Transport",
		TravelTime:  "10 min",
	},
	{
		Time:        "14:00-16:30",
		Title:       "Landmark Sightseeing",
		Description: "Visit iconic landmarks and photo spots",
		Location:    "Historic District",
		Cost:        20,
		Weather:     models.Weather{Icon: "⛅", Temp: "78°F", Condition: "Partly Cloudy"},
		Transport:   "Walk",
		TravelTime:  "20 min",
	},
	{
		Time:        "19:00-21:00",
		Title:       "Dinner & Entertainment",
		Description: "Traditional cuisine and live music",
		Location:    "Riverside Restaurant",
		Cost:        60,
		Weather:     models.Weather{Icon: "🌙", Temp: "68°F", Condition: "Clear Night"},
		Transport:   "Taxi",
		TravelTime:  "15 min",
	},
}

// BudgetSummary is a display derivation computed per read, never stored.
type BudgetSummary struct {
	TotalBudget int `json:"total_budget"`
	UsedBudget  int `json:"used_budget"`
	Remaining   int `json:"remaining"`
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Expand deterministically turns the trip's date range into one DayPlan
// per calendar day, inclusive of both ends. An inverted range yields an
// empty itinerary rather than an error.
func Expand(draft models.TripDraft) []models.DayPlan {
	from := startOfDay(draft.FromDate)
	to := startOfDay(draft.ToDate)

	days := int(to.Sub(from).Hours()/24) + 1
	if days <= 0 {
		return nil
	}

	templateCost := 0
	for _, a := range FixedTemplate {
		templateCost += a.Cost
	}

	plans := make([]models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		activities := make([]models.Activity, len(FixedTemplate))
		copy(activities, FixedTemplate)

		plans = append(plans, models.DayPlan{
			Date:       from.AddDate(0, 0, i),
			DayNumber:  i + 1,
			Activities: activities,
			TotalCost:  templateCost,
		})
	}

	return plans
}

// Summarize rolls the itinerary cost up against the trip budget. The
// per-person flag multiplies the budget by the headcount.
func Summarize(draft models.TripDraft, days []models.DayPlan) BudgetSummary {
	total := draft.Budget
	if draft.BudgetPerPerson {
		total = draft.Budget * draft.NumPeople
	}

	used := 0
	for _, d := range days {
		used += d.TotalCost
	}

	return BudgetSummary{
		TotalBudget: total,
		UsedBudget:  used,
		Remaining:   total - used,
	}
}
