package itinerary

import (
	"reflect"
	"testing"
	"time"

	"github.com/wanderlane/trip-planner-api/internal/models"
)

func testDraft(from, to time.Time) models.TripDraft {
	d := models.NewTripDraft()
	d.Destination = "Lisbon"
	d.FromDate = from
	d.ToDate = to
	return d
}

func TestExpand_DayCount(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	days := Expand(testDraft(from, to))

	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	for i, day := range days {
		if day.DayNumber != i+1 {
			t.Errorf("day %d: expected DayNumber %d, got %d", i, i+1, day.DayNumber)
		}
		want := from.AddDate(0, 0, i)
		if !day.Date.Equal(want) {
			t.Errorf("day %d: expected date %v, got %v", i, want, day.Date)
		}
	}
}

func TestExpand_SingleDay(t *testing.T) {
	from := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	days := Expand(testDraft(from, from))

	if len(days) != 1 {
		t.Fatalf("expected 1 day when fromDate equals toDate, got %d", len(days))
	}
	if days[0].DayNumber != 1 {
		t.Errorf("expected DayNumber 1, got %d", days[0].DayNumber)
	}
}

func TestExpand_InvertedRange(t *testing.T) {
	from := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	days := Expand(testDraft(from, to))

	if len(days) != 0 {
		t.Errorf("expected empty itinerary for inverted range, got %d days", len(days))
	}
}

func TestExpand_Deterministic(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	draft := testDraft(from, to)

	first := Expand(draft)
	second := Expand(draft)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical output for identical input")
	}
}

func TestExpand_TotalCost(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	for _, day := range Expand(testDraft(from, to)) {
		sum := 0
		for _, a := range day.Activities {
			sum += a.Cost
		}
		if day.TotalCost != sum {
			t.Errorf("day %d: TotalCost %d does not match activity sum %d", day.DayNumber, day.TotalCost, sum)
		}
		if day.TotalCost != 135 {
			t.Errorf("day %d: expected template cost 135, got %d", day.DayNumber, day.TotalCost)
		}
	}
}

func TestSummarize_PerPerson(t *testing.T) {
	draft := models.NewTripDraft()
	draft.Budget = 2000
	draft.BudgetPerPerson = true
	draft.NumPeople = 3

	summary := Summarize(draft, nil)

	if summary.TotalBudget != 6000 {
		t.Errorf("expected total budget 6000, got %d", summary.TotalBudget)
	}
}

func TestSummarize_Total(t *testing.T) {
	draft := models.NewTripDraft()
	draft.Budget = 2000
	draft.BudgetPerPerson = false
	draft.NumPeople = 5
	draft.FromDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	draft.ToDate = time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	days := Expand(draft)
	summary := Summarize(draft, days)

	if summary.TotalBudget != 2000 {
		t.Errorf("expected total budget 2000 regardless of headcount, got %d", summary.TotalBudget)
	}
	if summary.UsedBudget != 270 {
		t.Errorf("expected used budget 270 for 2 days, got %d", summary.UsedBudget)
	}
	if summary.Remaining != 1730 {
		t.Errorf("expected remaining 1730, got %d", summary.Remaining)
	}
}
