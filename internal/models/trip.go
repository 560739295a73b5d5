package models

import (
	"errors"
	"strings"
	"time"
)

// Form enumerations. The frontend renders these as toggle chips, radio
// groups and selects; the API serves them via /trip/options.
var (
	TransportModes = []string{"Walk", "Public Transport", "Car", "Bike", "Train", "Flight"}

	ActivityTypes = []string{
		"Sightseeing",
		"Hiking",
		"Museums",
		"Food",
		"Nightlife",
		"Shopping",
		"Beaches",
		"Adventure",
	}

	AccommodationTypes = []string{
		"Hostel",
		"Budget Hotel",
		"Mid-range Hotel",
		"Luxury Hotel",
		"Apartment/Airbnb",
	}

	PaceOptions = []string{"Relaxed", "Moderate", "Packed"}
)

// Numeric input bounds enforced by the form, not by the model.
const (
	MinPeople = 1
	MaxPeople = 20
	MinBudget = 0
)

var ErrMissingDestination = errors.New("destination is required")

// StringSet is a small label selection with toggle semantics. Insertion
// order is preserved for stable serialization but carries no meaning.
type StringSet []string

func (s StringSet) Contains(item string) bool {
	for _, v := range s {
		if v == item {
			return true
		}
	}
	return false
}

// Toggle returns a new set with item removed if present, appended otherwise.
// The receiver is never modified.
func (s StringSet) Toggle(item string) StringSet {
	out := make(StringSet, 0, len(s)+1)
	found := false
	for _, v := range s {
		if v == item {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, item)
	}
	return out
}

// TripDraft is the user-editable trip request. It stays owned by the
// planning flow until a successful submit commits it to the trip store.
type TripDraft struct {
	FromDate        time.Time `json:"from_date" doc:"First day of the trip"`
	ToDate          time.Time `json:"to_date" doc:"Last day of the trip"`
	NumPeople       int       `json:"num_people" doc:"Number of travellers"`
	Budget          int       `json:"budget" doc:"Budget in dollars"`
	BudgetPerPerson bool      `json:"budget_per_person" doc:"Whether the budget is per person or total"`
	Destination     string    `json:"destination" doc:"Where the trip goes"`
	Transport       StringSet `json:"transport" doc:"Selected transport modes"`
	Activities      StringSet `json:"activities" doc:"Selected activity types"`
	Accommodation   string    `json:"accommodation" doc:"Selected accommodation type"`
	Pace            string    `json:"pace" doc:"Trip pace"`
	IncludeEvents   bool      `json:"include_events" doc:"Include local events"`
	KidFriendly     bool      `json:"kid_friendly" doc:"Prefer kid-friendly activities"`
}

// NewTripDraft returns the fixed default draft shown when the planning
// view is entered. Reset re-creates the same value.
func NewTripDraft() TripDraft {
	now := time.Now()
	return TripDraft{
		FromDate:        now,
		ToDate:          now.AddDate(0, 0, 7),
		NumPeople:       2,
		Budget:          2000,
		BudgetPerPerson: false,
		Destination:     "",
		Transport:       StringSet{"Public Transport"},
		Activities:      StringSet{"Sightseeing"},
		Accommodation:   "Mid-range Hotel",
		Pace:            "Moderate",
		IncludeEvents:   false,
		KidFriendly:     false,
	}
}

// Validate checks the draft for submission. Destination is the only
// required field; numeric bounds live in the form layer.
func (d TripDraft) Validate() error {
	if strings.TrimSpace(d.Destination) == "" {
		return ErrMissingDestination
	}
	return nil
}
