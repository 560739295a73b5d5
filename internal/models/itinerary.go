package models

import "time"

type Weather struct {
	Icon      string `json:"icon"`
	Temp      string `json:"temp"`
	Condition string `json:"condition"`
}

// Activity is one scheduled entry of a day plan.
type Activity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Cost        int     `json:"cost"`
	Weather     Weather `json:"weather"`
	Transport   string  `json:"transport"`
	TravelTime  string  `json:"travel_time"`
}

// DayPlan is one calendar day of a materialized itinerary. It is derived
// from the committed trip on every read and never persisted.
type DayPlan struct {
	Date       time.Time  `json:"date"`
	DayNumber  int        `json:"day_number"`
	Activities []Activity `json:"activities"`
	TotalCost  int        `json:"total_cost"`
}
