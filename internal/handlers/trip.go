package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/wanderlane/trip-planner-api/internal/itinerary"
	"github.com/wanderlane/trip-planner-api/internal/models"
	"github.com/wanderlane/trip-planner-api/internal/notifier"
	"github.com/wanderlane/trip-planner-api/internal/planner"
	"github.com/wanderlane/trip-planner-api/internal/store"
)

type TripHandler struct {
	store       *store.TripStore
	generator   planner.Generator
	notifier    notifier.Notifier
	frontendURL string
}

func NewTripHandler(tripStore *store.TripStore, generator planner.Generator, n notifier.Notifier, frontendURL string) *TripHandler {
	return &TripHandler{
		store:       tripStore,
		generator:   generator,
		notifier:    n,
		frontendURL: frontendURL,
	}
}

type DraftDefaultsResponse struct {
	Body models.TripDraft
}

// HandleDraftDefaults returns the fixed default draft. The planning view
// loads it on entry and re-loads it on reset.
func (h *TripHandler) HandleDraftDefaults(ctx context.Context, input *struct{}) (*DraftDefaultsResponse, error) {
	return &DraftDefaultsResponse{Body: models.NewTripDraft()}, nil
}

type TripOptionsResponse struct {
	Body struct {
		TransportModes     []string `json:"transport_modes"`
		ActivityTypes      []string `json:"activity_types"`
		AccommodationTypes []string `json:"accommodation_types"`
		PaceOptions        []string `json:"pace_options"`
		MinPeople          int      `json:"min_people"`
		MaxPeople          int      `json:"max_people"`
		MinBudget          int      `json:"min_budget"`
	}
}

func (h *TripHandler) HandleTripOptions(ctx context.Context, input *struct{}) (*TripOptionsResponse, error) {
	res := &TripOptionsResponse{}
	res.Body.TransportModes = models.TransportModes
	res.Body.ActivityTypes = models.ActivityTypes
	res.Body.AccommodationTypes = models.AccommodationTypes
	res.Body.PaceOptions = models.PaceOptions
	res.Body.MinPeople = models.MinPeople
	res.Body.MaxPeople = models.MaxPeople
	res.Body.MinBudget = models.MinBudget
	return res, nil
}

type SubmitTripRequest struct {
	Body models.TripDraft
}

type SubmitTripResponse struct {
	Body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		SnapshotID  string `json:"snapshot_id"`
	}
}

// HandleSubmitTrip validates the draft, runs the (simulated) generation
// delay and commits the draft to the single trip slot. A failed
// validation leaves any previously committed trip untouched.
func (h *TripHandler) HandleSubmitTrip(ctx context.Context, input *SubmitTripRequest) (*SubmitTripResponse, error) {
	draft := input.Body

	if err := draft.Validate(); err != nil {
		if errors.Is(err, models.ErrMissingDestination) {
			return nil, huma.Error422UnprocessableEntity("Destination required: please enter a destination for your trip")
		}
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	if err := h.generator.Generate(ctx, draft); err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate itinerary: " + err.Error())
	}

	snapshotID, err := h.store.Save(draft)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to commit trip: " + err.Error())
	}

	if h.notifier != nil {
		days := itinerary.Expand(draft)
		if err := h.notifier.NotifyTripCommitted(draft, len(days)); err != nil {
			log.Printf("Failed to notify trip commit: %v", err)
		}
	}

	res := &SubmitTripResponse{}
	res.Body.Title = "Itinerary generated!"
	res.Body.Description = "Your personalized travel plan is ready"
	res.Body.SnapshotID = snapshotID
	return res, nil
}

type ItineraryResponse struct {
	Body struct {
		Trip       models.TripDraft        `json:"trip"`
		SnapshotID string                  `json:"snapshot_id"`
		Days       []models.DayPlan        `json:"days"`
		Budget     itinerary.BudgetSummary `json:"budget"`
	}
}

// HandleItinerary materializes the committed trip. Without a committed
// trip it returns 404 so the results view can fall back to planning.
func (h *TripHandler) HandleItinerary(ctx context.Context, input *struct{}) (*ItineraryResponse, error) {
	trip, snapshotID, err := h.store.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoCommittedTrip) {
			return nil, huma.Error404NotFound("No committed trip: start at the planning view")
		}
		return nil, huma.Error500InternalServerError("Failed to load trip: " + err.Error())
	}

	days := itinerary.Expand(trip)

	res := &ItineraryResponse{}
	res.Body.Trip = trip
	res.Body.SnapshotID = snapshotID
	res.Body.Days = days
	res.Body.Budget = itinerary.Summarize(trip, days)
	return res, nil
}

type ExportResponse struct {
	Body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
}

// HandleExport is a stub; real PDF export is out of scope.
func (h *TripHandler) HandleExport(ctx context.Context, input *struct{}) (*ExportResponse, error) {
	if _, _, err := h.store.Load(); err != nil {
		if errors.Is(err, store.ErrNoCommittedTrip) {
			return nil, huma.Error404NotFound("No committed trip: start at the planning view")
		}
		return nil, huma.Error500InternalServerError("Failed to load trip: " + err.Error())
	}

	res := &ExportResponse{}
	res.Body.Title = "Export PDF"
	res.Body.Description = "PDF export feature coming soon!"
	return res, nil
}

type ShareResponse struct {
	Body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Link        string `json:"link"`
	}
}

// HandleShare is a stub; the returned link points at the results view
// with the snapshot ID but resolves no shared state on its own.
func (h *TripHandler) HandleShare(ctx context.Context, input *struct{}) (*ShareResponse, error) {
	_, snapshotID, err := h.store.Load()
	if err != nil {
		if errors.Is(err, store.ErrNoCommittedTrip) {
			return nil, huma.Error404NotFound("No committed trip: start at the planning view")
		}
		return nil, huma.Error500InternalServerError("Failed to load trip: " + err.Error())
	}

	res := &ShareResponse{}
	res.Body.Title = "Share"
	res.Body.Description = "Link copied to clipboard!"
	res.Body.Link = fmt.Sprintf("%s/results?trip=%s", h.frontendURL, snapshotID)
	return res, nil
}
