package planner

import (
	"context"
	"time"

	"github.com/wanderlane/trip-planner-api/internal/models"
)

// Generator is the seam where a real itinerary backend would plug in.
// Generate runs between validation and commit; callers treat it like a
// network call, so implementations must honor ctx cancellation.
type Generator interface {
	Generate(ctx context.Context, draft models.TripDraft) error
}

// MockGenerator simulates the backend with a fixed delay and always
// succeeds. It performs no work on the draft.
type MockGenerator struct {
	Delay time.Duration
}

func (g *MockGenerator) Generate(ctx context.Context, draft models.TripDraft) error {
	if g.Delay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
