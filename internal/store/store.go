package store

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/wanderlane/trip-planner-api/internal/models"
	"gorm.io/gorm"
)

// CurrentTripKey names the single slot carrying the committed trip from
// the planning flow to the results flow.
const CurrentTripKey = "currentTrip"

var ErrNoCommittedTrip = errors.New("no committed trip")

// TripStore persists exactly one committed trip. Save replaces the slot
// wholesale; Load reads it wholesale. There are no partial updates.
type TripStore struct {
	db *gorm.DB
}

func NewTripStore(db *gorm.DB) *TripStore {
	return &TripStore{db: db}
}

// Save serializes the draft and replaces the slot, stamping a fresh
// snapshot ID. The returned ID identifies this commit.
func (s *TripStore) Save(draft models.TripDraft) (string, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return "", err
	}

	snapshotID := uuid.NewString()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var slot models.TripSlot
		if err := tx.FirstOrInit(&slot, models.TripSlot{Key: CurrentTripKey}).Error; err != nil {
			return err
		}

		slot.SnapshotID = snapshotID
		slot.Value = string(payload)

		return tx.Save(&slot).Error
	})
	if err != nil {
		return "", err
	}

	return snapshotID, nil
}

// Load reads the committed trip back, reconstructing date fields from
// their serialized text form. Returns ErrNoCommittedTrip when nothing
// has been committed yet.
func (s *TripStore) Load() (models.TripDraft, string, error) {
	var slot models.TripSlot
	if err := s.db.Where("key = ?", CurrentTripKey).First(&slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TripDraft{}, "", ErrNoCommittedTrip
		}
		return models.TripDraft{}, "", err
	}

	var draft models.TripDraft
	if err := json.Unmarshal([]byte(slot.Value), &draft); err != nil {
		return models.TripDraft{}, "", err
	}

	return draft, slot.SnapshotID, nil
}
