package models

import (
	"gorm.io/gorm"
)

// TripSlot holds one committed trip as serialized text, keyed by a fixed
// slot name. Each commit replaces the slot wholesale.
type TripSlot struct {
	gorm.Model
	Key        string `json:"key" gorm:"uniqueIndex"`
	SnapshotID string `json:"snapshot_id"`
	Value      string `json:"value"`
}
