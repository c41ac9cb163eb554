package waste

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// SyncStatus marks whether a record has been transmitted to a remote
// service. It is a label only; it never gates local reads or writes.
type SyncStatus string

const (
	// SyncPending marks a record created while offline, awaiting a sync pass.
	SyncPending SyncStatus = "pending"

	// SyncSynced marks a record acknowledged by the remote service.
	SyncSynced SyncStatus = "synced"
)

// defaultItemName is the placeholder used when no item name is provided.
const defaultItemName = "Unspecified item"

// Record is one logged waste disposal event. Records are immutable once
// created except for the pending-to-synced status transition.
type Record struct {
	ID         string     `json:"id"`
	Category   Category   `json:"category"`
	Item       string     `json:"item"`
	Weight     float64    `json:"weight"`
	Location   string     `json:"location"`
	LoggedAt   time.Time  `json:"logged_at"`
	SyncStatus SyncStatus `json:"sync_status"`
}

// LogInput carries the fields a caller provides when logging waste.
// Category is required; everything else is optional.
type LogInput struct {
	Category string
	Item     string
	Weight   float64
	Location string
}

// NewRecord validates input and builds a waste record stamped with a fresh
// ULID, the current time, and the sync status derived from connectivity.
// fallbackLocation fills Location when the input leaves it empty.
func NewRecord(in LogInput, fallbackLocation string, online bool) (Record, error) {
	category, err := ParseCategory(in.Category)
	if err != nil {
		return Record{}, err
	}
	if in.Weight < 0 {
		return Record{}, ErrNegativeWeight
	}

	item := in.Item
	if item == "" {
		item = defaultItemName
	}

	location := in.Location
	if location == "" {
		location = fallbackLocation
	}

	status := SyncPending
	if online {
		status = SyncSynced
	}

	return Record{
		ID:         ulid.Make().String(),
		Category:   category,
		Item:       item,
		Weight:     in.Weight,
		Location:   location,
		LoggedAt:   time.Now().UTC(),
		SyncStatus: status,
	}, nil
}

// WithSyncStatus returns a copy of the record with the given status.
// The only transition performed in practice is pending to synced.
func (r Record) WithSyncStatus(status SyncStatus) Record {
	r.SyncStatus = status
	return r
}
