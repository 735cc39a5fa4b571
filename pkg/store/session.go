package store

import (
	"sync"

	"naeilum-be/internal/entity"
)

// Session is the per-client interaction state in memory. It is the only
// authority a select request is validated against: the client supplies an
// index, never candidate content.
//
// A submit replaces the shortlist and clears Selected/Fortune, so no stale
// cross-submission state survives. The embedded mutex serializes mutations
// of one session; different sessions share nothing mutable.
type Session struct {
	sync.Mutex

	ID string `json:"id"`

	SeedKey     string        `json:"seed_key"`
	SeedDisplay string        `json:"seed_display"`
	Gender      entity.Gender `json:"gender"`

	// THE SHORTLIST (candidates offered but not yet chosen)
	Shortlist []entity.NameEntry `json:"shortlist"`

	// THE SELECTION (set only by a validated select)
	Selected *entity.NameEntry     `json:"selected"`
	Fortune  []entity.FortuneEntry `json:"fortune"`
}
