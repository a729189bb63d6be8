package settings

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// CacheTag groups every cached settings read for invalidation.
const CacheTag = cache.EntityTag("settings")

// Setting is one key/value pair of site-wide configuration edited by
// admins (contact email, social links, office hours, ...).
type Setting struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Description *string   `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Global field names for validation
const (
	FieldKey   = "key"
	FieldValue = "value"
)
