package hero

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// CacheTag groups every cached hero-slide read for invalidation.
const CacheTag = cache.EntityTag("hero")

// Slide represents one slide of the public homepage hero carousel.
//
// Slides are a small ordered list edited as whole rows, so updates replace
// the full record rather than patching fields.
type Slide struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  *string   `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	CtaLabel  *string   `json:"cta_label"`
	CtaURL    *string   `json:"cta_url"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSlide returns a create draft. Create request bodies decode into it, so
// slides an admin does not flag explicitly go live immediately; an explicit
// "active": false in the body still wins during decode.
func NewSlide() Slide { return Slide{Active: true} }

// Global field names for validation
const (
	FieldTitle     = "title"
	FieldImageURL  = "image_url"
	FieldCtaURL    = "cta_url"
	FieldSortOrder = "sort_order"
)
