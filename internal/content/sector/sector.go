package sector

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

// CacheTag groups every cached business-sector read for invalidation.
const CacheTag = cache.EntityTag("sector")

// Sector represents one business sector of the group (tiles, bathrooms,
// real estate, ...). Sectors anchor the public navigation and scope the
// tile catalog.
type Sector struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HeroImage   *string   `json:"hero_image"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Patch is a partial update where omitted fields keep their stored value
// and explicit nulls clear nullable columns.
type Patch struct {
	Slug        patch.Field[string] `json:"slug"`
	Title       patch.Field[string] `json:"title"`
	Description patch.Field[string] `json:"description"`
	HeroImage   patch.Field[string] `json:"hero_image"`
	SortOrder   patch.Field[int]    `json:"sort_order"`
	Active      patch.Field[bool]   `json:"active"`
}

// NewSector returns a create draft. Create request bodies decode into it,
// so sectors an admin does not flag explicitly go live immediately; an
// explicit "active": false in the body still wins during decode.
func NewSector() Sector { return Sector{Active: true} }

// Global field names for validation
const (
	FieldSlug        = "slug"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldHeroImage   = "hero_image"
	FieldSortOrder   = "sort_order"
)
