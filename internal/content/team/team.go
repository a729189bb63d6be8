package team

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// CacheTag groups every cached team-member read for invalidation.
const CacheTag = cache.EntityTag("team")

// Member represents one leadership/team profile on the public site.
type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	PhotoURL  *string   `json:"photo_url"`
	Bio       *string   `json:"bio"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewMember returns a create draft. Create request bodies decode into it,
// so members an admin does not flag explicitly go live immediately; an
// explicit "active": false in the body still wins during decode.
func NewMember() Member { return Member{Active: true} }

// Global field names for validation
const (
	FieldName      = "name"
	FieldRole      = "role"
	FieldPhotoURL  = "photo_url"
	FieldBio       = "bio"
	FieldSortOrder = "sort_order"
)
