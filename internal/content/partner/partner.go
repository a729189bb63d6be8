package partner

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// CacheTag groups every cached partner read for invalidation.
const CacheTag = cache.EntityTag("partner")

// Partner represents one partner/client logo on the public site.
type Partner struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logo_url"`
	WebsiteURL *string   `json:"website_url"`
	SortOrder  int       `json:"sort_order"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewPartner returns a create draft. Create request bodies decode into it,
// so partners an admin does not flag explicitly go live immediately; an
// explicit "active": false in the body still wins during decode.
func NewPartner() Partner { return Partner{Active: true} }

// Global field names for validation
const (
	FieldName       = "name"
	FieldLogoURL    = "logo_url"
	FieldWebsiteURL = "website_url"
	FieldSortOrder  = "sort_order"
)
