package seo

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// CacheTag groups every cached SEO read for invalidation.
const CacheTag = cache.EntityTag("seo")

// Entry holds the page metadata for one public route.
//
// Entries are addressed by Route ("/", "/about", "/news/some-slug") and
// written as upserts: one row per route, latest write wins.
type Entry struct {
	ID          string    `json:"id"`
	Route       string    `json:"route"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	OgImage     *string   `json:"og_image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Default is the site-wide metadata used for routes without an entry.
// Rendering always succeeds; a missing row is a presentation detail.
var Default = Entry{
	Route:       "",
	Title:       "Aticom Group",
	Description: "Aticom Group — a diversified business group operating across tiles, bathrooms, and real estate.",
}

// Global field names for validation
const (
	FieldRoute       = "route"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldOgImage     = "og_image"
)
