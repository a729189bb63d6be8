package news

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

// CacheTag groups every cached news read for invalidation.
const CacheTag = cache.EntityTag("news")

// Article represents one news/press item.
//
// PublishedAt is stamped the first time the article transitions to
// published and is never reset, so re-publishing keeps the original date.
type Article struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     *string    `json:"excerpt"`
	Body        string     `json:"body"`
	CoverImage  *string    `json:"cover_image"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Patch is a partial update where omitted fields keep their stored value
// and explicit nulls clear nullable columns.
type Patch struct {
	Slug       patch.Field[string] `json:"slug"`
	Title      patch.Field[string] `json:"title"`
	Excerpt    patch.Field[string] `json:"excerpt"`
	Body       patch.Field[string] `json:"body"`
	CoverImage patch.Field[string] `json:"cover_image"`
	Published  patch.Field[bool]   `json:"published"`
}

// Global field names for validation
const (
	FieldSlug       = "slug"
	FieldTitle      = "title"
	FieldExcerpt    = "excerpt"
	FieldBody       = "body"
	FieldCoverImage = "cover_image"
)
