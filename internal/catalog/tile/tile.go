package tile

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

// Cache tags per entity, so a collection write does not flush application reads.
const (
	CollectionCacheTag   = cache.EntityTag("tile-collection")
	ApplicationCacheTag  = cache.EntityTag("tile-application")
	InstallationCacheTag = cache.EntityTag("tile-installation")
)

// Collection represents one tile product line in the catalog.
type Collection struct {
	ID        string    `json:"id"`
	SectorID  *string   `json:"sector_id"`
	Name      string    `json:"name"`
	Series    *string   `json:"series"`
	Size      *string   `json:"size"`
	Finish    *string   `json:"finish"`
	ImageURL  *string   `json:"image_url"`
	SortOrder int       `json:"sort_order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CollectionPatch is a partial update for a collection.
type CollectionPatch struct {
	SectorID  patch.Field[string] `json:"sector_id"`
	Name      patch.Field[string] `json:"name"`
	Series    patch.Field[string] `json:"series"`
	Size      patch.Field[string] `json:"size"`
	Finish    patch.Field[string] `json:"finish"`
	ImageURL  patch.Field[string] `json:"image_url"`
	SortOrder patch.Field[int]    `json:"sort_order"`
	Active    patch.Field[bool]   `json:"active"`
}

// Application represents a usage area (bathroom, facade, flooring, ...)
// and references the collections suited to it by id.
type Application struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	ImageURL        *string   `json:"image_url"`
	SuitableTileIDs []string  `json:"suitable_tile_ids"`
	SortOrder       int       `json:"sort_order"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ResolvedApplication is the public view of an application with its
// suitable-tile references resolved to collections.
//
// References to collections that were deleted or deactivated after being
// linked resolve to nothing and are silently dropped: a stale link must
// never break the page.
type ResolvedApplication struct {
	Application
	SuitableTiles []*Collection `json:"suitable_tiles"`
}

// InstallationStep is one step of an installation guide.
type InstallationStep struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Installation represents a how-to-install guide for tiles.
type Installation struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Steps     []InstallationStep `json:"steps"`
	SortOrder int                `json:"sort_order"`
	Active    bool               `json:"active"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// # Create Drafts
//
// Create request bodies decode into these drafts, so rows an admin does not
// flag explicitly go live immediately. An explicit "active": false in the
// body still wins during decode.

func NewCollection() Collection { return Collection{Active: true} }

func NewApplication() Application { return Application{Active: true} }

func NewInstallation() Installation { return Installation{Active: true} }

// Global field names for validation
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldSectorID    = "sector_id"
	FieldSortOrder   = "sort_order"
	FieldSuitableIDs = "suitable_tile_ids"
	FieldTitle       = "title"
	FieldSteps       = "steps"
)
