package bathroom

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

// Cache tags per entity, so a category write does not flush product reads.
const (
	CategoryCacheTag     = cache.EntityTag("bathroom-category")
	ProductCacheTag      = cache.EntityTag("bathroom-product")
	InstallationCacheTag = cache.EntityTag("bathroom-installation")
)

// Category represents one bathroom product category (sanitaryware,
// faucets, accessories, ...).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product represents one bathroom product.
//
// Specifications is a free key/value block ("Material": "Ceramic", ...)
// stored as JSONB and shape-checked at the storage boundary.
type Product struct {
	ID             string            `json:"id"`
	CategoryID     *string           `json:"category_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	ImageURL       *string           `json:"image_url"`
	Price          *float64          `json:"price"`
	Specifications map[string]string `json:"specifications,omitempty"`
	SortOrder      int               `json:"sort_order"`
	Active         bool              `json:"active"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ProductPatch is a partial update for a product.
type ProductPatch struct {
	CategoryID     patch.Field[string]            `json:"category_id"`
	Name           patch.Field[string]            `json:"name"`
	Description    patch.Field[string]            `json:"description"`
	ImageURL       patch.Field[string]            `json:"image_url"`
	Price          patch.Field[float64]           `json:"price"`
	Specifications patch.Field[map[string]string] `json:"specifications"`
	SortOrder      patch.Field[int]               `json:"sort_order"`
	Active         patch.Field[bool]              `json:"active"`
}

// InstallationStep is one step of an installation guide.
type InstallationStep struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Installation represents a how-to-install guide for bathroom products.
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

func NewCategory() Category { return Category{Active: true} }

func NewProduct() Product { return Product{Active: true} }

func NewInstallation() Installation { return Installation{Active: true} }

// Global field names for validation
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageURL    = "image_url"
	FieldCategoryID  = "category_id"
	FieldPrice       = "price"
	FieldSortOrder   = "sort_order"
	FieldTitle       = "title"
	FieldSteps       = "steps"
)
