package section

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
)

// CacheTag groups every cached section read for invalidation.
const CacheTag = cache.EntityTag("section")

// Section is a keyed editable content block (vision, mission, about, ...).
//
// Sections are addressed by their stable Key rather than by id: the public
// site asks for "vision", not for a UUID. Writes are upserts on the key.
type Section struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Global field names for validation
const (
	FieldKey     = "key"
	FieldTitle   = "title"
	FieldBody    = "body"
	FieldPayload = "payload"
)

// Well-known section keys
const (
	KeyVision  = "vision"
	KeyMission = "mission"
	KeyAbout   = "about"
	KeyValues  = "core-values"
	KeyCSR     = "csr"
	KeyContact = "contact"
)

// # Fallback Defaults
//
// Public pages must render before an admin has written anything, so the
// well-known keys carry static defaults. Absence of a row is not an error
// for visitors.

var defaults = map[string]Section{
	KeyVision: {
		Key:   KeyVision,
		Title: "Our Vision",
		Body:  "To be the leading diversified business group in East Africa.",
	},
	KeyMission: {
		Key:   KeyMission,
		Title: "Our Mission",
		Body:  "Delivering quality products and services that improve everyday life.",
	},
	KeyAbout: {
		Key:   KeyAbout,
		Title: "About Aticom",
		Body:  "Aticom Group is a diversified business group operating across multiple sectors.",
	},
}

// DefaultFor returns the static fallback for a well-known key, if any.
func DefaultFor(key string) (Section, bool) {
	d, ok := defaults[key]
	return d, ok
}

// # Payload Shapes
//
// A section's Payload column is free-form JSONB, but well-known keys declare
// the shape their front-end rendering expects. A stored payload that fails
// its shape check reads back as a DESERIALIZATION_ERROR instead of leaking
// broken JSON into the page.

// valueItem is the expected element shape of the core-values payload.
type valueItem struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// contactPayload is the expected shape of the contact payload.
type contactPayload struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// titledItems validates a payload that must be an array of titled entries.
func titledItems(name string) func(json.RawMessage) error {
	return func(raw json.RawMessage) error {
		var items []valueItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("%s payload: %w", name, err)
		}
		for i, item := range items {
			if item.Title == "" {
				return fmt.Errorf("%s payload: item %d is missing a title", name, i)
			}
		}
		return nil
	}
}

var payloadShapes = map[string]func(json.RawMessage) error{
	// Core values and CSR initiatives share the titled-list shape.
	KeyValues: titledItems(KeyValues),
	KeyCSR:    titledItems(KeyCSR),
	KeyContact: func(raw json.RawMessage) error {
		var p contactPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("contact payload: %w", err)
		}
		return nil
	},
}

// CheckPayloadShape validates the payload of a well-known key. Keys without
// a declared shape accept any valid JSON, including none at all.
func CheckPayloadShape(key string, payload json.RawMessage) error {
	if len(payload) == 0 {
		return nil
	}
	check, ok := payloadShapes[key]
	if !ok {
		return nil
	}
	return check(payload)
}
