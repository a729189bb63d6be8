package careers

import (
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/cache"
	"github.com/kirubelwolde/aticom-group-latest-sub001/pkg/patch"
)

// CacheTag groups every cached open-position read for invalidation.
const CacheTag = cache.EntityTag("careers")

// Position represents one job opening.
type Position struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Open        bool      `json:"open"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PositionPatch is a partial update for a position.
type PositionPatch struct {
	Title       patch.Field[string] `json:"title"`
	Department  patch.Field[string] `json:"department"`
	Location    patch.Field[string] `json:"location"`
	Description patch.Field[string] `json:"description"`
	Open        patch.Field[bool]   `json:"open"`
	SortOrder   patch.Field[int]    `json:"sort_order"`
}

// Application is one candidate submission for a position.
//
// Applications are write-once: candidates submit, admins read. There is no
// update path.
type Application struct {
	ID          string    `json:"id"`
	PositionID  string    `json:"position_id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	CoverLetter *string   `json:"cover_letter"`
	ResumeURL   *string   `json:"resume_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPosition returns a create draft. Create request bodies decode into it,
// so openings an admin does not flag explicitly accept candidates
// immediately; an explicit "open": false in the body still wins during
// decode.
func NewPosition() Position { return Position{Open: true} }

// Global field names for validation
const (
	FieldTitle       = "title"
	FieldDepartment  = "department"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldSortOrder   = "sort_order"
	FieldPositionID  = "position_id"
	FieldFullName    = "full_name"
	FieldEmail       = "email"
	FieldCoverLetter = "cover_letter"
	FieldResumeURL   = "resume_url"
)
