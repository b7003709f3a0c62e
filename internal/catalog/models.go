/*
Package catalog provides data models and the read-side data provider for the
recommendation engine.

These models represent AI tools, user roles, and interaction events. The
engine consumes them as a read-only snapshot; interactions are immutable once
recorded and are only used in aggregate (counts, recency).
*/
package catalog

import "time"

// ToolStatus is the moderation state of a catalog tool.
type ToolStatus string

const (
	// StatusActive means the tool is approved and publicly recommendable.
	StatusActive ToolStatus = "active"

	// StatusPending means the tool awaits moderation. Pending tools are
	// visible only to their submitter for a limited window.
	StatusPending ToolStatus = "pending"

	// StatusArchived means the tool was removed from the catalog.
	StatusArchived ToolStatus = "archived"
)

// PendingVisibilityWindow is how long a pending tool stays visible to its
// own submitter before moderation.
const PendingVisibilityWindow = 7 * 24 * time.Hour

// Tool represents a catalog entry for an AI tool.
type Tool struct {
	// ID is the unique tool identifier.
	ID string `json:"id"`

	// Name is the display name of the tool.
	Name string `json:"name"`

	// Description is the short summary shown in listings.
	Description string `json:"description"`

	// DetailedDescription is the long-form description.
	DetailedDescription string `json:"detailed_description,omitempty"`

	// Categories are the category names the tool belongs to.
	Categories []string `json:"categories,omitempty"`

	// Status is the moderation state (active, pending, archived).
	Status ToolStatus `json:"status"`

	// SuggestedRole is the role the tool was explicitly suggested for,
	// or empty if none.
	SuggestedRole string `json:"suggested_role,omitempty"`

	// SubmittedBy is the user ID of the submitter, or empty for
	// system-imported tools.
	SubmittedBy string `json:"submitted_by,omitempty"`

	// WebsiteURL is the tool's homepage.
	WebsiteURL string `json:"website_url,omitempty"`

	// APIEndpoint is the tool's API base URL, if it exposes one.
	APIEndpoint string `json:"api_endpoint,omitempty"`

	// CreatedAt is when the tool was submitted to the catalog.
	CreatedAt time.Time `json:"created_at"`
}

// IsVisibleTo reports whether the tool may be shown to the given user at the
// given time. Active tools are visible to everyone. Pending tools are visible
// only to their own submitter within the visibility window.
func (t Tool) IsVisibleTo(userID string, now time.Time) bool {
	switch t.Status {
	case StatusActive:
		return true
	case StatusPending:
		return userID != "" &&
			t.SubmittedBy == userID &&
			now.Sub(t.CreatedAt) <= PendingVisibilityWindow
	default:
		return false
	}
}

// Role represents a job-function category used as the scoring lens.
type Role struct {
	// ID is the unique role identifier.
	ID string `json:"id"`

	// Name is the canonical role name (frontend, backend, qa, designer,
	// pm, owner).
	Name string `json:"name"`
}

// InteractionType classifies a user's interaction with a tool.
type InteractionType string

const (
	InteractionViewed        InteractionType = "viewed"
	InteractionClicked       InteractionType = "clicked"
	InteractionAdded         InteractionType = "added"
	InteractionSuggestedByAI InteractionType = "suggested_by_ai"
	InteractionFavorited     InteractionType = "favorited"
	InteractionRated         InteractionType = "rated"
)

// IsQualifying reports whether the interaction type should trigger
// recommendation cache invalidation.
func (t InteractionType) IsQualifying() bool {
	switch t {
	case InteractionAdded, InteractionSuggestedByAI, InteractionFavorited:
		return true
	default:
		return false
	}
}

// Valid reports whether the interaction type is one of the known values.
func (t InteractionType) Valid() bool {
	switch t {
	case InteractionViewed, InteractionClicked, InteractionAdded,
		InteractionSuggestedByAI, InteractionFavorited, InteractionRated:
		return true
	default:
		return false
	}
}

// Interaction represents a single user-tool interaction event.
// Interactions are immutable once recorded.
type Interaction struct {
	// ID is the unique interaction identifier (UUID).
	ID string `json:"id"`

	// UserID is the user who performed the interaction.
	UserID string `json:"user_id"`

	// ToolID is the tool the interaction targets, or empty for
	// tool-less events (e.g. a search).
	ToolID string `json:"tool_id,omitempty"`

	// UserRole is the canonical role of the user at interaction time.
	// Used for trending aggregation.
	UserRole string `json:"user_role,omitempty"`

	// Type is the interaction kind (viewed, clicked, added, ...).
	Type InteractionType `json:"type"`

	// Source records where the interaction originated (web, cli, api).
	Source string `json:"source,omitempty"`

	// Rating is the user's rating (0-5), or 0 if not rated.
	Rating int `json:"rating,omitempty"`

	// SessionDuration is how long the user engaged, in seconds.
	SessionDuration int `json:"session_duration,omitempty"`

	// OccurredAt is when the interaction happened.
	OccurredAt time.Time `json:"occurred_at"`
}
