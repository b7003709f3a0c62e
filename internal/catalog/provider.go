package catalog

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when the underlying data store cannot be
// reached. Callers should treat it as retryable.
var ErrUnavailable = errors.New("catalog: data provider unavailable")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("catalog: not found")

// ToolFilter selects tools by status. A nil or empty filter matches all.
type ToolFilter struct {
	// Statuses restricts results to the given statuses.
	Statuses []ToolStatus

	// SubmittedBy restricts results to tools submitted by this user.
	SubmittedBy string
}

// InteractionFilter selects interactions. Zero-value fields match all.
type InteractionFilter struct {
	// UserID restricts results to a single user.
	UserID string

	// ToolID restricts results to a single tool.
	ToolID string

	// Types restricts results to the given interaction types.
	Types []InteractionType

	// Since restricts results to interactions at or after this time.
	Since time.Time
}

// DataProvider is the read-side collaborator the recommendation engine
// consumes. Implementations own their own I/O timeout and retry policy;
// the engine treats any failure as a recoverable per-call error.
type DataProvider interface {
	// ListTools returns tools matching the filter, ordered by ID.
	ListTools(ctx context.Context, filter ToolFilter) ([]Tool, error)

	// ListInteractions returns interactions matching the filter, most
	// recent first.
	ListInteractions(ctx context.Context, filter InteractionFilter) ([]Interaction, error)

	// GetRole returns the role with the given canonical name, or
	// ErrNotFound.
	GetRole(ctx context.Context, name string) (Role, error)

	// ListRoles returns all roles, ordered by name.
	ListRoles(ctx context.Context) ([]Role, error)
}

// Recorder is the write-side interface for interaction tracking and tool
// submission. Kept separate from DataProvider so the scoring path stays
// read-only.
type Recorder interface {
	// RecordInteraction persists an interaction event.
	RecordInteraction(ctx context.Context, ev Interaction) error

	// UpsertTool creates or replaces a tool record.
	UpsertTool(ctx context.Context, tool Tool) error

	// SetToolStatus transitions a tool's moderation status.
	SetToolStatus(ctx context.Context, toolID string, status ToolStatus) error
}
