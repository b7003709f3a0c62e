/*
Package recommend implements the recommendation service: candidate
selection, scoring orchestration, ranking, pagination and TTL-based cache
memoization with explicit invalidation.

The service has no external dependencies beyond its collaborators: the
catalog DataProvider supplies a read-only snapshot of tools, roles and
interactions, and the cache Store memoizes expensive computations. Any
collaborator failure is a recoverable error for that call, never a fatal
condition.
*/
package recommend

import (
	"time"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

// Pagination bounds.
const (
	// MinLimit and MaxLimit clamp the requested page size.
	MinLimit = 1
	MaxLimit = 50

	// DefaultTrendingDays is the window for the recently-popular flag.
	DefaultTrendingDays = 7

	// trendingMinUsers is the distinct same-role user count that makes a
	// tool trend.
	trendingMinUsers = 3

	// allRolesTopN is the page size of the all-roles aggregate.
	allRolesTopN = 5
)

// ScoredTool is one ranked recommendation. Ephemeral: created per scoring
// pass, cached only in serialized form, never persisted.
type ScoredTool struct {
	// Tool is the recommended catalog entry.
	Tool catalog.Tool `json:"tool"`

	// Score is the relevance score: 0 or [40,100], two decimals.
	Score float64 `json:"score"`

	// Reasons are up to three human-readable match explanations.
	Reasons []string `json:"reasons,omitempty"`

	// PersonalizationBoost is the [0,1] boost that contributed to the
	// score (0 for anonymous requests).
	PersonalizationBoost float64 `json:"personalization_boost,omitempty"`
}

// Result is a paginated recommendation response. An empty Items slice with
// a resolved Role is the distinct "no recommendations" outcome, not an
// error.
type Result struct {
	// RequestID is a unique identifier for tracing.
	RequestID string `json:"request_id"`

	// Role is the resolved canonical role name.
	Role string `json:"role"`

	// Items is the requested page of ranked recommendations.
	Items []ScoredTool `json:"items"`

	// TotalAvailable counts only active tools. A caller's own pending
	// tools appear in Items but are not counted here; the mismatch is
	// an intentional product decision, preserved as-is.
	TotalAvailable int `json:"total_available"`

	// HasMore reports whether offset+limit < TotalAvailable.
	HasMore bool `json:"has_more"`

	// Limit and Offset echo the clamped pagination inputs.
	Limit  int `json:"limit"`
	Offset int `json:"offset"`

	// CacheHit reports whether the result came from the cache layer.
	CacheHit bool `json:"-"`

	// GeneratedAt is when the result was computed.
	GeneratedAt time.Time `json:"generated_at"`
}

// RecentAddition is one entry of the recently-added side panel.
type RecentAddition struct {
	// Tool is the added catalog entry.
	Tool catalog.Tool `json:"tool"`

	// UserID is the user who added it.
	UserID string `json:"user_id"`

	// AddedAt is when the add interaction occurred.
	AddedAt time.Time `json:"added_at"`
}
