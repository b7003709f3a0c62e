package cache

import (
	"fmt"
	"time"
)

// Cache-key namespaces. Single place so keys don't drift across the code.
const (
	nsRecommendations = "recommendations"
	nsTotal           = "total_recommendations"
	nsToolScore       = "tool_score"
	nsPersonalization = "personalization_boost"
	nsRecentlyPopular = "recently_popular"

	// KeyAllRoles caches the all-roles top-5 aggregate.
	KeyAllRoles = "all_role_recommendations"
)

// TTLs per cache namespace.
const (
	// TTLRecommendations covers paginated recommendation lists.
	TTLRecommendations = 300 * time.Second

	// TTLTotal covers per-role totals and the all-roles aggregate.
	TTLTotal = 600 * time.Second

	// TTLToolScore covers per-tool score sub-results.
	TTLToolScore = 1800 * time.Second

	// TTLPersonalization covers per-user personalization boosts.
	TTLPersonalization = 900 * time.Second

	// TTLRecentlyPopular covers trending flags.
	TTLRecentlyPopular = 3600 * time.Second
)

// EnginePrefixes lists every namespace the engine writes, for targeted
// invalidation on stores that support prefix deletes.
var EnginePrefixes = []string{
	nsRecommendations + ":",
	nsTotal + ":",
	nsToolScore + ":",
	nsPersonalization + ":",
	nsRecentlyPopular + ":",
	KeyAllRoles,
}

// KeyRecommendations builds the key for a paginated recommendation list.
// The userID segment is omitted for anonymous requests.
func KeyRecommendations(role string, limit, offset int, userID string) string {
	key := fmt.Sprintf("%s:%s:%d:%d", nsRecommendations, role, limit, offset)
	if userID != "" {
		key += ":" + userID
	}
	return key
}

// KeyTotal builds the key for a role's total recommendation count.
func KeyTotal(role string) string {
	return nsTotal + ":" + role
}

// KeyToolScore builds the key for a per-tool score sub-result.
func KeyToolScore(toolID, role, userID string) string {
	key := fmt.Sprintf("%s:%s:%s", nsToolScore, toolID, role)
	if userID != "" {
		key += ":" + userID
	}
	return key
}

// KeyPersonalization builds the key for a user's personalization boost on a
// tool.
func KeyPersonalization(toolID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", nsPersonalization, toolID, userID)
}

// KeyRecentlyPopular builds the key for a tool's trending flag within a
// role and day window.
func KeyRecentlyPopular(toolID, role string, days int) string {
	return fmt.Sprintf("%s:%s:%s:%d", nsRecentlyPopular, toolID, role, days)
}
