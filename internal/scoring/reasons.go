package scoring

import (
	"fmt"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

const maxReasons = 3

// Score tiers for explanation strings.
const (
	tierPerfect     = 85.0
	tierHighly      = 70.0
	tierGreat       = 50.0
	tierGood        = 30.0
	essentialWeight = 0.8

	// Cross-role compatibility thresholds for collaboration reasons.
	collaborationCompat = 0.6
	coordinationCompat  = 0.3

	// keywordReasonMin is the matched-keyword count above which a
	// keyword-support reason is emitted.
	keywordReasonMin = 2
)

// Reasons generates up to three human-readable match explanations for a
// scored tool. The priority order is fixed: personalization first, then
// cross-role collaboration, score tier, essential categories, and keyword
// support. Duplicates are removed.
func (s *Scorer) Reasons(tool catalog.Tool, roleName string, res Result, sig *UserSignals) []string {
	var candidates []string

	candidates = append(candidates, s.personalReasons(tool, roleName, sig)...)
	candidates = append(candidates, s.collaborationReasons(tool, roleName)...)
	if tier := tierReason(res.Score); tier != "" {
		candidates = append(candidates, tier)
	}
	candidates = append(candidates, s.essentialCategoryReasons(tool, roleName)...)
	if n := s.matchedKeywords(tool, roleName); n > keywordReasonMin {
		candidates = append(candidates, fmt.Sprintf("Matches %d key areas of your work", n))
	}

	reasons := make([]string, 0, maxReasons)
	seen := make(map[string]struct{}, len(candidates))
	for _, r := range candidates {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		reasons = append(reasons, r)
		if len(reasons) == maxReasons {
			break
		}
	}

	return reasons
}

// personalReasons emits user-specific explanations in fixed priority order.
func (s *Scorer) personalReasons(tool catalog.Tool, roleName string, sig *UserSignals) []string {
	if sig == nil {
		return nil
	}

	var reasons []string
	windowStart := sig.Now.Add(-personalizationWindow)

	var added, suggested, favorited bool
	for _, ev := range sig.ToolInteractions {
		if ev.OccurredAt.Before(windowStart) {
			continue
		}
		switch ev.Type {
		case catalog.InteractionAdded:
			added = true
		case catalog.InteractionSuggestedByAI:
			suggested = true
		case catalog.InteractionFavorited:
			favorited = true
		}
	}

	if added || s.isOwnRecentPending(tool, sig) {
		reasons = append(reasons, "You added this tool recently")
	}
	if suggested {
		reasons = append(reasons, "Suggested for you by AI")
	}
	if favorited {
		reasons = append(reasons, "One of your favorites")
	}
	if sig.Trending {
		reasons = append(reasons, fmt.Sprintf("Trending among %s users", roleName))
	}

	return reasons
}

// collaborationReasons explains cross-role relevance when the tool targets
// a different role.
func (s *Scorer) collaborationReasons(tool catalog.Tool, roleName string) []string {
	if tool.SuggestedRole == "" || tool.SuggestedRole == roleName {
		return nil
	}

	compat := s.cfg.Compat(roleName, tool.SuggestedRole)
	switch {
	case compat > collaborationCompat:
		return []string{fmt.Sprintf("Essential for collaboration with the %s team", tool.SuggestedRole)}
	case compat > coordinationCompat:
		return []string{"Useful for cross-team coordination"}
	default:
		return nil
	}
}

// tierReason maps a final score to its tier string, or "" below the lowest
// tier.
func tierReason(score float64) string {
	switch {
	case score >= tierPerfect:
		return "Perfect match for your role"
	case score >= tierHighly:
		return "Highly recommended for your role"
	case score >= tierGreat:
		return "Great fit for your workflow"
	case score >= tierGood:
		return "Good tool for your toolkit"
	default:
		return ""
	}
}

// essentialCategoryReasons emits a reason for each tool category the role
// considers essential.
func (s *Scorer) essentialCategoryReasons(tool catalog.Tool, roleName string) []string {
	weights, ok := s.cfg.CategoryWeights[roleName]
	if !ok {
		return nil
	}

	var reasons []string
	for _, cat := range tool.Categories {
		if weights[cat] >= essentialWeight {
			reasons = append(reasons, fmt.Sprintf("Essential %s tool for your role", cat))
		}
	}
	return reasons
}
