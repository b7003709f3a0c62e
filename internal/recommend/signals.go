package recommend

import (
	"context"
	"time"

	"github.com/khanglvm/toolmatch/internal/cache"
	"github.com/khanglvm/toolmatch/internal/catalog"
	"github.com/khanglvm/toolmatch/internal/scoring"
)

// signalsWindow is how far back user interactions feed personalization.
const signalsWindow = 30 * 24 * time.Hour

// userSignals holds one user's interaction aggregates for a single request,
// fetched once and shared across all candidate scorings.
type userSignals struct {
	userID           string
	now              time.Time
	byTool           map[string][]catalog.Interaction
	recentCategories map[string]int
}

// buildUserSignals fetches and aggregates the user's recent interactions.
// Returns nil for anonymous requests. Provider failures degrade to
// unpersonalized scoring rather than failing the request.
func (s *Service) buildUserSignals(ctx context.Context, userID string, candidates []catalog.Tool) *userSignals {
	if userID == "" {
		return nil
	}

	now := s.now()
	interactions, err := s.provider.ListInteractions(ctx, catalog.InteractionFilter{
		UserID: userID,
		Since:  now.Add(-signalsWindow),
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("user", userID).Msg("personalization degraded: interactions unavailable")
		return &userSignals{userID: userID, now: now}
	}

	toolByID := make(map[string]catalog.Tool, len(candidates))
	for _, tool := range candidates {
		toolByID[tool.ID] = tool
	}

	sig := &userSignals{
		userID:           userID,
		now:              now,
		byTool:           make(map[string][]catalog.Interaction),
		recentCategories: make(map[string]int),
	}

	for _, ev := range interactions {
		if ev.ToolID == "" {
			continue
		}
		sig.byTool[ev.ToolID] = append(sig.byTool[ev.ToolID], ev)

		// Category overlap only counts strong signals.
		if !ev.Type.IsQualifying() {
			continue
		}
		if tool, ok := toolByID[ev.ToolID]; ok {
			for _, cat := range tool.Categories {
				sig.recentCategories[cat]++
			}
		}
	}

	return sig
}

// forTool narrows the request-level aggregates down to one tool's scoring
// signals. A nil receiver (anonymous request) yields nil.
func (sig *userSignals) forTool(ctx context.Context, s *Service, tool catalog.Tool, role string) *scoring.UserSignals {
	if sig == nil {
		return nil
	}

	return &scoring.UserSignals{
		UserID:           sig.userID,
		Now:              sig.now,
		ToolInteractions: sig.byTool[tool.ID],
		RecentCategories: sig.recentCategories,
		Trending:         s.recentlyPopular(ctx, tool.ID, role, DefaultTrendingDays),
	}
}

// recentlyPopular reports whether at least three distinct users of the role
// added the tool within the last days. Memoized per (tool, role, days).
func (s *Service) recentlyPopular(ctx context.Context, toolID, role string, days int) bool {
	key := cache.KeyRecentlyPopular(toolID, role, days)
	if flag, ok := s.getCachedFloat(ctx, key); ok {
		return flag != 0
	}

	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	added, err := s.provider.ListInteractions(ctx, catalog.InteractionFilter{
		ToolID: toolID,
		Types:  []catalog.InteractionType{catalog.InteractionAdded},
		Since:  since,
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("tool", toolID).Msg("trending check degraded")
		return false
	}

	users := make(map[string]struct{})
	for _, ev := range added {
		if ev.UserRole == role {
			users[ev.UserID] = struct{}{}
		}
	}
	trending := len(users) >= trendingMinUsers

	value := 0.0
	if trending {
		value = 1.0
	}
	s.setCachedFloat(ctx, key, value, cache.TTLRecentlyPopular)

	return trending
}
