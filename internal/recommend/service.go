package recommend

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/khanglvm/toolmatch/internal/cache"
	"github.com/khanglvm/toolmatch/internal/catalog"
	"github.com/khanglvm/toolmatch/internal/scoring"
)

// Service orchestrates recommendation requests. It is stateless apart from
// the shared cache and safe for concurrent use.
type Service struct {
	provider catalog.DataProvider
	store    cache.Store
	scorer   *scoring.Scorer
	logger   zerolog.Logger

	cacheHits   atomic.Int64
	cacheMisses atomic.Int64

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewService creates a recommendation service.
func NewService(provider catalog.DataProvider, store cache.Store, scorer *scoring.Scorer, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		store:    store,
		scorer:   scorer,
		logger:   logger.With().Str("component", "recommend").Logger(),
		now:      time.Now,
	}
}

// CacheStats returns cumulative cache hit and miss counts.
func (s *Service) CacheStats() (hits, misses int64) {
	return s.cacheHits.Load(), s.cacheMisses.Load()
}

// GetRecommendationsForRole returns a ranked, paginated recommendation page
// for a role. userID is optional; when given, results are personalized and
// the caller's own recent pending submissions become eligible.
func (s *Service) GetRecommendationsForRole(ctx context.Context, roleName string, limit, offset int, userID string) (*Result, error) {
	role, err := s.scorer.Config().ResolveRole(roleName)
	if err != nil {
		return nil, err
	}

	limit = clampInt(limit, MinLimit, MaxLimit)
	if offset < 0 {
		offset = 0
	}

	key := cache.KeyRecommendations(role, limit, offset, userID)
	if cached := s.getCachedResult(ctx, key); cached != nil {
		return cached, nil
	}

	result, err := s.computeRecommendations(ctx, role, limit, offset, userID)
	if err != nil {
		return nil, err
	}

	s.setCached(ctx, key, result, cache.TTLRecommendations)
	return result, nil
}

// computeRecommendations performs the full scoring pass for one page.
func (s *Service) computeRecommendations(ctx context.Context, role string, limit, offset int, userID string) (*Result, error) {
	start := s.now()
	logger := s.logger.With().
		Str("role", role).
		Str("user", userID).
		Logger()

	candidates, err := s.candidateTools(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.GetTotalRecommendationsCount(ctx, role)
	if err != nil {
		return nil, err
	}

	sig := s.buildUserSignals(ctx, userID, candidates)
	scored := s.scoreCandidates(ctx, candidates, role, userID, sig)

	// Threshold-zeroed tools are not matches; drop them before paging.
	matches := scored[:0]
	for _, st := range scored {
		if st.Score > 0 {
			matches = append(matches, st)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Tool.ID < matches[j].Tool.ID
	})

	page := paginate(matches, limit, offset)

	result := &Result{
		RequestID:      newRequestID(),
		Role:           role,
		Items:          page,
		TotalAvailable: total,
		HasMore:        offset+limit < total,
		Limit:          limit,
		Offset:         offset,
		GeneratedAt:    start,
	}

	logger.Debug().
		Int("candidates", len(candidates)).
		Int("matches", len(matches)).
		Int("returned", len(page)).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("recommendations computed")

	return result, nil
}

// candidateTools returns all active tools plus, for a known user, their own
// pending submissions still inside the visibility window.
func (s *Service) candidateTools(ctx context.Context, userID string) ([]catalog.Tool, error) {
	tools, err := s.provider.ListTools(ctx, catalog.ToolFilter{
		Statuses: []catalog.ToolStatus{catalog.StatusActive},
	})
	if err != nil {
		return nil, fmt.Errorf("list active tools: %w", err)
	}

	if userID == "" {
		return tools, nil
	}

	pending, err := s.provider.ListTools(ctx, catalog.ToolFilter{
		Statuses:    []catalog.ToolStatus{catalog.StatusPending},
		SubmittedBy: userID,
	})
	if err != nil {
		return nil, fmt.Errorf("list pending tools: %w", err)
	}

	now := s.now()
	for _, tool := range pending {
		if tool.IsVisibleTo(userID, now) {
			tools = append(tools, tool)
		}
	}
	return tools, nil
}

// scoreCandidates scores every candidate concurrently. A failure for one
// tool degrades that tool to score 0 with no reasons; it never aborts the
// batch.
func (s *Service) scoreCandidates(ctx context.Context, tools []catalog.Tool, role, userID string, sig *userSignals) []ScoredTool {
	scored := make([]ScoredTool, len(tools))
	var wg sync.WaitGroup

	for i, tool := range tools {
		wg.Add(1)
		go func(idx int, tool catalog.Tool) {
			defer wg.Done()
			scored[idx] = s.scoreOne(ctx, tool, role, userID, sig)
		}(i, tool)
	}

	wg.Wait()
	return scored
}

// scoreOne scores a single tool, memoizing the raw score per (tool, role,
// user). Reasons are regenerated deterministically from the score so the
// float sub-result stays the only cached value.
func (s *Service) scoreOne(ctx context.Context, tool catalog.Tool, role, userID string, sig *userSignals) (st ScoredTool) {
	st = ScoredTool{Tool: tool}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Warn().
				Str("tool", tool.ID).
				Interface("panic", r).
				Msg("scoring degraded: panic recovered")
			st = ScoredTool{Tool: tool, Score: 0}
		}
	}()

	toolSig := sig.forTool(ctx, s, tool, role)

	scoreKey := cache.KeyToolScore(tool.ID, role, userID)
	if score, ok := s.getCachedFloat(ctx, scoreKey); ok {
		st.Score = score
	} else {
		res, err := s.scorer.Score(tool, role, toolSig)
		if err != nil {
			s.logger.Warn().Err(err).Str("tool", tool.ID).Msg("scoring degraded")
			return ScoredTool{Tool: tool, Score: 0}
		}
		st.Score = res.Score
		s.setCachedFloat(ctx, scoreKey, res.Score, cache.TTLToolScore)
	}

	if toolSig != nil {
		st.PersonalizationBoost = s.personalizationBoost(ctx, tool, toolSig)
	}
	st.Reasons = s.scorer.Reasons(tool, role, scoring.Result{Score: st.Score}, toolSig)

	return st
}

// personalizationBoost memoizes the per-user, per-tool boost.
func (s *Service) personalizationBoost(ctx context.Context, tool catalog.Tool, sig *scoring.UserSignals) float64 {
	key := cache.KeyPersonalization(tool.ID, sig.UserID)
	if boost, ok := s.getCachedFloat(ctx, key); ok {
		return boost
	}

	boost := scoring.Boost(tool.Categories, sig)
	s.setCachedFloat(ctx, key, boost, cache.TTLPersonalization)
	return boost
}

// GetTotalRecommendationsCount returns the number of active tools,
// memoized per role.
func (s *Service) GetTotalRecommendationsCount(ctx context.Context, roleName string) (int, error) {
	role, err := s.scorer.Config().ResolveRole(roleName)
	if err != nil {
		return 0, err
	}

	key := cache.KeyTotal(role)
	if n, ok := s.getCachedFloat(ctx, key); ok {
		return int(n), nil
	}

	tools, err := s.provider.ListTools(ctx, catalog.ToolFilter{
		Statuses: []catalog.ToolStatus{catalog.StatusActive},
	})
	if err != nil {
		return 0, fmt.Errorf("count active tools: %w", err)
	}

	s.setCachedFloat(ctx, key, float64(len(tools)), cache.TTLTotal)
	return len(tools), nil
}

// GetAllRoleRecommendations returns the anonymous top-5 page for every
// canonical role, memoized as a single aggregate.
func (s *Service) GetAllRoleRecommendations(ctx context.Context) (map[string]*Result, error) {
	if data, ok := s.getCachedBytes(ctx, cache.KeyAllRoles); ok {
		var all map[string]*Result
		if err := decode(data, &all); err == nil {
			s.markHit()
			return all, nil
		}
		s.logger.Warn().Msg("discarding undecodable all-roles cache entry")
	}
	s.markMiss()

	all := make(map[string]*Result, len(s.scorer.Config().Roles()))
	for _, role := range s.scorer.Config().Roles() {
		result, err := s.computeRecommendations(ctx, role, allRolesTopN, 0, "")
		if err != nil {
			return nil, fmt.Errorf("role %s: %w", role, err)
		}
		all[role] = result
	}

	if data, err := encode(all); err == nil {
		s.setCachedBytes(ctx, cache.KeyAllRoles, data, cache.TTLTotal)
	}
	return all, nil
}

// GetRecentlyAddedTools returns tools added by users of the given role
// within the last days, most recent first.
func (s *Service) GetRecentlyAddedTools(ctx context.Context, roleName string, days, limit int) ([]RecentAddition, error) {
	role, err := s.scorer.Config().ResolveRole(roleName)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		days = DefaultTrendingDays
	}
	limit = clampInt(limit, MinLimit, MaxLimit)

	since := s.now().Add(-time.Duration(days) * 24 * time.Hour)
	added, err := s.provider.ListInteractions(ctx, catalog.InteractionFilter{
		Types: []catalog.InteractionType{catalog.InteractionAdded},
		Since: since,
	})
	if err != nil {
		return nil, fmt.Errorf("list added interactions: %w", err)
	}

	tools, err := s.provider.ListTools(ctx, catalog.ToolFilter{
		Statuses: []catalog.ToolStatus{catalog.StatusActive},
	})
	if err != nil {
		return nil, fmt.Errorf("list active tools: %w", err)
	}
	toolByID := make(map[string]catalog.Tool, len(tools))
	for _, tool := range tools {
		toolByID[tool.ID] = tool
	}

	recent := make([]RecentAddition, 0, limit)
	for _, ev := range added {
		if ev.UserRole != role {
			continue
		}
		tool, ok := toolByID[ev.ToolID]
		if !ok {
			continue
		}
		recent = append(recent, RecentAddition{
			Tool:    tool,
			UserID:  ev.UserID,
			AddedAt: ev.OccurredAt,
		})
		if len(recent) == limit {
			break
		}
	}

	return recent, nil
}

// ClearCaches invalidates every engine cache entry. Invoked by moderation
// workflows when a tool goes active and by the tracker after qualifying
// interactions. Invalidation is best effort: failures are logged, never
// surfaced.
func (s *Service) ClearCaches(ctx context.Context) {
	if s.store.SupportsPatternDelete() {
		for _, prefix := range cache.EnginePrefixes {
			if err := s.store.DeleteByPrefix(ctx, prefix); err != nil {
				s.logger.Warn().Err(err).Str("prefix", prefix).Msg("cache prefix delete failed")
			}
		}
		s.logger.Debug().Msg("recommendation caches cleared by prefix")
		return
	}

	// Stores without pattern deletes flush the whole namespace. A
	// documented tradeoff, not a bug.
	if err := s.store.FlushAll(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("cache flush failed")
		return
	}
	s.logger.Debug().Msg("recommendation caches cleared by full flush")
}

// paginate applies offset/limit to the sorted match list.
func paginate(matches []ScoredTool, limit, offset int) []ScoredTool {
	if offset >= len(matches) {
		return []ScoredTool{}
	}
	end := offset + limit
	if end > len(matches) {
		end = len(matches)
	}
	page := make([]ScoredTool, end-offset)
	copy(page, matches[offset:end])
	return page
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// newRequestID generates a unique request ID for tracing.
func newRequestID() string {
	return "rec-" + uuid.NewString()
}
