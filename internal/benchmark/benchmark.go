/*
Package benchmark provides scoring-throughput benchmarking for toolmatch.

It measures two things:
 1. Scoring: how many tool/role scorings per second the model sustains
    over a synthetic catalog.
 2. Cache: round-trip latency of the recommendation cache store.

Synthetic tools cycle through the configured categories and role keywords so
every branch of the scoring model is exercised.
*/
package benchmark

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/khanglvm/toolmatch/internal/cache"
	"github.com/khanglvm/toolmatch/internal/catalog"
	"github.com/khanglvm/toolmatch/internal/scoring"
)

// ScoringResult contains scoring throughput measurements.
type ScoringResult struct {
	ToolCount       int           `json:"toolCount"`
	RoleCount       int           `json:"roleCount"`
	Iterations      int           `json:"iterations"`
	TotalScores     int           `json:"totalScores"`
	Elapsed         time.Duration `json:"elapsed"`
	ScoresPerSecond float64       `json:"scoresPerSecond"`
}

// CacheResult contains cache round-trip measurements.
type CacheResult struct {
	Entries    int           `json:"entries"`
	SetElapsed time.Duration `json:"setElapsed"`
	GetElapsed time.Duration `json:"getElapsed"`
	AvgSet     time.Duration `json:"avgSet"`
	AvgGet     time.Duration `json:"avgGet"`
}

// knownCategories mirrors the category set used by the default weight
// tables. Synthetic tools cycle through these.
var knownCategories = []string{
	"Code Generation", "Design", "Testing", "Productivity", "Documentation",
	"DevOps", "Analytics", "Communication", "Project Management", "Research",
}

// GenerateTools builds a synthetic active catalog of n tools whose names
// and descriptions reuse the configured role keywords.
func GenerateTools(cfg *scoring.Config, n int) []catalog.Tool {
	roles := cfg.Roles()
	tools := make([]catalog.Tool, 0, n)

	for i := 0; i < n; i++ {
		role := roles[i%len(roles)]
		keywords := cfg.RoleKeywords[role]
		keyword := keywords[i%len(keywords)]

		tools = append(tools, catalog.Tool{
			ID:          fmt.Sprintf("bench-tool-%04d", i),
			Name:        fmt.Sprintf("%s helper %d", keyword, i),
			Description: fmt.Sprintf("A %s tool for %s workflows", keyword, role),
			DetailedDescription: strings.Repeat(
				fmt.Sprintf("Automates %s tasks. ", keyword), 8),
			Categories:    []string{knownCategories[i%len(knownCategories)]},
			Status:        catalog.StatusActive,
			SuggestedRole: role,
			WebsiteURL:    fmt.Sprintf("https://example.com/%d", i),
		})
	}

	return tools
}

// RunScoring scores every synthetic tool against every role, iterations
// times, and reports sustained throughput.
func RunScoring(cfg *scoring.Config, toolCount, iterations int) (*ScoringResult, error) {
	scorer, err := scoring.NewScorer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build scorer: %w", err)
	}

	tools := GenerateTools(cfg, toolCount)
	roles := cfg.Roles()

	start := time.Now()
	total := 0
	for iter := 0; iter < iterations; iter++ {
		for _, role := range roles {
			for _, tool := range tools {
				if _, err := scorer.Score(tool, role, nil); err != nil {
					return nil, fmt.Errorf("scoring failed for %s/%s: %w", tool.ID, role, err)
				}
				total++
			}
		}
	}
	elapsed := time.Since(start)

	perSecond := 0.0
	if elapsed > 0 {
		perSecond = float64(total) / elapsed.Seconds()
	}

	return &ScoringResult{
		ToolCount:       toolCount,
		RoleCount:       len(roles),
		Iterations:      iterations,
		TotalScores:     total,
		Elapsed:         elapsed,
		ScoresPerSecond: perSecond,
	}, nil
}

// RunCache measures set and get latency over the given store using
// recommendation-shaped keys and payloads.
func RunCache(ctx context.Context, store cache.Store, entries int) (*CacheResult, error) {
	payload := []byte(strings.Repeat(`{"score":87.5,"reasons":["x"]}`, 16))

	setStart := time.Now()
	for i := 0; i < entries; i++ {
		key := cache.KeyToolScore(fmt.Sprintf("bench-tool-%04d", i), "frontend", "")
		if err := store.Set(ctx, key, payload, cache.TTLToolScore); err != nil {
			return nil, fmt.Errorf("cache set failed: %w", err)
		}
	}
	setElapsed := time.Since(setStart)

	getStart := time.Now()
	for i := 0; i < entries; i++ {
		key := cache.KeyToolScore(fmt.Sprintf("bench-tool-%04d", i), "frontend", "")
		if _, _, err := store.Get(ctx, key); err != nil {
			return nil, fmt.Errorf("cache get failed: %w", err)
		}
	}
	getElapsed := time.Since(getStart)

	result := &CacheResult{
		Entries:    entries,
		SetElapsed: setElapsed,
		GetElapsed: getElapsed,
	}
	if entries > 0 {
		result.AvgSet = setElapsed / time.Duration(entries)
		result.AvgGet = getElapsed / time.Duration(entries)
	}
	return result, nil
}

// FormatScoringResult formats the scoring benchmark for display.
func FormatScoringResult(result *ScoringResult) string {
	var sb strings.Builder

	sb.WriteString("Scoring Benchmark\n")
	sb.WriteString("=================\n")
	sb.WriteString(fmt.Sprintf("  Tools:      %d\n", result.ToolCount))
	sb.WriteString(fmt.Sprintf("  Roles:      %d\n", result.RoleCount))
	sb.WriteString(fmt.Sprintf("  Iterations: %d\n", result.Iterations))
	sb.WriteString(fmt.Sprintf("  Scorings:   %d in %s\n", result.TotalScores, result.Elapsed.Round(time.Millisecond)))
	sb.WriteString(fmt.Sprintf("  Throughput: %.0f scores/sec\n", result.ScoresPerSecond))

	return sb.String()
}

// FormatCacheResult formats the cache benchmark for display.
func FormatCacheResult(result *CacheResult) string {
	var sb strings.Builder

	sb.WriteString("Cache Benchmark\n")
	sb.WriteString("===============\n")
	sb.WriteString(fmt.Sprintf("  Entries: %d\n", result.Entries))
	sb.WriteString(fmt.Sprintf("  Set:     %s total, %s avg\n", result.SetElapsed.Round(time.Microsecond), result.AvgSet))
	sb.WriteString(fmt.Sprintf("  Get:     %s total, %s avg\n", result.GetElapsed.Round(time.Microsecond), result.AvgGet))

	return sb.String()
}
