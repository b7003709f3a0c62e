package scoring

import (
	"testing"
	"time"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

func TestTierReason(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{95, "Perfect match for your role"},
		{85, "Perfect match for your role"},
		{72, "Highly recommended for your role"},
		{55, "Great fit for your workflow"},
		{42, "Good tool for your toolkit"},
		{10, ""},
		{0, ""},
	}

	for _, tc := range cases {
		if got := tierReason(tc.score); got != tc.want {
			t.Errorf("tierReason(%.0f) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestReasons_PersonalizationFirst(t *testing.T) {
	scorer := newTestScorer(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tool := catalog.Tool{
		ID:         "t1",
		Name:       "Component Studio",
		Categories: []string{"Code Generation"},
		Status:     catalog.StatusActive,
	}
	sig := &UserSignals{
		UserID: "u1",
		Now:    now,
		ToolInteractions: []catalog.Interaction{
			{Type: catalog.InteractionFavorited, OccurredAt: now.Add(-24 * time.Hour)},
		},
	}

	reasons := scorer.Reasons(tool, RoleFrontend, Result{Score: 75}, sig)
	if len(reasons) == 0 {
		t.Fatal("expected at least one reason")
	}
	if reasons[0] != "One of your favorites" {
		t.Errorf("expected personalization reason first, got %q", reasons[0])
	}
}

func TestReasons_TrendingMentionsRole(t *testing.T) {
	scorer := newTestScorer(t)

	tool := catalog.Tool{ID: "t1", Name: "Hot Tool", Status: catalog.StatusActive}
	sig := &UserSignals{
		UserID:   "u1",
		Now:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Trending: true,
	}

	reasons := scorer.Reasons(tool, RoleQA, Result{Score: 55}, sig)
	if len(reasons) == 0 || reasons[0] != "Trending among qa users" {
		t.Errorf("expected trending reason first, got %v", reasons)
	}
}

func TestReasons_Collaboration(t *testing.T) {
	scorer := newTestScorer(t)

	// designer tool for frontend: compat 0.8 > 0.6.
	tool := catalog.Tool{
		ID:            "t1",
		Name:          "Handoff Inspector",
		Status:        catalog.StatusActive,
		SuggestedRole: RoleDesigner,
	}
	reasons := scorer.Reasons(tool, RoleFrontend, Result{Score: 60}, nil)
	if len(reasons) == 0 || reasons[0] != "Essential for collaboration with the designer team" {
		t.Errorf("expected collaboration reason first, got %v", reasons)
	}

	// pm tool for qa: compat 0.4, coordination tier.
	tool.SuggestedRole = RolePM
	reasons = scorer.Reasons(tool, RoleQA, Result{Score: 60}, nil)
	if len(reasons) == 0 || reasons[0] != "Useful for cross-team coordination" {
		t.Errorf("expected coordination reason first, got %v", reasons)
	}

	// backend tool for designer: compat 0.2, no collaboration reason.
	tool.SuggestedRole = RoleBackend
	reasons = scorer.Reasons(tool, RoleDesigner, Result{Score: 60}, nil)
	for _, r := range reasons {
		if r == "Useful for cross-team coordination" {
			t.Errorf("expected no coordination reason at compat 0.2, got %v", reasons)
		}
	}
}

func TestReasons_EssentialCategory(t *testing.T) {
	scorer := newTestScorer(t)

	tool := catalog.Tool{
		ID:         "t1",
		Name:       "TestRunner",
		Categories: []string{"Testing"},
		Status:     catalog.StatusActive,
	}

	reasons := scorer.Reasons(tool, RoleQA, Result{Score: 60}, nil)
	found := false
	for _, r := range reasons {
		if r == "Essential Testing tool for your role" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected essential category reason for qa, got %v", reasons)
	}
}

func TestReasons_AtMostThree(t *testing.T) {
	scorer := newTestScorer(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A tool that triggers personalization, tier, essential category and
	// keyword reasons at once still yields at most three.
	tool := catalog.Tool{
		ID:          "t1",
		Name:        "Testing automation quality suite",
		Description: "test regression coverage bug tracking",
		Categories:  []string{"Testing"},
		Status:      catalog.StatusActive,
	}
	sig := &UserSignals{
		UserID: "u1",
		Now:    now,
		ToolInteractions: []catalog.Interaction{
			{Type: catalog.InteractionAdded, OccurredAt: now.Add(-24 * time.Hour)},
			{Type: catalog.InteractionFavorited, OccurredAt: now.Add(-48 * time.Hour)},
		},
		Trending: true,
	}

	reasons := scorer.Reasons(tool, RoleQA, Result{Score: 92}, sig)
	if len(reasons) != 3 {
		t.Errorf("expected exactly 3 reasons, got %d: %v", len(reasons), reasons)
	}
}
