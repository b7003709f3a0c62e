package scoring

import (
	"testing"
	"time"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

func TestBoost_NilSignals(t *testing.T) {
	if got := Boost([]string{"Design"}, nil); got != 0 {
		t.Errorf("expected 0 boost for nil signals, got %.2f", got)
	}
}

func TestBoost_SignalWeights(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-24 * time.Hour)

	cases := []struct {
		name string
		evs  []catalog.Interaction
		want float64
	}{
		{
			name: "added",
			evs:  []catalog.Interaction{{Type: catalog.InteractionAdded, OccurredAt: recent}},
			want: 0.8,
		},
		{
			name: "suggested",
			evs:  []catalog.Interaction{{Type: catalog.InteractionSuggestedByAI, OccurredAt: recent}},
			want: 0.6,
		},
		{
			name: "favorited",
			evs:  []catalog.Interaction{{Type: catalog.InteractionFavorited, OccurredAt: recent}},
			want: 1.0,
		},
		{
			name: "two views",
			evs: []catalog.Interaction{
				{Type: catalog.InteractionViewed, OccurredAt: recent},
				{Type: catalog.InteractionViewed, OccurredAt: recent},
			},
			want: 0.2,
		},
		{
			name: "engagement capped at 0.3",
			evs: []catalog.Interaction{
				{Type: catalog.InteractionViewed, OccurredAt: recent},
				{Type: catalog.InteractionViewed, OccurredAt: recent},
				{Type: catalog.InteractionClicked, OccurredAt: recent},
				{Type: catalog.InteractionClicked, OccurredAt: recent},
				{Type: catalog.InteractionViewed, OccurredAt: recent},
			},
			want: 0.3,
		},
	}

	for _, tc := range cases {
		sig := &UserSignals{UserID: "u1", Now: now, ToolInteractions: tc.evs}
		if got := Boost(nil, sig); got != tc.want {
			t.Errorf("%s: expected boost %.2f, got %.2f", tc.name, tc.want, got)
		}
	}
}

func TestBoost_CappedAtOne(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-24 * time.Hour)

	// added (0.8) + favorited (1.0) + views would exceed 1.0 uncapped.
	sig := &UserSignals{
		UserID: "u1",
		Now:    now,
		ToolInteractions: []catalog.Interaction{
			{Type: catalog.InteractionAdded, OccurredAt: recent},
			{Type: catalog.InteractionFavorited, OccurredAt: recent},
			{Type: catalog.InteractionViewed, OccurredAt: recent},
		},
	}

	if got := Boost(nil, sig); got != 1.0 {
		t.Errorf("expected boost capped at exactly 1.0, got %.2f", got)
	}
}

func TestBoost_WindowExcludesOldInteractions(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sig := &UserSignals{
		UserID: "u1",
		Now:    now,
		ToolInteractions: []catalog.Interaction{
			{Type: catalog.InteractionFavorited, OccurredAt: now.Add(-31 * 24 * time.Hour)},
		},
	}

	if got := Boost(nil, sig); got != 0 {
		t.Errorf("expected interactions older than 30 days to be ignored, got %.2f", got)
	}
}

func TestSimilarityBoost_Caps(t *testing.T) {
	// One heavily-used shared category is capped at 0.2.
	got := similarityBoost([]string{"Design"}, map[string]int{"Design": 10})
	if got != 0.2 {
		t.Errorf("expected per-category cap 0.2, got %.2f", got)
	}

	// Many shared categories are capped at 0.4 total.
	got = similarityBoost(
		[]string{"Design", "Testing", "Analytics"},
		map[string]int{"Design": 10, "Testing": 10, "Analytics": 10},
	)
	if got != 0.4 {
		t.Errorf("expected total similarity cap 0.4, got %.2f", got)
	}

	// No overlap means no boost.
	got = similarityBoost([]string{"Design"}, map[string]int{"Testing": 3})
	if got != 0 {
		t.Errorf("expected 0 for disjoint categories, got %.2f", got)
	}
}
