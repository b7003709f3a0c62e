package scoring

import (
	"math"
	"time"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

const (
	// personalizationWindow is how far back interactions count toward
	// the boost.
	personalizationWindow = 30 * 24 * time.Hour

	// addedBoost applies when the user added the tool themselves.
	addedBoost = 0.8

	// suggestedBoost applies when the tool was suggested to the user by
	// AI.
	suggestedBoost = 0.6

	// favoritedBoost applies when the user favorited the tool.
	favoritedBoost = 1.0

	// engagementStep is the per-event engagement increment for views and
	// clicks.
	engagementStep = 0.1

	// engagementCap bounds the total engagement contribution.
	engagementCap = 0.3

	// similarityStep is the per-occurrence increment for a shared
	// category.
	similarityStep = 0.05

	// similarityPerCategoryCap bounds one category's contribution.
	similarityPerCategoryCap = 0.2

	// similarityCap bounds the total category-similarity contribution.
	similarityCap = 0.4
)

// Boost aggregates a user's historical interactions into a bounded
// personalization factor in [0,1]. Each signal is independently capped and
// the sum is capped at 1.0. Only interactions within the 30-day window
// before sig.Now count.
func Boost(toolCategories []string, sig *UserSignals) float64 {
	if sig == nil {
		return 0
	}

	windowStart := sig.Now.Add(-personalizationWindow)

	var added, suggested, favorited bool
	engagements := 0

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
		case catalog.InteractionViewed, catalog.InteractionClicked:
			engagements++
		}
	}

	var boost float64
	if added {
		boost += addedBoost
	}
	if suggested {
		boost += suggestedBoost
	}
	if favorited {
		boost += favoritedBoost
	}
	boost += math.Min(engagementCap, float64(engagements)*engagementStep)
	boost += similarityBoost(toolCategories, sig.RecentCategories)

	return math.Min(boost, 1.0)
}

// similarityBoost rewards category overlap between this tool and the tools
// the user recently engaged with.
func similarityBoost(toolCategories []string, recent map[string]int) float64 {
	if len(toolCategories) == 0 || len(recent) == 0 {
		return 0
	}

	var total float64
	for _, cat := range toolCategories {
		freq, ok := recent[cat]
		if !ok {
			continue
		}
		total += math.Min(similarityPerCategoryCap, float64(freq)*similarityStep)
	}

	return math.Min(total, similarityCap)
}
