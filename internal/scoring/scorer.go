package scoring

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

const (
	// baseScore is the starting score for every tool.
	baseScore = 25.0

	// keywordPoints is the maximum contribution of the keyword score.
	keywordPoints = 30.0

	// categoryPoints is the maximum contribution of the category score.
	categoryPoints = 30.0

	// suggestedRolePoints is the flat bonus for an exact suggested-role
	// match.
	suggestedRolePoints = 18.0

	// crossRolePoints scales the cross-role compatibility bonus when the
	// suggested role differs from the target role.
	crossRolePoints = 12.0

	// qualityPoints is the maximum contribution of the quality score.
	qualityPoints = 12.0

	// personalizationPoints is the maximum contribution of the
	// personalization boost.
	personalizationPoints = 15.0

	// ownPendingPoints is the flat bonus for the submitter's own recent
	// pending tool.
	ownPendingPoints = 12.0

	// comboBonusMultiplier applies when both keyword and category signals
	// are strong.
	comboBonusMultiplier = 1.05

	// strongSignalBonus is the flat bonus for a single very strong
	// keyword or category signal.
	strongSignalBonus = 6.0

	// nameMatchWeight boosts keyword matches found in the tool name.
	nameMatchWeight = 1.5

	// matchThreshold is the minimum final score for a tool to count as a
	// match. Scores below it are forced to zero (precision over recall).
	matchThreshold = 40.0
)

// UserSignals carries the per-user inputs for personalized scoring. A nil
// *UserSignals means anonymous scoring with no personalization.
type UserSignals struct {
	// UserID is the requesting user.
	UserID string

	// Now anchors all time-window checks so scoring stays a pure
	// function of its inputs.
	Now time.Time

	// ToolInteractions are the user's interactions with this specific
	// tool.
	ToolInteractions []catalog.Interaction

	// RecentCategories maps category name to how often it appears among
	// tools the user recently added, favorited or was suggested.
	RecentCategories map[string]int

	// Trending reports whether the tool is recently popular among users
	// of the target role.
	Trending bool
}

// Result is the outcome of scoring one tool for one role.
type Result struct {
	// Score is the final relevance score: 0, or a value in [40,100]
	// rounded to two decimals.
	Score float64

	// Reasons are up to three human-readable match explanations.
	Reasons []string

	// Boost is the personalization boost in [0,1] that contributed to
	// the score (0 for anonymous requests).
	Boost float64

	// KeywordScore and CategoryScore are the normalized component
	// signals, kept for bonus rules and reason generation.
	KeywordScore  float64
	CategoryScore float64
}

// Scorer computes relevance scores from injected weight tables. It performs
// no I/O and is safe for concurrent use.
type Scorer struct {
	cfg *Config
}

// NewScorer validates the config and returns a scorer.
func NewScorer(cfg *Config) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg}, nil
}

// Config returns the injected configuration.
func (s *Scorer) Config() *Config {
	return s.cfg
}

// Score computes the relevance of a tool for a canonical role. roleName must
// already be normalized; unknown roles yield an error.
func (s *Scorer) Score(tool catalog.Tool, roleName string, sig *UserSignals) (Result, error) {
	keywords, ok := s.cfg.RoleKeywords[roleName]
	if !ok {
		return Result{}, fmt.Errorf("unknown role %q", roleName)
	}

	keywordScore := s.keywordScore(tool, keywords)
	categoryScore := s.categoryScore(tool, roleName)
	quality := s.qualityScore(tool)

	total := baseScore
	total += keywordScore * keywordPoints
	total += categoryScore * categoryPoints
	total += s.suggestionBonus(tool, roleName)
	total += quality * qualityPoints

	var boost float64
	if sig != nil {
		boost = Boost(tool.Categories, sig)
		total += boost * personalizationPoints
		if s.isOwnRecentPending(tool, sig) {
			total += ownPendingPoints
		}
	}

	if keywordScore > 0.4 && categoryScore > 0.5 {
		total *= comboBonusMultiplier
	}
	if keywordScore > 0.6 || categoryScore > 0.7 {
		total += strongSignalBonus
	}

	score := math.Round(clamp(total, 0, 100)*100) / 100
	if score < matchThreshold {
		score = 0
	}

	res := Result{
		Score:         score,
		Boost:         boost,
		KeywordScore:  keywordScore,
		CategoryScore: categoryScore,
	}
	res.Reasons = s.Reasons(tool, roleName, res, sig)

	return res, nil
}

// keywordScore computes the weighted keyword match ratio in [0,1].
// Keyword weight decays with list position; matches inside the tool name
// count extra.
func (s *Scorer) keywordScore(tool catalog.Tool, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}

	name := strings.ToLower(tool.Name)
	haystack := name + " " +
		strings.ToLower(tool.Description) + " " +
		strings.ToLower(tool.DetailedDescription)

	var matched, total float64
	n := len(keywords)
	for i, kw := range keywords {
		weight := math.Max(1, float64(n-i))
		total += weight

		kw = strings.ToLower(kw)
		switch {
		case strings.Contains(name, kw):
			matched += weight * nameMatchWeight
		case strings.Contains(haystack, kw):
			matched += weight
		}
	}

	if total == 0 {
		return 0
	}
	return clamp(matched/total, 0, 1)
}

// matchedKeywords counts how many role keywords the tool text contains.
func (s *Scorer) matchedKeywords(tool catalog.Tool, roleName string) int {
	haystack := strings.ToLower(tool.Name + " " + tool.Description + " " + tool.DetailedDescription)

	count := 0
	for _, kw := range s.cfg.RoleKeywords[roleName] {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

// categoryScore computes the mean role weight of the tool's recognized
// categories, or 0 when none are recognized.
func (s *Scorer) categoryScore(tool catalog.Tool, roleName string) float64 {
	weights, ok := s.cfg.CategoryWeights[roleName]
	if !ok || len(tool.Categories) == 0 {
		return 0
	}

	var sum float64
	var count int
	for _, cat := range tool.Categories {
		if w, ok := weights[cat]; ok {
			sum += w
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// suggestionBonus awards a flat bonus for an exact suggested-role match, or
// partial cross-role credit when the tool was suggested for another role.
func (s *Scorer) suggestionBonus(tool catalog.Tool, roleName string) float64 {
	if tool.SuggestedRole == "" {
		return 0
	}
	if tool.SuggestedRole == roleName {
		return suggestedRolePoints
	}
	return s.cfg.Compat(roleName, tool.SuggestedRole) * crossRolePoints
}

// qualityScore estimates intrinsic tool quality in [0,1] from metadata
// completeness and name recognition.
func (s *Scorer) qualityScore(tool catalog.Tool) float64 {
	quality := 0.5

	name := strings.ToLower(tool.Name)
	for _, established := range s.cfg.EstablishedTools {
		if strings.Contains(name, strings.ToLower(established)) {
			quality += 0.4
			break
		}
	}

	if len(tool.DetailedDescription) > 100 {
		quality += 0.1
	}
	if isValidURL(tool.WebsiteURL) {
		quality += 0.1
	}
	if tool.APIEndpoint != "" {
		quality += 0.1
	}

	return clamp(quality, 0, 1)
}

// isOwnRecentPending reports whether the tool is the requesting user's own
// pending submission within the visibility window.
func (s *Scorer) isOwnRecentPending(tool catalog.Tool, sig *UserSignals) bool {
	return tool.Status == catalog.StatusPending &&
		tool.SubmittedBy != "" &&
		tool.SubmittedBy == sig.UserID &&
		sig.Now.Sub(tool.CreatedAt) <= catalog.PendingVisibilityWindow
}

// isValidURL reports whether raw parses as an absolute http(s) URL.
func isValidURL(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
