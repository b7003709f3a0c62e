package scoring

import (
	"fmt"
	"sort"
	"strings"
)

// maxRoleSuggestions bounds the fuzzy suggestions attached to an
// InvalidRoleError.
const maxRoleSuggestions = 3

// InvalidRoleError is returned when a requested role cannot be resolved via
// the role table or the synonym map. It carries the valid role list and up
// to three fuzzy suggestions so callers can render a helpful message.
type InvalidRoleError struct {
	// Requested is the unresolvable role name as given.
	Requested string

	// ValidRoles lists all canonical role names.
	ValidRoles []string

	// Suggestions are the closest role names by substring similarity.
	Suggestions []string
}

func (e *InvalidRoleError) Error() string {
	msg := fmt.Sprintf("unknown role %q (valid roles: %s)",
		e.Requested, strings.Join(e.ValidRoles, ", "))
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// ResolveRole normalizes a requested role name, or returns an
// *InvalidRoleError with valid roles and fuzzy suggestions.
func (c *Config) ResolveRole(name string) (string, error) {
	if canonical, ok := c.NormalizeRole(name); ok {
		return canonical, nil
	}
	return "", &InvalidRoleError{
		Requested:   name,
		ValidRoles:  c.Roles(),
		Suggestions: c.suggestRoles(name),
	}
}

// suggestRoles ranks known role names and synonyms by substring similarity
// to the requested name and returns the top canonical matches.
func (c *Config) suggestRoles(name string) []string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}

	type candidate struct {
		canonical string
		score     float64
	}

	best := make(map[string]float64)
	consider := func(alias, canonical string) {
		score := substringSimilarity(name, alias)
		if score > best[canonical] {
			best[canonical] = score
		}
	}

	for role := range c.RoleKeywords {
		consider(role, role)
	}
	for alias, canonical := range c.Synonyms {
		consider(alias, canonical)
	}

	candidates := make([]candidate, 0, len(best))
	for canonical, score := range best {
		if score > 0 {
			candidates = append(candidates, candidate{canonical, score})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].canonical < candidates[j].canonical
	})

	suggestions := make([]string, 0, maxRoleSuggestions)
	for _, cand := range candidates {
		suggestions = append(suggestions, cand.canonical)
		if len(suggestions) == maxRoleSuggestions {
			break
		}
	}
	return suggestions
}

// substringSimilarity scores two strings by their longest common substring
// relative to the longer string's length, in [0,1].
func substringSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	longest := longestCommonSubstring(a, b)
	if longest < 2 {
		return 0
	}

	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	return float64(longest) / float64(denom)
}

// longestCommonSubstring returns the length of the longest substring shared
// by a and b.
func longestCommonSubstring(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	longest := 0

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
				if curr[j] > longest {
					longest = curr[j]
				}
			} else {
				curr[j] = 0
			}
		}
		prev, curr = curr, prev
	}

	return longest
}
