/*
Package scoring implements the per-tool, per-role relevance scoring model.

The model is a weighted additive score over keyword, category, suggested-role,
quality and personalization signals, with multiplicative bonuses and a
precision-over-recall threshold: anything below 40 is treated as "not a
match" and clamped to zero.

All weight tables are injected via Config so tests can run against synthetic
tables and weights can be tuned without code changes.
*/
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Canonical role names. Role names are the lookup keys for every weight
// table in this package.
const (
	RoleFrontend = "frontend"
	RoleBackend  = "backend"
	RoleQA       = "qa"
	RoleDesigner = "designer"
	RolePM       = "pm"
	RoleOwner    = "owner"
)

// CanonicalRoles lists the six role names in display order.
var CanonicalRoles = []string{
	RoleFrontend, RoleBackend, RoleQA, RoleDesigner, RolePM, RoleOwner,
}

// Config holds every static table the scoring model depends on. It is
// immutable after construction; Scorer never mutates it.
type Config struct {
	// RoleKeywords maps a role to its keyword list, most important
	// first. Keyword weight decays with list position.
	RoleKeywords map[string][]string `json:"role_keywords" koanf:"role_keywords" validate:"required"`

	// CategoryWeights maps role -> category name -> weight in [0,1].
	CategoryWeights map[string]map[string]float64 `json:"category_weights" koanf:"category_weights" validate:"required,dive,dive,min=0,max=1"`

	// CrossRole is the asymmetric compatibility matrix:
	// CrossRole[target][suggested] is how relevant a tool aimed at
	// "suggested" is to a user in "target". Unlisted pairs default to 0.
	CrossRole map[string]map[string]float64 `json:"cross_role" koanf:"cross_role" validate:"required,dive,dive,min=0,max=1"`

	// EstablishedTools are well-known tool names that earn a quality
	// bonus on case-insensitive substring match.
	EstablishedTools []string `json:"established_tools" koanf:"established_tools" validate:"required,min=1"`

	// Synonyms maps common role aliases to canonical role names.
	Synonyms map[string]string `json:"synonyms" koanf:"synonyms" validate:"required"`
}

var validate = validator.New()

// Validate checks the configuration tables for structural errors.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid scoring config: %w", err)
	}

	for alias, target := range c.Synonyms {
		if _, ok := c.RoleKeywords[target]; !ok {
			return fmt.Errorf("invalid scoring config: synonym %q points to unknown role %q", alias, target)
		}
	}
	for target, row := range c.CrossRole {
		if _, ok := c.RoleKeywords[target]; !ok {
			return fmt.Errorf("invalid scoring config: cross-role row for unknown role %q", target)
		}
		for suggested := range row {
			if _, ok := c.RoleKeywords[suggested]; !ok {
				return fmt.Errorf("invalid scoring config: cross-role column for unknown role %q", suggested)
			}
		}
	}

	return nil
}

// Roles returns the configured role names, sorted.
func (c *Config) Roles() []string {
	roles := make([]string, 0, len(c.RoleKeywords))
	for name := range c.RoleKeywords {
		roles = append(roles, name)
	}
	sort.Strings(roles)
	return roles
}

// Compat returns the cross-role compatibility for a (target, suggested) role
// pair. Unlisted pairs default to 0.
func (c *Config) Compat(target, suggested string) float64 {
	row, ok := c.CrossRole[target]
	if !ok {
		return 0
	}
	return row[suggested]
}

// DefaultConfig returns the production weight tables.
func DefaultConfig() *Config {
	return &Config{
		RoleKeywords: map[string][]string{
			RoleFrontend: {"ui", "component", "frontend", "css", "react", "accessibility", "prototype"},
			RoleBackend:  {"api", "backend", "database", "server", "infrastructure", "performance", "queue"},
			RoleQA:       {"testing", "test", "automation", "quality", "bug", "regression", "coverage"},
			RoleDesigner: {"design", "mockup", "wireframe", "visual", "brand", "illustration", "prototype"},
			RolePM:       {"roadmap", "planning", "backlog", "sprint", "stakeholder", "requirements", "tracking"},
			RoleOwner:    {"analytics", "metrics", "strategy", "revenue", "growth", "market", "dashboard"},
		},
		CategoryWeights: map[string]map[string]float64{
			RoleFrontend: {
				"Code Generation": 0.9, "Design": 0.7, "Testing": 0.5,
				"Productivity": 0.5, "Documentation": 0.4, "DevOps": 0.3,
				"Analytics": 0.2, "Communication": 0.2, "Project Management": 0.2,
				"Research": 0.2,
			},
			RoleBackend: {
				"Code Generation": 0.9, "DevOps": 0.8, "Testing": 0.6,
				"Documentation": 0.5, "Productivity": 0.5, "Analytics": 0.4,
				"Design": 0.1, "Communication": 0.2, "Project Management": 0.2,
				"Research": 0.3,
			},
			RoleQA: {
				"Testing": 1.0, "Code Generation": 0.6, "DevOps": 0.5,
				"Documentation": 0.5, "Productivity": 0.5, "Analytics": 0.4,
				"Design": 0.2, "Communication": 0.3, "Project Management": 0.3,
				"Research": 0.2,
			},
			RoleDesigner: {
				"Design": 1.0, "Research": 0.6, "Productivity": 0.5,
				"Communication": 0.4, "Documentation": 0.3, "Code Generation": 0.3,
				"Analytics": 0.3, "Testing": 0.2, "Project Management": 0.2,
				"DevOps": 0.1,
			},
			RolePM: {
				"Project Management": 1.0, "Communication": 0.8, "Productivity": 0.8,
				"Analytics": 0.7, "Documentation": 0.6, "Research": 0.5,
				"Design": 0.3, "Testing": 0.2, "Code Generation": 0.1,
				"DevOps": 0.1,
			},
			RoleOwner: {
				"Analytics": 0.9, "Project Management": 0.8, "Productivity": 0.7,
				"Communication": 0.7, "Research": 0.7, "Documentation": 0.4,
				"Design": 0.3, "Code Generation": 0.2, "Testing": 0.1,
				"DevOps": 0.1,
			},
		},
		// Asymmetric by design: how useful a tool aimed at the column
		// role is to a user in the row role.
		CrossRole: map[string]map[string]float64{
			RoleFrontend: {
				RoleBackend: 0.6, RoleQA: 0.5, RoleDesigner: 0.8,
				RolePM: 0.3, RoleOwner: 0.2,
			},
			RoleBackend: {
				RoleFrontend: 0.6, RoleQA: 0.6, RoleDesigner: 0.2,
				RolePM: 0.3, RoleOwner: 0.2,
			},
			RoleQA: {
				RoleFrontend: 0.7, RoleBackend: 0.7, RoleDesigner: 0.3,
				RolePM: 0.4, RoleOwner: 0.2,
			},
			RoleDesigner: {
				RoleFrontend: 0.8, RoleBackend: 0.2, RoleQA: 0.3,
				RolePM: 0.5, RoleOwner: 0.3,
			},
			RolePM: {
				RoleFrontend: 0.4, RoleBackend: 0.4, RoleQA: 0.5,
				RoleDesigner: 0.6, RoleOwner: 0.8,
			},
			RoleOwner: {
				RoleFrontend: 0.3, RoleBackend: 0.3, RoleQA: 0.3,
				RoleDesigner: 0.4, RolePM: 0.7,
			},
		},
		EstablishedTools: []string{
			"chatgpt", "claude", "copilot", "gemini", "midjourney",
			"notion", "figma", "jira", "slack", "cursor",
		},
		Synonyms: map[string]string{
			"fe":                 RoleFrontend,
			"front-end":          RoleFrontend,
			"front end":          RoleFrontend,
			"frontend developer": RoleFrontend,
			"be":                 RoleBackend,
			"back-end":           RoleBackend,
			"back end":           RoleBackend,
			"backend developer":  RoleBackend,
			"quality assurance":  RoleQA,
			"tester":             RoleQA,
			"qa engineer":        RoleQA,
			"ux":                 RoleDesigner,
			"ui":                 RoleDesigner,
			"ux/ui":              RoleDesigner,
			"product designer":   RoleDesigner,
			"product manager":    RolePM,
			"project manager":    RolePM,
			"product owner":      RoleOwner,
			"po":                 RoleOwner,
			"founder":            RoleOwner,
		},
	}
}

// NormalizeRole resolves a requested role name to its canonical form using
// the synonym map. The boolean is false when the name cannot be resolved.
func (c *Config) NormalizeRole(name string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if _, ok := c.RoleKeywords[normalized]; ok {
		return normalized, true
	}
	if canonical, ok := c.Synonyms[normalized]; ok {
		return canonical, true
	}
	return "", false
}
