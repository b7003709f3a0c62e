package scoring

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveRole_CanonicalAndSynonyms(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		in   string
		want string
	}{
		{"frontend", RoleFrontend},
		{"Frontend", RoleFrontend},
		{"  FE  ", RoleFrontend},
		{"front-end", RoleFrontend},
		{"back end", RoleBackend},
		{"quality assurance", RoleQA},
		{"Product Owner", RoleOwner},
		{"founder", RoleOwner},
		{"project manager", RolePM},
		{"ux/ui", RoleDesigner},
	}

	for _, tc := range cases {
		got, err := cfg.ResolveRole(tc.in)
		if err != nil {
			t.Errorf("ResolveRole(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ResolveRole(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveRole_Unknown(t *testing.T) {
	cfg := DefaultConfig()

	_, err := cfg.ResolveRole("astronaut")
	if err == nil {
		t.Fatal("expected error for unknown role")
	}

	var invalid *InvalidRoleError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *InvalidRoleError, got %T", err)
	}

	if len(invalid.ValidRoles) != 6 {
		t.Errorf("expected all 6 valid roles listed, got %v", invalid.ValidRoles)
	}
	if invalid.Requested != "astronaut" {
		t.Errorf("expected requested role preserved, got %q", invalid.Requested)
	}
	if len(invalid.Suggestions) == 0 || len(invalid.Suggestions) > 3 {
		t.Errorf("expected 1-3 suggestions, got %v", invalid.Suggestions)
	}
	if !strings.Contains(invalid.Error(), "frontend") {
		t.Errorf("expected error message to list valid roles, got %q", invalid.Error())
	}
}

func TestSuggestRoles_CloseMisspelling(t *testing.T) {
	cfg := DefaultConfig()

	suggestions := cfg.suggestRoles("fronted")
	if len(suggestions) == 0 || suggestions[0] != RoleFrontend {
		t.Errorf("expected frontend as top suggestion for 'fronted', got %v", suggestions)
	}

	suggestions = cfg.suggestRoles("designr")
	if len(suggestions) == 0 || suggestions[0] != RoleDesigner {
		t.Errorf("expected designer as top suggestion for 'designr', got %v", suggestions)
	}
}

func TestSubstringSimilarity(t *testing.T) {
	if got := substringSimilarity("frontend", "frontend"); got != 1 {
		t.Errorf("expected identical strings to score 1, got %.2f", got)
	}
	if got := substringSimilarity("qa", "xyz"); got != 0 {
		t.Errorf("expected disjoint strings to score 0, got %.2f", got)
	}
	// Single shared characters do not count.
	if got := substringSimilarity("pm", "mp"); got != 0 {
		t.Errorf("expected single-char overlap to score 0, got %.2f", got)
	}
}

func TestLongestCommonSubstring(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"frontend", "fronted", 6},
		{"backend", "backend", 7},
		{"qa", "quality", 1},
		{"", "abc", 0},
	}

	for _, tc := range cases {
		if got := longestCommonSubstring(tc.a, tc.b); got != tc.want {
			t.Errorf("longestCommonSubstring(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
