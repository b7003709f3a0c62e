package scoring

import "testing"

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_Validate_Errors(t *testing.T) {
	// Synonym pointing at an unknown role.
	cfg := DefaultConfig()
	cfg.Synonyms["mystery"] = "wizard"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for synonym targeting unknown role")
	}

	// Cross-role row for an unknown role.
	cfg = DefaultConfig()
	cfg.CrossRole["wizard"] = map[string]float64{RoleFrontend: 0.5}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for cross-role row with unknown role")
	}

	// Category weight out of range.
	cfg = DefaultConfig()
	cfg.CategoryWeights[RoleFrontend]["Design"] = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for category weight above 1")
	}
}

func TestConfig_Compat_PinnedPairs(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		target, suggested string
		want              float64
	}{
		{RoleFrontend, RoleDesigner, 0.8},
		{RoleDesigner, RoleFrontend, 0.8},
		{RoleBackend, RoleDesigner, 0.2},
		{RoleDesigner, RoleBackend, 0.2},
		{RoleFrontend, RoleBackend, 0.6},
		{RoleBackend, RoleFrontend, 0.6},
	}

	for _, tc := range cases {
		if got := cfg.Compat(tc.target, tc.suggested); got != tc.want {
			t.Errorf("Compat(%s, %s) = %.2f, want %.2f", tc.target, tc.suggested, got, tc.want)
		}
	}
}

func TestConfig_Compat_Asymmetry(t *testing.T) {
	cfg := DefaultConfig()

	// The matrix is directional: qa values frontend tools more than
	// frontend values qa tools.
	qaToFrontend := cfg.Compat(RoleQA, RoleFrontend)
	frontendToQA := cfg.Compat(RoleFrontend, RoleQA)
	if qaToFrontend == frontendToQA {
		t.Errorf("expected asymmetric compat, got %.2f both ways", qaToFrontend)
	}
}

func TestConfig_Compat_UnlistedDefaultsToZero(t *testing.T) {
	cfg := &Config{
		RoleKeywords:     map[string][]string{"dev": {"code"}},
		CategoryWeights:  map[string]map[string]float64{"dev": {"Cat": 0.5}},
		CrossRole:        map[string]map[string]float64{"dev": {"dev": 1}},
		EstablishedTools: []string{"x"},
		Synonyms:         map[string]string{"developer": "dev"},
	}

	if got := cfg.Compat("unknown", "dev"); got != 0 {
		t.Errorf("expected 0 for missing row, got %.2f", got)
	}
	if got := cfg.Compat("dev", "unknown"); got != 0 {
		t.Errorf("expected 0 for missing column, got %.2f", got)
	}
}

func TestConfig_Roles_Sorted(t *testing.T) {
	roles := DefaultConfig().Roles()
	if len(roles) != 6 {
		t.Fatalf("expected 6 roles, got %d", len(roles))
	}
	for i := 1; i < len(roles); i++ {
		if roles[i-1] >= roles[i] {
			t.Errorf("roles not sorted: %v", roles)
		}
	}
}
