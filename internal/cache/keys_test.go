package cache

import (
	"strings"
	"testing"
)

func TestKeyRecommendations(t *testing.T) {
	anon := KeyRecommendations("frontend", 10, 0, "")
	if anon != "recommendations:frontend:10:0" {
		t.Errorf("unexpected anonymous key: %s", anon)
	}

	personal := KeyRecommendations("frontend", 10, 0, "user-1")
	if personal != "recommendations:frontend:10:0:user-1" {
		t.Errorf("unexpected personalized key: %s", personal)
	}
}

func TestKeyBuilders(t *testing.T) {
	if got := KeyTotal("qa"); got != "total_recommendations:qa" {
		t.Errorf("unexpected total key: %s", got)
	}
	if got := KeyToolScore("t1", "qa", ""); got != "tool_score:t1:qa" {
		t.Errorf("unexpected tool score key: %s", got)
	}
	if got := KeyToolScore("t1", "qa", "u1"); got != "tool_score:t1:qa:u1" {
		t.Errorf("unexpected personalized tool score key: %s", got)
	}
	if got := KeyPersonalization("t1", "u1"); got != "personalization_boost:t1:u1" {
		t.Errorf("unexpected personalization key: %s", got)
	}
	if got := KeyRecentlyPopular("t1", "qa", 7); got != "recently_popular:t1:qa:7" {
		t.Errorf("unexpected trending key: %s", got)
	}
}

func TestEnginePrefixes_CoverAllBuilders(t *testing.T) {
	keys := []string{
		KeyRecommendations("frontend", 10, 0, "u1"),
		KeyTotal("frontend"),
		KeyToolScore("t1", "frontend", "u1"),
		KeyPersonalization("t1", "u1"),
		KeyRecentlyPopular("t1", "frontend", 7),
		KeyAllRoles,
	}

	for _, key := range keys {
		covered := false
		for _, prefix := range EnginePrefixes {
			if strings.HasPrefix(key, prefix) {
				covered = true
				break
			}
		}
		if !covered {
			t.Errorf("key %s not covered by any engine prefix", key)
		}
	}
}
