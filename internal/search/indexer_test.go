package search

import (
	"testing"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

func testCatalog() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:            "t1",
			Name:          "TestPilot",
			Description:   "Automated regression testing and coverage analysis",
			Categories:    []string{"Testing"},
			Status:        catalog.StatusActive,
			SuggestedRole: "qa",
		},
		{
			ID:            "t2",
			Name:          "Figma AI",
			Description:   "AI-assisted design and prototype generation",
			Categories:    []string{"Design"},
			Status:        catalog.StatusActive,
			SuggestedRole: "designer",
		},
		{
			ID:            "t3",
			Name:          "Sketchy",
			Description:   "Quick prototype sketching for design reviews",
			Categories:    []string{"Design"},
			Status:        catalog.StatusActive,
			SuggestedRole: "frontend",
		},
	}
}

func TestNewIndexer(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	defer indexer.Close()
}

func TestIndexTools(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	defer indexer.Close()

	if err := indexer.IndexTools(testCatalog()); err != nil {
		t.Fatalf("failed to index tools: %v", err)
	}

	count, err := indexer.Count()
	if err != nil {
		t.Fatalf("failed to get count: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 indexed tools, got %d", count)
	}
}

func TestSearch(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	defer indexer.Close()

	if err := indexer.IndexTools(testCatalog()); err != nil {
		t.Fatalf("failed to index tools: %v", err)
	}

	results, err := indexer.Search("regression testing", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result for 'regression testing'")
	}
	if results[0].ToolID != "t1" {
		t.Errorf("expected t1 as top hit, got %s", results[0].ToolID)
	}
	if results[0].Name != "TestPilot" {
		t.Errorf("expected stored name in hit, got %q", results[0].Name)
	}
}

func TestSearch_NoResults(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	defer indexer.Close()

	if err := indexer.IndexTools(testCatalog()); err != nil {
		t.Fatalf("failed to index tools: %v", err)
	}

	results, err := indexer.Search("nonexistent_zzz", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestSearchByRole(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	defer indexer.Close()

	if err := indexer.IndexTools(testCatalog()); err != nil {
		t.Fatalf("failed to index tools: %v", err)
	}

	// Both t2 and t3 mention prototypes; the role filter keeps only the
	// frontend-suggested one.
	results, err := indexer.SearchByRole("prototype", "frontend", 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 role-filtered result, got %d", len(results))
	}
	if results[0].ToolID != "t3" {
		t.Errorf("expected t3, got %s", results[0].ToolID)
	}
}

func TestRemoveTool(t *testing.T) {
	indexer, err := NewIndexer()
	if err != nil {
		t.Fatalf("failed to create indexer: %v", err)
	}
	defer indexer.Close()

	if err := indexer.IndexTools(testCatalog()); err != nil {
		t.Fatalf("failed to index tools: %v", err)
	}
	if err := indexer.RemoveTool("t1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	count, err := indexer.Count()
	if err != nil {
		t.Fatalf("failed to get count: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 tools after removal, got %d", count)
	}
}
