/*
Package search implements full-text search over the tool catalog.

The index is Bleve-backed (scorch), either in-memory for fast startup or
persisted on disk. Documents are flattened catalog tools; categories and the
suggested role are indexed alongside name and description so role-flavored
queries ("frontend testing") rank sensibly.
*/
package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/index/scorch"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

// Indexer manages the full-text index over catalog tools.
type Indexer struct {
	bleveIndex bleve.Index
	mu         sync.RWMutex
	indexPath  string
}

// NewIndexer creates an indexer with an in-memory Bleve index.
func NewIndexer() (*Indexer, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	return &Indexer{bleveIndex: index}, nil
}

// NewIndexerWithPath creates an indexer with persistent disk storage,
// opening the existing index at indexPath when one exists.
func NewIndexerWithPath(indexPath string) (*Indexer, error) {
	if err := os.MkdirAll(filepath.Dir(indexPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	index, err := bleve.NewUsing(indexPath, buildIndexMapping(), scorch.Name, scorch.Name, nil)
	if err != nil {
		index, err = bleve.Open(indexPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open/create index: %w", err)
		}
	}

	return &Indexer{bleveIndex: index, indexPath: indexPath}, nil
}

// buildIndexMapping creates the Bleve index mapping for tool documents.
func buildIndexMapping() mapping.IndexMapping {
	toolMapping := bleve.NewDocumentMapping()

	toolMapping.AddFieldMappingsAt("name", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("description", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("detailed_description", bleve.NewTextFieldMapping())
	toolMapping.AddFieldMappingsAt("categories", bleve.NewTextFieldMapping())

	// Exact-match filter fields, not analyzed into the catch-all.
	suggestedRoleMapping := bleve.NewKeywordFieldMapping()
	suggestedRoleMapping.IncludeInAll = false
	toolMapping.AddFieldMappingsAt("suggested_role", suggestedRoleMapping)

	statusMapping := bleve.NewKeywordFieldMapping()
	statusMapping.IncludeInAll = false
	toolMapping.AddFieldMappingsAt("status", statusMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("_default", toolMapping)

	return indexMapping
}

// IndexTools (re)indexes a batch of tools, keyed by tool ID.
func (i *Indexer) IndexTools(tools []catalog.Tool) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	batch := i.bleveIndex.NewBatch()

	for _, tool := range tools {
		doc := map[string]interface{}{
			"name":                 tool.Name,
			"description":          tool.Description,
			"detailed_description": tool.DetailedDescription,
			"categories":           strings.Join(tool.Categories, " "),
			"suggested_role":       tool.SuggestedRole,
			"status":               string(tool.Status),
		}

		if err := batch.Index(tool.ID, doc); err != nil {
			return fmt.Errorf("failed to index tool %s: %w", tool.ID, err)
		}
	}

	if err := i.bleveIndex.Batch(batch); err != nil {
		return fmt.Errorf("failed to batch index tools: %w", err)
	}

	return nil
}

// RemoveTool deletes a tool from the index.
func (i *Indexer) RemoveTool(toolID string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.bleveIndex.Delete(toolID); err != nil {
		return fmt.Errorf("failed to delete tool %s: %w", toolID, err)
	}
	return nil
}

// Count returns the total number of indexed tools.
func (i *Indexer) Count() (uint64, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docCount, err := i.bleveIndex.DocCount()
	if err != nil {
		return 0, fmt.Errorf("failed to get doc count: %w", err)
	}

	return docCount, nil
}

// Close closes the index and releases resources.
func (i *Indexer) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.bleveIndex != nil {
		return i.bleveIndex.Close()
	}

	return nil
}
