package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"
)

// Result is a single search hit.
type Result struct {
	ToolID        string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	SuggestedRole string  `json:"suggested_role"`
	Score         float64 `json:"score"`
}

var hitFields = []string{"name", "description", "suggested_role"}

// Search runs a BM25 match query over the catalog index.
func (i *Indexer) Search(query string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	request := bleve.NewSearchRequestOptions(matchQuery, limit, 0, false)
	request.Fields = hitFields

	results, err := i.bleveIndex.Search(request)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// SearchByRole runs a match query restricted to tools suggested for a role.
func (i *Indexer) SearchByRole(query, role string, limit int) ([]Result, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	roleQuery := bleve.NewTermQuery(role)
	roleQuery.SetField("suggested_role")

	request := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(matchQuery, roleQuery), limit, 0, false)
	request.Fields = hitFields

	results, err := i.bleveIndex.Search(request)
	if err != nil {
		return nil, fmt.Errorf("bleve search failed: %w", err)
	}

	return convertBleveResults(results), nil
}

// convertBleveResults converts Bleve hits to our Result format.
func convertBleveResults(results *bleve.SearchResult) []Result {
	converted := make([]Result, 0, len(results.Hits))

	for _, hit := range results.Hits {
		name, _ := hit.Fields["name"].(string)
		description, _ := hit.Fields["description"].(string)
		suggestedRole, _ := hit.Fields["suggested_role"].(string)

		converted = append(converted, Result{
			ToolID:        hit.ID,
			Name:          name,
			Description:   description,
			SuggestedRole: suggestedRole,
			Score:         hit.Score,
		})
	}

	return converted
}
