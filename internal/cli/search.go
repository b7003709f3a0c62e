package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/catalog"
	"github.com/khanglvm/toolmatch/internal/search"
)

// NewSearchCmd creates the 'search' command for full-text catalog search.
func NewSearchCmd() *cobra.Command {
	var (
		role       string
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Full-text search over the tool catalog",
		Long: `Build an in-memory index over active catalog tools and run a BM25
match query against names, descriptions and categories.`,
		Example: `  toolmatch search "regression testing"
  toolmatch search prototype --role designer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], role, limit, jsonOutput)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Restrict to tools suggested for this role")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum results")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runSearch(cmd *cobra.Command, query, role string, limit int, jsonOutput bool) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	tools, err := app.provider.ListTools(cmd.Context(), catalog.ToolFilter{
		Statuses: []catalog.ToolStatus{catalog.StatusActive},
	})
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	indexer, err := search.NewIndexer()
	if err != nil {
		return err
	}
	defer indexer.Close()

	if err := indexer.IndexTools(tools); err != nil {
		return err
	}

	var results []search.Result
	if role != "" {
		canonical, err := app.scorer.Config().ResolveRole(role)
		if err != nil {
			return err
		}
		results, err = indexer.SearchByRole(query, canonical, limit)
		if err != nil {
			return err
		}
	} else {
		results, err = indexer.Search(query, limit)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return printJSON(results)
	}

	if len(results) == 0 {
		fmt.Println("No matching tools.")
		return nil
	}

	fmt.Printf("Search results for %q (%d):\n\n", query, len(results))
	for _, hit := range results {
		fmt.Printf("  %s  [%.3f]\n", hit.Name, hit.Score)
		fmt.Printf("    %s\n", hit.Description)
		if hit.SuggestedRole != "" {
			fmt.Printf("    suggested for: %s\n", hit.SuggestedRole)
		}
		fmt.Println()
	}

	return nil
}
