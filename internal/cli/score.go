package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

// NewScoreCmd creates the 'score' command for inspecting a single tool's
// score breakdown against a role.
func NewScoreCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "score <tool-id> <role>",
		Short: "Score a single tool against a role",
		Long: `Compute the relevance score of one catalog tool for a role and show
the keyword and category sub-scores. Useful when tuning weight tables.`,
		Example: `  toolmatch score tool-123 frontend
  toolmatch score tool-123 qa --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScore(cmd, args[0], args[1], jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runScore(cmd *cobra.Command, toolID, roleName string, jsonOutput bool) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	role, err := app.scorer.Config().ResolveRole(roleName)
	if err != nil {
		return err
	}

	tools, err := app.provider.ListTools(cmd.Context(), catalog.ToolFilter{})
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	var tool *catalog.Tool
	for i := range tools {
		if tools[i].ID == toolID {
			tool = &tools[i]
			break
		}
	}
	if tool == nil {
		return fmt.Errorf("tool %s: %w", toolID, catalog.ErrNotFound)
	}

	res, err := app.scorer.Score(*tool, role, nil)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}
	reasons := app.scorer.Reasons(*tool, role, res, nil)

	if jsonOutput {
		return printJSON(map[string]interface{}{
			"tool":          tool.ID,
			"name":          tool.Name,
			"role":          role,
			"score":         res.Score,
			"keywordScore":  res.KeywordScore,
			"categoryScore": res.CategoryScore,
			"reasons":       reasons,
		})
	}

	fmt.Printf("%s (%s) for %s\n\n", tool.Name, tool.ID, role)
	fmt.Printf("  Score:          %.2f\n", res.Score)
	fmt.Printf("  Keyword score:  %.3f\n", res.KeywordScore)
	fmt.Printf("  Category score: %.3f\n", res.CategoryScore)
	if res.Score == 0 {
		fmt.Println("  Below the match threshold; excluded from recommendations.")
	}
	if len(reasons) > 0 {
		fmt.Println("\n  Reasons:")
		for _, reason := range reasons {
			fmt.Printf("    - %s\n", reason)
		}
	}

	return nil
}
