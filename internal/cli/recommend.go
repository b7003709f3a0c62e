package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/scoring"
)

// NewRecommendCmd creates the 'recommend' command for ranked tool
// recommendations.
func NewRecommendCmd() *cobra.Command {
	var (
		limit      int
		offset     int
		userID     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <role>",
		Short: "Get ranked tool recommendations for a role",
		Long: `Score every eligible tool in the catalog against the given role and
print the ranked matches. Role names accept common synonyms
(e.g. "fe", "product owner").

With --user, results are personalized from that user's recent
interactions and their own recent pending submissions become eligible.`,
		Example: `  toolmatch recommend frontend
  toolmatch recommend "product owner" --limit 5
  toolmatch recommend backend --user user-42 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(cmd, args[0], limit, offset, userID, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum results per page (1-50)")
	cmd.Flags().IntVarP(&offset, "offset", "o", 0, "Pagination offset")
	cmd.Flags().StringVarP(&userID, "user", "u", "", "Personalize for this user ID")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runRecommend(cmd *cobra.Command, role string, limit, offset int, userID string, jsonOutput bool) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.service.GetRecommendationsForRole(cmd.Context(), role, limit, offset, userID)
	if err != nil {
		var invalidRole *scoring.InvalidRoleError
		if errors.As(err, &invalidRole) {
			fmt.Fprintln(os.Stderr, invalidRole.Error())
			if len(invalidRole.Suggestions) > 0 {
				fmt.Fprintf(os.Stderr, "Did you mean: %v?\n", invalidRole.Suggestions)
			}
			return fmt.Errorf("unknown role %q", role)
		}
		return err
	}

	if jsonOutput {
		return printJSON(result)
	}

	fmt.Printf("Recommendations for %s (%d of %d total):\n\n", result.Role, len(result.Items), result.TotalAvailable)

	for i, item := range result.Items {
		fmt.Printf("  %2d. %s  [%.2f]\n", offset+i+1, item.Tool.Name, item.Score)
		for _, reason := range item.Reasons {
			fmt.Printf("      - %s\n", reason)
		}
		if item.PersonalizationBoost > 0 {
			fmt.Printf("      personalization boost: %.2f\n", item.PersonalizationBoost)
		}
		fmt.Println()
	}

	if result.HasMore {
		fmt.Printf("More available: rerun with --offset %d\n", offset+limit)
	}

	return nil
}

// printJSON writes an indented JSON representation to stdout.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
