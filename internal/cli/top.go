package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTopCmd creates the 'top' command showing the top recommendations for
// every role at once.
func NewTopCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show top recommendations for every role",
		Long: `Compute the anonymous top recommendations for each supported role.
Used by landing pages and discovery overviews.`,
		Example: `  toolmatch top
  toolmatch top --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runTop(cmd *cobra.Command, jsonOutput bool) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	all, err := app.service.GetAllRoleRecommendations(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(all)
	}

	for _, role := range app.scorer.Config().Roles() {
		result, ok := all[role]
		if !ok {
			continue
		}
		fmt.Printf("%s:\n", role)
		if len(result.Items) == 0 {
			fmt.Println("  (no matches)")
		}
		for _, item := range result.Items {
			fmt.Printf("  %-30s %.2f\n", item.Tool.Name, item.Score)
		}
		fmt.Println()
	}

	return nil
}
