package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewRecentCmd creates the 'recent' command showing tools recently added by
// users of a role.
func NewRecentCmd() *cobra.Command {
	var (
		days       int
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "recent <role>",
		Short: "Show tools recently added by users of a role",
		Example: `  toolmatch recent qa
  toolmatch recent frontend --days 14 --limit 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecent(cmd, args[0], days, limit, jsonOutput)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Look-back window in days")
	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "Maximum results (1-50)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runRecent(cmd *cobra.Command, role string, days, limit int, jsonOutput bool) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	recent, err := app.service.GetRecentlyAddedTools(cmd.Context(), role, days, limit)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(recent)
	}

	if len(recent) == 0 {
		fmt.Printf("No tools added by %s users in the last %d days.\n", role, days)
		return nil
	}

	fmt.Printf("Recently added by %s users (last %d days):\n\n", role, days)
	for _, item := range recent {
		fmt.Printf("  %s  added by %s on %s\n", item.Tool.Name, item.UserID, item.AddedAt.Format(time.DateOnly))
	}

	return nil
}
