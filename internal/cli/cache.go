package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClearCacheCmd creates the 'clear-cache' command.
func NewClearCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear-cache",
		Short: "Invalidate all recommendation caches",
		Long: `Delete every cached recommendation entry. Use after bulk catalog
changes or weight-table edits to force recomputation.`,
		Example: `  toolmatch clear-cache`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClearCache(cmd)
		},
	}

	return cmd
}

func runClearCache(cmd *cobra.Command) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	app.service.ClearCaches(cmd.Context())
	fmt.Println("Recommendation caches cleared")
	return nil
}
