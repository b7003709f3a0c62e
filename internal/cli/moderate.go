package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

// NewModerateCmd creates the 'moderate' command for tool status
// transitions.
func NewModerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moderate <tool-id> <status>",
		Short: "Transition a tool's moderation status",
		Long: `Set a tool's status to pending, active or archived. Activating a tool
invalidates the recommendation caches so it becomes recommendable
immediately.`,
		Example: `  toolmatch moderate tool-123 active
  toolmatch moderate tool-123 archived`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModerate(cmd, args[0], args[1])
		},
	}

	return cmd
}

func runModerate(cmd *cobra.Command, toolID, statusName string) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	status := catalog.ToolStatus(statusName)
	switch status {
	case catalog.StatusPending, catalog.StatusActive, catalog.StatusArchived:
	default:
		return fmt.Errorf("invalid status %q (want pending, active or archived)", statusName)
	}

	if err := app.provider.SetToolStatus(cmd.Context(), toolID, status); err != nil {
		return err
	}

	if status == catalog.StatusActive {
		app.service.ClearCaches(cmd.Context())
	}

	fmt.Printf("Tool %s is now %s\n", toolID, status)
	return nil
}
