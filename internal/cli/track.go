package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

// NewTrackCmd creates the 'track' command for recording an interaction
// event.
func NewTrackCmd() *cobra.Command {
	var (
		role   string
		source string
		rating int
	)

	cmd := &cobra.Command{
		Use:   "track <user-id> <tool-id> <type>",
		Short: "Record a user interaction with a tool",
		Long: `Record an interaction event. Valid types: viewed, clicked, added,
suggested_by_ai, favorited, rated.

Qualifying events (added, suggested_by_ai, favorited) invalidate the
recommendation caches so fresh signals show up immediately.`,
		Example: `  toolmatch track user-42 tool-123 added --role frontend
  toolmatch track user-42 tool-123 rated --role qa --rating 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrack(cmd, args[0], args[1], args[2], role, source, rating)
		},
	}

	cmd.Flags().StringVarP(&role, "role", "r", "", "Role of the interacting user")
	cmd.Flags().StringVarP(&source, "source", "s", "cli", "Event source")
	cmd.Flags().IntVar(&rating, "rating", 0, "Rating value (rated events only)")

	return cmd
}

func runTrack(cmd *cobra.Command, userID, toolID, eventType, role, source string, rating int) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	interactionType := catalog.InteractionType(eventType)
	if !interactionType.Valid() {
		return fmt.Errorf("invalid interaction type %q", eventType)
	}

	if role != "" {
		canonical, err := app.scorer.Config().ResolveRole(role)
		if err != nil {
			return err
		}
		role = canonical
	}

	tracker := catalog.NewTracker(app.provider, app.service, app.logger)
	tracker.Track(catalog.Interaction{
		UserID:   userID,
		ToolID:   toolID,
		UserRole: role,
		Type:     interactionType,
		Source:   source,
		Rating:   rating,
	})
	tracker.Stop()

	fmt.Printf("Recorded %s event for tool %s by %s\n", eventType, toolID, userID)
	return nil
}
