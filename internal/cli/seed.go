package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/catalog"
)

// NewSeedCmd creates the 'seed' command loading demo catalog data.
func NewSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a demo catalog of tools and interactions",
		Long: `Insert a small demo catalog so the recommend, score and search
commands have something to work with. Existing tools with the same IDs
are replaced.`,
		Example: `  toolmatch seed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd)
		},
	}

	return cmd
}

func runSeed(cmd *cobra.Command) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cmd.Context()
	now := time.Now()

	for _, tool := range demoTools(now) {
		if err := app.provider.UpsertTool(ctx, tool); err != nil {
			return fmt.Errorf("failed to seed tool %s: %w", tool.ID, err)
		}
	}

	for _, ev := range demoInteractions(now) {
		if err := app.provider.RecordInteraction(ctx, ev); err != nil {
			return fmt.Errorf("failed to seed interaction: %w", err)
		}
	}

	app.service.ClearCaches(ctx)

	fmt.Printf("Seeded %d tools and %d interactions\n", len(demoTools(now)), len(demoInteractions(now)))
	return nil
}

func demoTools(now time.Time) []catalog.Tool {
	return []catalog.Tool{
		{
			ID:                  "tool-figma-ai",
			Name:                "Figma AI",
			Description:         "AI-assisted design and prototype generation inside Figma",
			DetailedDescription: "Generates UI mockups, wireframes and visual variants from text prompts. Integrates with existing Figma design systems and supports brand palette constraints for consistent illustration output.",
			Categories:          []string{"Design"},
			Status:              catalog.StatusActive,
			SuggestedRole:       "designer",
			WebsiteURL:          "https://figma.com",
			APIEndpoint:         "https://api.figma.com/v1",
			CreatedAt:           now.Add(-90 * 24 * time.Hour),
		},
		{
			ID:                  "tool-copilot",
			Name:                "GitHub Copilot",
			Description:         "AI pair programmer for code generation and API scaffolding",
			DetailedDescription: "Suggests whole functions and tests as you type. Strong on backend API handlers, database access layers and infrastructure-as-code. Works in most editors with server-side completion.",
			Categories:          []string{"Code Generation"},
			Status:              catalog.StatusActive,
			SuggestedRole:       "backend",
			WebsiteURL:          "https://github.com/features/copilot",
			APIEndpoint:         "https://api.github.com",
			CreatedAt:           now.Add(-200 * 24 * time.Hour),
		},
		{
			ID:                  "tool-testpilot",
			Name:                "TestPilot",
			Description:         "Automated regression testing and coverage analysis",
			DetailedDescription: "Generates regression test suites from recorded sessions, tracks coverage over time and flags flaky tests. Integrates with CI for automated quality gates on every build.",
			Categories:          []string{"Testing"},
			Status:              catalog.StatusActive,
			SuggestedRole:       "qa",
			WebsiteURL:          "https://example.com/testpilot",
			CreatedAt:           now.Add(-30 * 24 * time.Hour),
		},
		{
			ID:                  "tool-roadmapper",
			Name:                "Roadmapper",
			Description:         "Roadmap planning and sprint backlog tracking",
			DetailedDescription: "Turns stakeholder requirements into prioritized backlogs, tracks sprint progress and produces roadmap views for planning reviews. Syncs with issue trackers both ways.",
			Categories:          []string{"Project Management", "Productivity"},
			Status:              catalog.StatusActive,
			SuggestedRole:       "pm",
			WebsiteURL:          "https://example.com/roadmapper",
			CreatedAt:           now.Add(-60 * 24 * time.Hour),
		},
		{
			ID:                  "tool-metrics-hub",
			Name:                "Metrics Hub",
			Description:         "Analytics dashboard for growth and revenue metrics",
			DetailedDescription: "Aggregates product analytics, revenue and market data into a single dashboard. Supports custom growth metrics, cohort analysis and exportable strategy reports for leadership reviews.",
			Categories:          []string{"Analytics"},
			Status:              catalog.StatusActive,
			SuggestedRole:       "owner",
			WebsiteURL:          "https://example.com/metrics-hub",
			APIEndpoint:         "https://api.example.com/metrics",
			CreatedAt:           now.Add(-45 * 24 * time.Hour),
		},
		{
			ID:            "tool-pending-proto",
			Name:          "ProtoSketch",
			Description:   "Quick UI prototype sketching",
			Categories:    []string{"Design"},
			Status:        catalog.StatusPending,
			SuggestedRole: "frontend",
			SubmittedBy:   "user-demo",
			CreatedAt:     now.Add(-2 * 24 * time.Hour),
		},
	}
}

func demoInteractions(now time.Time) []catalog.Interaction {
	return []catalog.Interaction{
		{UserID: "user-demo", ToolID: "tool-copilot", UserRole: "frontend", Type: catalog.InteractionAdded, Source: "seed", OccurredAt: now.Add(-3 * 24 * time.Hour)},
		{UserID: "user-demo", ToolID: "tool-figma-ai", UserRole: "frontend", Type: catalog.InteractionFavorited, Source: "seed", OccurredAt: now.Add(-5 * 24 * time.Hour)},
		{UserID: "user-demo", ToolID: "tool-testpilot", UserRole: "frontend", Type: catalog.InteractionViewed, Source: "seed", OccurredAt: now.Add(-1 * 24 * time.Hour)},
		{UserID: "user-a", ToolID: "tool-copilot", UserRole: "backend", Type: catalog.InteractionAdded, Source: "seed", OccurredAt: now.Add(-2 * 24 * time.Hour)},
		{UserID: "user-b", ToolID: "tool-copilot", UserRole: "backend", Type: catalog.InteractionAdded, Source: "seed", OccurredAt: now.Add(-4 * 24 * time.Hour)},
		{UserID: "user-c", ToolID: "tool-copilot", UserRole: "backend", Type: catalog.InteractionAdded, Source: "seed", OccurredAt: now.Add(-6 * 24 * time.Hour)},
	}
}
