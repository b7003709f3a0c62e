/*
Package main is the entry point for the toolmatch CLI.

toolmatch is a role-aware recommendation engine for an AI-tool catalog.
It scores every tool against a user's role using keyword, category,
suggested-role, quality and personalization signals, and serves ranked,
cached recommendation pages.

Usage:
  toolmatch [command]

Available Commands:
  recommend   Get ranked tool recommendations for a role
  top         Show top recommendations for every role
  score       Score a single tool against a role
  roles       List supported roles and their synonyms
  recent      Show tools recently added by users of a role
  search      Full-text search over the tool catalog
  track       Record a user interaction with a tool
  moderate    Transition a tool's moderation status
  seed        Load a demo catalog
  clear-cache Invalidate all recommendation caches
  bench       Benchmark scoring throughput and cache latency
  version     Show version information

Examples:
  # Load the demo catalog and get frontend recommendations
  toolmatch seed
  toolmatch recommend frontend

  # Personalized recommendations
  toolmatch recommend backend --user user-42
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/cli"
	"github.com/khanglvm/toolmatch/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "toolmatch",
		Short: "Role-aware tool recommendations for AI-tool catalogs",
		Long: `toolmatch ranks AI tools for a user's role (frontend, backend, qa,
designer, pm, owner) using a weighted scoring model over keyword,
category, suggested-role, quality and personalization signals.

Scores live on a 0-100 scale; tools scoring below the match threshold
are excluded entirely, favoring precision over recall.`,
		Version: version.GetVersion(),
	}

	rootCmd.PersistentFlags().String("config", "", "Config file path (default: toolmatch.yaml)")

	rootCmd.AddCommand(cli.NewRecommendCmd())
	rootCmd.AddCommand(cli.NewTopCmd())
	rootCmd.AddCommand(cli.NewScoreCmd())
	rootCmd.AddCommand(cli.NewRolesCmd())
	rootCmd.AddCommand(cli.NewRecentCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewTrackCmd())
	rootCmd.AddCommand(cli.NewModerateCmd())
	rootCmd.AddCommand(cli.NewSeedCmd())
	rootCmd.AddCommand(cli.NewClearCacheCmd())
	rootCmd.AddCommand(cli.NewBenchCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
