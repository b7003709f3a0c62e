package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// NewRolesCmd creates the 'roles' command listing roles and synonyms.
func NewRolesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"ls-roles"},
		Short:   "List supported roles and their synonyms",
		Example: `  toolmatch roles
  toolmatch roles --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")

	return cmd
}

func runRoles(cmd *cobra.Command, jsonOutput bool) error {
	app, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	cfg := app.scorer.Config()
	roles := cfg.Roles()

	synonymsByRole := make(map[string][]string)
	for alias, role := range cfg.Synonyms {
		synonymsByRole[role] = append(synonymsByRole[role], alias)
	}
	for _, aliases := range synonymsByRole {
		sort.Strings(aliases)
	}

	if jsonOutput {
		return printJSON(map[string]interface{}{
			"roles":    roles,
			"synonyms": synonymsByRole,
		})
	}

	fmt.Printf("Supported roles (%d):\n\n", len(roles))
	for _, role := range roles {
		fmt.Printf("  %s\n", role)
		if aliases := synonymsByRole[role]; len(aliases) > 0 {
			fmt.Printf("    aliases: %v\n", aliases)
		}
	}

	return nil
}
