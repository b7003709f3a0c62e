package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khanglvm/toolmatch/internal/benchmark"
	"github.com/khanglvm/toolmatch/internal/cache"
	"github.com/khanglvm/toolmatch/internal/config"
)

// NewBenchCmd creates the 'bench' command measuring scoring throughput and
// cache latency.
func NewBenchCmd() *cobra.Command {
	var (
		toolCount  int
		iterations int
		entries    int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark scoring throughput and cache latency",
		Long: `Run the scoring model over a synthetic catalog and measure sustained
throughput, then measure cache round-trip latency on an in-memory store.`,
		Example: `  toolmatch bench
  toolmatch bench --tools 1000 --iterations 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, toolCount, iterations, entries)
		},
	}

	cmd.Flags().IntVar(&toolCount, "tools", 500, "Synthetic catalog size")
	cmd.Flags().IntVar(&iterations, "iterations", 5, "Scoring passes over the catalog")
	cmd.Flags().IntVar(&entries, "entries", 10000, "Cache entries for the latency test")

	return cmd
}

func runBench(cmd *cobra.Command, toolCount, iterations, entries int) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tables, err := config.LoadScoringTables(cfg.Scoring.TablesPath)
	if err != nil {
		return err
	}

	scoringResult, err := benchmark.RunScoring(tables, toolCount, iterations)
	if err != nil {
		return err
	}
	fmt.Println(benchmark.FormatScoringResult(scoringResult))

	store := cache.NewMemoryStore()
	defer store.Close()

	cacheResult, err := benchmark.RunCache(cmd.Context(), store, entries)
	if err != nil {
		return err
	}
	fmt.Println(benchmark.FormatCacheResult(cacheResult))

	return nil
}
