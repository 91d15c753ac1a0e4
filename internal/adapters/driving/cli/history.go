package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previous splits",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent splits, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one split and the files it wrote",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all recorded splits",
	Long:  `Remove every recorded split from history. Part files on disk are not touched.`,
	RunE:  runHistoryClear,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of runs (default from settings)")
	historyListCmd.Flags().BoolVar(&historyJSON, "json", false, "output runs as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputJSON(cmd, runs)
	}

	if len(runs) == 0 {
		cmd.Println("No splits recorded.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s  %-6s  %3d parts  %s\n",
			shortID(run.ID), run.StartedAt.Local().Format(time.DateTime), status(run), run.Parts, run.SourcePath)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no split with id %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get split: %w", err)
	}

	cmd.Printf("ID:       %s\n", run.ID)
	cmd.Printf("Source:   %s\n", run.SourcePath)
	cmd.Printf("Parts:    %d\n", run.Parts)
	cmd.Printf("Lines:    %d\n", run.TotalLines)
	cmd.Printf("Started:  %s\n", run.StartedAt.Local().Format(time.DateTime))
	cmd.Printf("Duration: %s\n", run.Duration().Round(time.Millisecond))
	cmd.Printf("Status:   %s\n", status(*run))
	if run.Error != "" {
		cmd.Printf("Error:    %s\n", run.Error)
	}
	if len(run.Outputs) > 0 {
		cmd.Println("Outputs:")
		for _, p := range run.Outputs {
			cmd.Printf("  %s\n", p)
		}
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func status(run domain.SplitRun) string {
	if run.Success {
		return "ok"
	}
	return "failed"
}
