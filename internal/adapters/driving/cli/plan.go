package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

var planCmd = &cobra.Command{
	Use:   "plan <file> <parts>",
	Short: "Show how a file would be split without writing anything",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlan,
}

func init() {
	planCmd.SetFlagErrorFunc(partsFlagError)
	addSplitFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	if splitService == nil {
		return errors.New("split service not configured")
	}

	parts, err := domain.ParsePartCount(args[1])
	if err != nil {
		return err
	}

	plan, err := splitService.Plan(cmd.Context(), domain.SplitRequest{
		Path:      args[0],
		Parts:     parts,
		OutputDir: splitOutputDir,
		Encoding:  splitEncoding,
	})
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	if splitJSON {
		return outputJSON(cmd, plan)
	}

	cmd.Printf("Source:   %s\n", plan.SourcePath)
	cmd.Printf("Lines:    %d (%s)\n", plan.TotalLines, plan.Encoding)
	cmd.Printf("Output:   %s\n", plan.OutputDir)
	cmd.Println()
	for _, out := range plan.Outputs {
		cmd.Printf("  Part %-3d %-14s %s\n", out.Index+1, lineRange(out), out.Path)
	}
	return nil
}

// lineRange renders the 1-based inclusive line range of a part.
func lineRange(out domain.OutputFile) string {
	switch out.Lines() {
	case 0:
		return "(empty)"
	case 1:
		return fmt.Sprintf("line %d", out.Start+1)
	default:
		return fmt.Sprintf("lines %d-%d", out.Start+1, out.End)
	}
}
