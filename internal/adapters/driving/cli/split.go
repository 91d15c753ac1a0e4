package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

var (
	splitOutputDir string
	splitEncoding  string
	splitStrict    bool
	splitRollback  bool
	splitJSON      bool
	splitQuiet     bool
)

var splitCmd = &cobra.Command{
	Use:   "split <file> <parts>",
	Short: "Split a text file into parts",
	Long: `Split reads every line of <file> and writes them, in order, to <parts>
files named {name}_part1.txt .. {name}_part<parts>.txt.

Lines are distributed as evenly as possible: with 10 lines and 3 parts the
files get 4, 3 and 3 lines. Asking for more parts than there are lines
writes empty files for the extra parts unless --strict is given.

Existing part files are overwritten. If a part cannot be written, parts
already written are kept unless --rollback is given.

Exit codes:
  2  invalid part count
  3  file not found or not readable
  4  text could not be decoded or encoded
  5  a part could not be written`,
	Example: `  linesplit split notes.txt 3
  linesplit split data.txt 10 --output-dir ./parts
  linesplit split legacy.txt 4 --encoding windows-1252`,
	Args: cobra.ExactArgs(2),
	RunE: runSplit,
}

// negativeArg matches pflag's complaint about a token such as "-3".
var negativeArg = regexp.MustCompile(`in (-\d[\w.]*)$`)

func init() {
	splitCmd.SetFlagErrorFunc(partsFlagError)
	addSplitFlags(splitCmd)
	splitCmd.Flags().BoolVar(&splitStrict, "strict", false, "fail if parts exceeds the number of lines")
	splitCmd.Flags().BoolVar(&splitRollback, "rollback", false, "remove written parts if a later part fails")
	splitCmd.Flags().BoolVarP(&splitQuiet, "quiet", "q", false, "do not print progress")
	rootCmd.AddCommand(splitCmd)
}

// addSplitFlags registers the flags shared by split and plan.
func addSplitFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&splitOutputDir, "output-dir", "o", "", "directory for part files (default: next to the source)")
	cmd.Flags().StringVarP(&splitEncoding, "encoding", "e", "", "source text encoding, or auto to detect it (default from settings, utf-8)")
	cmd.Flags().BoolVar(&splitJSON, "json", false, "output the result as JSON")
}

// partsFlagError reports a negative part count, which pflag reads as a
// shorthand flag, as an invalid part count.
func partsFlagError(_ *cobra.Command, err error) error {
	if m := negativeArg.FindStringSubmatch(err.Error()); m != nil {
		_, perr := domain.ParsePartCount(m[1])
		if perr != nil {
			return perr
		}
	}
	return err
}

func runSplit(cmd *cobra.Command, args []string) error {
	if splitService == nil {
		return errors.New("split service not configured")
	}

	parts, err := domain.ParsePartCount(args[1])
	if err != nil {
		return err
	}

	req := domain.SplitRequest{
		Path:        args[0],
		Parts:       parts,
		OutputDir:   splitOutputDir,
		Encoding:    splitEncoding,
		StrictParts: splitStrict,
		Rollback:    splitRollback,
	}

	renderer := newProgressRenderer(cmd.OutOrStdout(), splitQuiet || splitJSON)
	result, err := splitService.Split(cmd.Context(), req, renderer.Update)
	renderer.Done()
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	if splitJSON {
		return outputJSON(cmd, result)
	}

	cmd.Printf("Split %s (%d lines) into %d parts in %s\n",
		filepath.Base(result.SourcePath), result.TotalLines, len(result.Outputs), result.Duration)
	for _, out := range result.Outputs {
		cmd.Printf("  %s  (%d lines)\n", out.Path, out.Lines())
	}
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
