package cli

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/watch"
	"github.com/custodia-labs/linesplit/internal/core/domain"
)

var (
	watchExts      []string
	watchOutputDir string
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir> <parts>",
	Short: "Split text files as they are added to a directory",
	Long: `Watch <dir> and split every text file created or modified in it into
<parts> parts. Files are split once they have been quiet for half a
second, one at a time. Split outputs ({name}_partN.txt) and hidden files
are ignored, so parts written next to their source do not trigger new
splits.

Runs until interrupted.`,
	Example: `  linesplit watch ./inbox 4
  linesplit watch ./inbox 4 --ext .txt,.log -o ./parts`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	watchCmd.SetFlagErrorFunc(partsFlagError)
	watchCmd.Flags().StringSliceVar(&watchExts, "ext", []string{".txt"},
		`file extensions to split ("*" for any)`)
	watchCmd.Flags().StringVarP(&watchOutputDir, "output-dir", "o", "", "directory for part files (default: next to the source)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if splitService == nil {
		return errors.New("split service not configured")
	}

	parts, err := domain.ParsePartCount(args[1])
	if err != nil {
		return err
	}

	dir, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	w, err := watch.New(splitService, dir, watch.Options{
		Parts:      parts,
		Extensions: watchExts,
		OutputDir:  watchOutputDir,
		OnResult: func(r watch.Result) {
			if r.Err != nil {
				cmd.PrintErrf("%s: %v\n", r.Path, r.Err)
				return
			}
			cmd.Printf("Split %s into %d parts\n", filepath.Base(r.Path), len(r.Result.Outputs))
		},
	})
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s (ctrl+c to stop)\n", dir)
	return w.Run(ctx)
}
