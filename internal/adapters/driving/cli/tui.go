package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/adapters/driving/tui"
)

var tuiDir string

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI.

Pick a file, type the number of parts and press enter. A progress bar
tracks the parts as they are written and the resulting files are listed
when the split completes. Given a file argument, the UI skips the picker.

Controls:
  ↑/k, ↓/j   Navigate
  enter      Select / Split
  n          Split another file
  esc        Back
  ctrl+c     Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiDir, "dir", "d", "", "directory the file picker opens in (default: current directory)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if splitService == nil {
		return errors.New("split service not configured")
	}

	app, err := tui.NewApp(&tui.Ports{
		Split:   splitService,
		History: historyService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if tuiDir != "" {
		app.WithStartDir(tuiDir)
	}
	if len(args) == 1 {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving %s: %w", args[0], err)
		}
		app.WithFile(path)
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
