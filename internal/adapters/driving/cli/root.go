// Package cli provides the cobra command tree for linesplit.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/core/domain"
	"github.com/custodia-labs/linesplit/internal/core/ports/driving"
	"github.com/custodia-labs/linesplit/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Exit codes returned by the linesplit binary.
const (
	ExitOK               = 0
	ExitError            = 1
	ExitInvalidPartCount = 2
	ExitFileNotFound     = 3
	ExitEncoding         = 4
	ExitWrite            = 5
)

// Options carries the global flags to the service factory.
type Options struct {
	ConfigDir string
	NoHistory bool
	Verbose   bool
}

// ServiceFactory builds and registers services once global flags are parsed.
// The returned cleanup runs after the command finishes.
type ServiceFactory func(opts Options) (cleanup func(), err error)

var (
	splitService    driving.SplitService
	settingsService driving.SettingsService
	historyService  driving.HistoryService

	serviceFactory ServiceFactory
	serviceCleanup func()

	globalOpts Options
)

var rootCmd = &cobra.Command{
	Use:   "linesplit",
	Short: "Split text files into evenly sized parts",
	Long: `linesplit divides a text file's lines into N contiguous parts and writes
each part to {name}_part{i}.txt next to the source (or in --output-dir).

When the line count does not divide evenly, the first parts get one extra
line each, so part sizes never differ by more than one.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: bootstrap,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&globalOpts.Verbose, "verbose", "v", false, "print debug output to stderr")
	flags.StringVar(&globalOpts.ConfigDir, "config-dir", "", "configuration directory (default ~/.linesplit)")
	flags.BoolVar(&globalOpts.NoHistory, "no-history", false, "do not read or record split history on disk")
}

// SetSplitService sets the split service for CLI commands.
func SetSplitService(s driving.SplitService) {
	splitService = s
}

// SetSettingsService sets the settings service for CLI commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetHistoryService sets the history service for CLI commands.
func SetHistoryService(s driving.HistoryService) {
	historyService = s
}

// SetServiceFactory registers the function that wires services.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command and releases any wired resources.
func Execute() error {
	defer func() {
		if serviceCleanup != nil {
			serviceCleanup()
			serviceCleanup = nil
		}
	}()
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInvalidPartCount):
		return ExitInvalidPartCount
	case errors.Is(err, domain.ErrFileNotFound):
		return ExitFileNotFound
	case errors.Is(err, domain.ErrEncoding):
		return ExitEncoding
	case errors.Is(err, domain.ErrWrite):
		return ExitWrite
	default:
		return ExitError
	}
}

func bootstrap(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(globalOpts.Verbose)

	if serviceFactory == nil {
		return nil
	}
	cleanup, err := serviceFactory(globalOpts)
	if err != nil {
		return err
	}
	serviceCleanup = cleanup
	return nil
}
