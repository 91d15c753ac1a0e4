package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change how linesplit splits files.

Settings live in ~/.linesplit/config.toml (or --config-dir). Flags on the
split command override them for a single run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  split.output_dir     directory for parts ("" = next to the source)
  split.encoding       source and part encoding, e.g. utf-8, windows-1252, auto
  split.line_ending    native, lf or crlf
  split.strict_parts   true to reject more parts than lines
  split.rollback       true to remove written parts when a split fails
  history.enabled      true to record splits
  history.limit        runs shown by 'history list'`,
	Example: `  linesplit settings set split.line_ending lf
  linesplit settings set split.output_dir ""`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Split]")
	outputDir := settings.Split.OutputDir
	if outputDir == "" {
		outputDir = "(next to the source file)"
	}
	cmd.Printf("  Output dir:   %s\n", outputDir)
	cmd.Printf("  Encoding:     %s\n", settings.Split.Encoding)
	cmd.Printf("  Line ending:  %s\n", settings.Split.LineEnding.Description())
	cmd.Printf("  Strict parts: %s\n", yesNo(settings.Split.StrictParts))
	cmd.Printf("  Rollback:     %s\n", yesNo(settings.Split.Rollback))
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.History.Enabled))
	cmd.Printf("  Limit:   %d\n", settings.History.Limit)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.ConfigPath())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrUnknownSetting) {
			return fmt.Errorf("%w (known keys: %v)", err, settingsService.Keys())
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %q\n", key, value)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
