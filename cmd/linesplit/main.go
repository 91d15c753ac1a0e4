// Command linesplit splits text files into evenly sized parts.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/linesplit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/linesplit/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/linesplit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/linesplit/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/linesplit/internal/adapters/driving/cli"
	"github.com/custodia-labs/linesplit/internal/core/ports/driven"
	"github.com/custodia-labs/linesplit/internal/core/services"
	"github.com/custodia-labs/linesplit/internal/logger"
)

func main() {
	cli.SetServiceFactory(wire)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCode(err))
	}
}

// wire builds the services for one invocation.
// Config and history fall back to memory when their files cannot be opened.
func wire(opts cli.Options) (func(), error) {
	var configStore driven.ConfigStore
	fileStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		logger.Warn("config unavailable, using defaults: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileStore
	}
	settingsService := services.NewSettingsService(configStore)

	cleanup := func() {}
	var historyStore driven.HistoryStore = memory.NewHistoryStore()
	if !opts.NoHistory {
		dataDir := ""
		if opts.ConfigDir != "" {
			dataDir = filepath.Join(opts.ConfigDir, "data")
		}
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			logger.Warn("history unavailable, keeping it in memory: %v", err)
		} else {
			logger.Debug("History database: %s", store.Path())
			historyStore = store.HistoryStore()
			cleanup = func() {
				if err := store.Close(); err != nil {
					logger.Warn("closing history: %v", err)
				}
			}
		}
	}

	cli.SetSettingsService(settingsService)
	cli.SetSplitService(services.NewSplitService(
		filesystem.NewReader(),
		filesystem.NewWriter(nil),
		settingsService,
		historyStore,
	))
	cli.SetHistoryService(services.NewHistoryService(historyStore, settingsService))

	return cleanup, nil
}
