package main

import (
	"fmt"
	"log/slog"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/lightpath-sim/lightpath/internal/config"
	"github.com/lightpath-sim/lightpath/internal/env"
	"github.com/lightpath-sim/lightpath/internal/envvar"
	"github.com/lightpath-sim/lightpath/internal/library"
	"github.com/lightpath-sim/lightpath/internal/logger"
	"github.com/lightpath-sim/lightpath/internal/xfs"
	"github.com/lightpath-sim/lightpath/model"
)

var (
	flagLibraryPath string
	flagSchemaPath  string
)

var rootCmd = &cobra.Command{
	Use:   "lightpath",
	Short: "Component model registry for s-parameter simulation",
	Long: `lightpath manages a library of photonic component models and the
process-wide registry their names live in. Validate a library file, list the
models it registers, or watch it and keep the registry in sync.`,
	SilenceUsage: true,
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a model library file against the library schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate(libraryPath(), flagSchemaPath)
		if err != nil {
			return err
		}

		fmt.Printf("%s: ok (%d models)\n", libraryPath(), len(cfg.Models))
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the models a library file registers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate(libraryPath(), flagSchemaPath)
		if err != nil {
			return err
		}

		// Scratch registry so a listing never touches the default namespace.
		manager := library.NewManager(model.NewRegistry())
		if err := manager.LoadFromConfig(cfg); err != nil {
			return err
		}

		for _, m := range manager.Registry().List() {
			points := 0
			if m.Cachable() {
				sp, err := m.GetSParameters(nil)
				if err != nil {
					return err
				}
				points = sp.Points()
			}

			fmt.Printf("%-24s cachable=%-5t points=%d\n", m.ComponentType(), m.Cachable(), points)
		}

		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a library file and keep the registry in sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		environment := env.FromEnv()

		slog.SetDefault(
			logger.New(environment,
				logger.WithLogToFile(true),
				logger.WithLogFile("logs/lightpath.log"),
			),
		)

		manager := library.NewManager(model.Default)

		watcher, err := config.NewWatcher(libraryPath(), flagSchemaPath, func(cfg *config.Config, err error) {
			if err != nil {
				slog.Error("Failed to reload library", "error", err)
				return
			}

			if err := manager.LoadFromConfig(cfg); err != nil {
				slog.Error("Failed to load models from library", "error", err)
				return
			}
		})
		if err != nil {
			return err
		}

		if err := manager.LoadFromConfig(watcher.Snapshot()); err != nil {
			return err
		}

		slog.Info("Library loaded successfully", "library", libraryPath(), "schema", flagSchemaPath)

		select {}
	},
}

// libraryPath resolves the library file: the flag wins, then
// LIGHTPATH_LIBRARY_PATH, then the default location.
func libraryPath() string {
	if flagLibraryPath != "" {
		return xfs.ExpandTilde(flagLibraryPath)
	}
	if p := os.Getenv(envvar.LightpathLibraryPath); p != "" {
		return xfs.ExpandTilde(p)
	}

	return path.Join(config.DefaultConfigPath(), "library.yaml")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLibraryPath, "library", "l", "",
		"path to model library file (default: <config dir>/library.yaml)")
	rootCmd.PersistentFlags().StringVarP(&flagSchemaPath, "schema", "s",
		path.Join(config.DefaultConfigPath(), "lightpath.v1.schema.json"),
		"path to library schema file")

	rootCmd.AddCommand(validateCmd, listCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
