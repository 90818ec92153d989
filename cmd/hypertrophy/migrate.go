// ABOUTME: CLI command for moving data between storage backends.
// ABOUTME: Copies every stored key from one backend to another.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/harperreed/hypertrophy/internal/storage"
	"github.com/spf13/cobra"
)

var (
	migrateFrom  string
	migrateTo    string
	migrateForce bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy data between storage backends",
	Long: `Copy the stored program state from one backend to another.

BACKENDS:

  sqlite   ~/.local/share/hypertrophy/hypertrophy.db
  badger   ~/.local/share/hypertrophy/badger/
  charm    Charm KV, synced across devices

A badger destination that already holds data is refused unless --force is
given. Other destinations are overwritten key by key.

After migrating, set "backend" in ~/.config/hypertrophy/config.json.

EXAMPLES:

  hypertrophy migrate --from sqlite --to badger
  hypertrophy migrate --from charm --to sqlite --force`,
	Annotations: map[string]string{skipStoreAnnotation: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrateFrom == migrateTo {
			return fmt.Errorf("source and destination are both %q", migrateFrom)
		}

		if migrateTo == "badger" && !migrateForce {
			nonEmpty, err := storage.IsDirNonEmpty(filepath.Join(cfg.GetDataDir(), "badger"))
			if err != nil {
				return err
			}
			if nonEmpty {
				return fmt.Errorf("destination badger directory is not empty (use --force to overwrite)")
			}
		}

		src, err := cfg.OpenBackend(migrateFrom)
		if err != nil {
			return fmt.Errorf("open %s: %w", migrateFrom, err)
		}
		defer func() { _ = src.Close() }()

		dst, err := cfg.OpenBackend(migrateTo)
		if err != nil {
			return fmt.Errorf("open %s: %w", migrateTo, err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(src, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		out := cmd.OutOrStdout()
		color.New(color.FgGreen).Fprintf(out, "✓ Migrated %s → %s\n", migrateFrom, migrateTo)
		fmt.Fprintf(out, "  Keys: %d\n", summary.Keys)
		fmt.Fprintf(out, "  Workouts: %d\n", summary.Sessions)
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "sqlite", "source backend")
	migrateCmd.Flags().StringVar(&migrateTo, "to", "badger", "destination backend")
	migrateCmd.Flags().BoolVar(&migrateForce, "force", false, "overwrite a non-empty destination")
	rootCmd.AddCommand(migrateCmd)
}
