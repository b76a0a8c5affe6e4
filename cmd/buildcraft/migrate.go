package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/udisondev/buildcraft/internal/data"
	"github.com/udisondev/buildcraft/internal/db"
	"github.com/udisondev/buildcraft/internal/model"
	"github.com/udisondev/buildcraft/internal/refdata"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and optionally seed reference data",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	f := migrateCmd.Flags()
	f.String("seed", "", "reference data YAML (specializations and palettes) to import")
	f.Bool("seed-prefixes", false, "store the built-in armor prefix stats in item_stats")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	if !cfg.Database.Enabled {
		return fmt.Errorf("database.enabled is false: %w", model.ErrConfiguration)
	}
	ctx := cmd.Context()
	dsn := cfg.Database.DSN()

	if err := db.RunMigrations(ctx, dsn); err != nil {
		return err
	}
	version, err := db.MigrationVersion(ctx, dsn)
	if err != nil {
		return err
	}
	slog.Info("database migrations applied", "version", version)

	seed, _ := cmd.Flags().GetString("seed")
	prefixes, _ := cmd.Flags().GetBool("seed-prefixes")
	if seed == "" && !prefixes {
		return nil
	}

	database, err := db.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer database.Close()

	if seed != "" {
		mem, err := refdata.LoadFile(seed)
		if err != nil {
			return err
		}
		if err := database.References().Import(ctx, mem.Specializations(), mem.Palettes()); err != nil {
			return fmt.Errorf("importing %s: %w", seed, err)
		}
		specs, palettes := mem.Len()
		slog.Info("reference data imported", "specializations", specs, "palettes", palettes)
	}

	if prefixes {
		repo := database.ItemStats()
		all := data.DefaultCatalog().Prefixes()
		for _, p := range all {
			if err := repo.SavePrefix(ctx, p.Name, p.Bundle); err != nil {
				return err
			}
		}
		slog.Info("prefix stats stored", "count", len(all))
	}
	return nil
}
