package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/buildcraft/internal/game/combat"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rank rune, sigil pair and relic combinations for a role",
	Example: `  buildcraft optimize --role dps --stat power=2400 --stat precision=1900 \
    --stat ferocity=1100 --rotation rotation.yaml --top 10`,
	Args: cobra.NoArgs,
	RunE: runOptimize,
}

func init() {
	f := optimizeCmd.Flags()
	f.StringP("role", "r", "dps", "dps, support, heal, tank or boon")
	f.IntP("top", "k", 0, "number of candidates (default from config)")
	f.String("rotation", "", "YAML file with a list of {name, coefficient, weapon_strength, casts}")
	addStatFlags(optimizeCmd)
	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	role, _ := f.GetString("role")
	k, _ := f.GetInt("top")
	if k == 0 {
		k = cfg.DefaultTopK
	}

	base, err := statFlags(cmd)
	if err != nil {
		return err
	}
	path, _ := f.GetString("rotation")
	rotation, err := loadRotation(path)
	if err != nil {
		return err
	}

	svc, closeFn, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	top, err := svc.OptimizeBuildTopK(base, rotation, role, k)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), newCandidateViews(top))
}

// loadRotation reads a rotation file; an empty path yields nil (the default rotation).
func loadRotation(path string) ([]combat.RotationSkill, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rotation %s: %w", path, err)
	}
	var rotation []combat.RotationSkill
	if err := yaml.Unmarshal(raw, &rotation); err != nil {
		return nil, fmt.Errorf("parsing rotation %s: %w", path, err)
	}
	return rotation, nil
}
