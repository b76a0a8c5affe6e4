package main

import (
	"github.com/spf13/cobra"

	"github.com/udisondev/buildcraft/internal/constants"
	"github.com/udisondev/buildcraft/internal/game/combat"
)

var damageCmd = &cobra.Command{
	Use:   "damage",
	Short: "Estimate the expected damage of a single strike",
	Args:  cobra.NoArgs,
	RunE:  runDamage,
}

func init() {
	f := damageCmd.Flags()
	f.Float64("power", constants.BaseAttributeValue, "effective power")
	f.Float64("weapon-strength", constants.DefaultWeaponStrength, "weapon strength")
	f.Float64("coefficient", 1, "skill coefficient")
	f.Float64("crit-chance", constants.BaseCritChance, "critical chance in [0, 1]")
	f.Float64("crit-damage", constants.BaseCritDamage, "critical damage multiplier")
	f.Float64("multiplier", 1, "outgoing damage multiplier")
	rootCmd.AddCommand(damageCmd)
}

func runDamage(cmd *cobra.Command, _ []string) error {
	svc, closeFn, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	f := cmd.Flags()
	var in combat.DamageInput
	in.Power, _ = f.GetFloat64("power")
	in.WeaponStrength, _ = f.GetFloat64("weapon-strength")
	in.SkillCoefficient, _ = f.GetFloat64("coefficient")
	in.CritChance, _ = f.GetFloat64("crit-chance")
	in.CritDamageMultiplier, _ = f.GetFloat64("crit-damage")
	in.DamageMultiplier, _ = f.GetFloat64("multiplier")

	b, err := svc.EstimateDamage(in)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), map[string]float64{
		"base_damage":    b.BaseDamage,
		"crit_damage":    b.CritDamage,
		"average_damage": b.AverageDamage,
	})
}
