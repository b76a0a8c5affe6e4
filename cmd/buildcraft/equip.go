package main

import (
	"github.com/spf13/cobra"
)

var equipCmd = &cobra.Command{
	Use:   "equip <profession>",
	Short: "Pick an armor stat prefix for each slot",
	Long: "equip runs the greedy armor solver for a profession and role. In wvw and pvp the " +
		"role's health floor is enforced before offense is maximized.",
	Args: cobra.ExactArgs(1),
	RunE: runEquip,
}

func init() {
	f := equipCmd.Flags()
	f.StringP("role", "r", "dps", "dps, support, heal, tank or boon")
	f.StringP("mode", "m", "pve", "pve, wvw or pvp")
	f.StringP("experience", "e", "intermediate", "beginner, intermediate or expert")
	f.String("spec", "", "specialization name, carried into the result")
	rootCmd.AddCommand(equipCmd)
}

func runEquip(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	f := cmd.Flags()
	role, _ := f.GetString("role")
	mode, _ := f.GetString("mode")
	exp, _ := f.GetString("experience")
	spec, _ := f.GetString("spec")

	res, err := svc.GenerateEquipmentSet(role, args[0], spec, mode, exp)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), equipmentView{
		EquipmentResult: res,
		Stats:           res.Stats.Map(),
		ConstraintsMet:  res.ConstraintsMet(),
	})
}
