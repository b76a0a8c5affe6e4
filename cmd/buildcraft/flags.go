package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/buildcraft/internal/constants"
	"github.com/udisondev/buildcraft/internal/model"
)

// addStatFlags registers --stat name=value and --base.
func addStatFlags(cmd *cobra.Command) {
	cmd.Flags().StringToInt("stat", nil, "attribute total, e.g. power=2400 (repeatable)")
	cmd.Flags().Int32("base", constants.BaseAttributeValue, "baseline for power, precision, toughness and vitality")
}

// statFlags builds the stat bundle: baseline first, then --stat entries replace.
func statFlags(cmd *cobra.Command) (model.StatBundle, error) {
	base, _ := cmd.Flags().GetInt32("base")
	values, _ := cmd.Flags().GetStringToInt("stat")

	b := model.BaselineStats(base)
	for name, v := range values {
		attr, ok := model.ParseAttribute(name)
		if !ok {
			return model.StatBundle{}, fmt.Errorf("--stat %s: unknown attribute: %w", name, model.ErrInvalidValue)
		}
		b = b.With(attr, int32(v))
	}
	return b, nil
}

// addContextFlags registers the boon and target-condition flags.
func addContextFlags(cmd *cobra.Command) {
	cmd.Flags().Int("might", 0, "might stacks on the player (0-25)")
	cmd.Flags().Bool("fury", false, "fury on the player")
	cmd.Flags().Int("vulnerability", 0, "vulnerability stacks on the target (0-25)")
}

func contextFlags(cmd *cobra.Command) (model.CombatContext, error) {
	might, _ := cmd.Flags().GetInt("might")
	fury, _ := cmd.Flags().GetBool("fury")
	vuln, _ := cmd.Flags().GetInt("vulnerability")
	if might < 0 || vuln < 0 {
		return model.CombatContext{}, fmt.Errorf("negative stacks: %w", model.ErrInvalidValue)
	}

	var conds map[string]int
	if vuln > 0 {
		conds = map[string]int{model.ConditionVulnerability: vuln}
	}
	return model.NewCombatContext(might, fury, conds), nil
}
