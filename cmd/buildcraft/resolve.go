package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/buildcraft/internal/model"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve derived combat attributes from base stats, upgrades and boons",
	Example: `  buildcraft resolve --stat power=2400 --stat precision=1900 --stat ferocity=1100 \
    --upgrade "Superior Rune of the Scholar" --might 25 --fury --vulnerability 25`,
	Args: cobra.NoArgs,
	RunE: runResolve,
}

func init() {
	addStatFlags(resolveCmd)
	addContextFlags(resolveCmd)
	resolveCmd.Flags().StringArray("upgrade", nil, "catalog rune, sigil or relic whose modifiers apply (repeatable)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, _ []string) error {
	svc, closeFn, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	base, err := statFlags(cmd)
	if err != nil {
		return err
	}
	ctx, err := contextFlags(cmd)
	if err != nil {
		return err
	}

	names, _ := cmd.Flags().GetStringArray("upgrade")
	var mods []model.Modifier
	for _, n := range names {
		u, ok := svc.Catalog().Upgrade(n)
		if !ok {
			return fmt.Errorf("unknown upgrade %q: %w", n, model.ErrInvalidValue)
		}
		mods = append(mods, u.Modifiers...)
	}

	return writeJSON(cmd.OutOrStdout(), newDerivedView(svc.ResolveAttributes(base, mods, ctx)))
}
