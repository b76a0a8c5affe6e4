package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/udisondev/buildcraft/internal/chatcode"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <code>",
	Short: "Decode a build chat code into profession, specialization, traits and skills",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().Bool("fingerprint", false, "print only the build fingerprint")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	svc, closeFn, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	b, err := svc.DecodeBuild(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if fp, _ := cmd.Flags().GetBool("fingerprint"); fp {
		fmt.Fprintln(cmd.OutOrStdout(), b.Fingerprint())
		return nil
	}
	return writeJSON(cmd.OutOrStdout(), struct {
		chatcode.DecodedBuild
		Fingerprint string `json:"fingerprint"`
	}{b, b.Fingerprint()})
}
