package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/boggle/wordlist"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check word...",
		Short: "Report whether each argument is a word or a prefix of one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			lx, err := a.loadLexicon(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, q := range args {
				if cfg.Fold {
					q = wordlist.Fold(q)
				}
				prefix, word := lx.Classify(q)
				if _, err = fmt.Fprintf(out, "%s prefix=%t word=%t\n", q, prefix, word); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
