package main

import (
	"fmt"

	"github.com/aellingwood/texgen/internal/palette"
	"github.com/aellingwood/texgen/internal/provision"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [category...]",
	Short: "Check that every texture exists and matches its placeholder colour",
	Long: "Decode each category's texture and compare it with the expected flat fill.\n" +
		"Nothing is written. Exits non-zero if any texture is missing or differs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		table, err := palette.Default().Select(args...)
		if err != nil {
			return err
		}

		p := provision.New(provision.OSFilesystem(), cfg, newLogger(cmd, cfg))
		results, err := p.Verify(table)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		bad := 0
		for _, r := range results {
			hash := "-"
			if r.Hash != "" {
				hash = r.Hash[:12]
			}
			fmt.Fprintf(out, "%-8s  %-12s  %-12s  %s\n", r.Status, r.Category, hash, r.Path)
			if r.Status != provision.StatusOK {
				bad++
				if r.Err != nil {
					fmt.Fprintf(out, "          %v\n", r.Err)
				}
			}
		}

		if bad > 0 {
			return fmt.Errorf("%d of %d textures missing or changed", bad, len(results))
		}
		fmt.Fprintf(out, "All %d textures match.\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
