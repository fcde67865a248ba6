package main

import (
	"fmt"

	"github.com/aellingwood/texgen/internal/palette"
	"github.com/aellingwood/texgen/internal/provision"
	"github.com/aellingwood/texgen/internal/texture"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the block categories and their colours",
	Long:  "List every block category with its fill colour and the texture a UI would display for it.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("output")
		table := palette.Default()
		out := cmd.OutOrStdout()

		switch format {
		case "yaml":
			data, err := table.MarshalYAMLDocument()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		case "toml":
			data, err := table.MarshalTOMLDocument()
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		case "table", "":
			fsys := provision.OSFilesystem()
			fmt.Fprintf(out, "%-12s  %-9s  %s\n", "CATEGORY", "COLOR", "DISPLAY")
			for _, e := range table {
				fmt.Fprintf(out, "%-12s  %-9s  %s\n",
					e.Name, palette.Hex(e.Color), texture.DisplayPath(fsys, cfg.BaseDir, e.Name, cfg.Filename))
			}
			return nil
		default:
			return fmt.Errorf("unknown output format %q (want table, yaml or toml)", format)
		}
	},
}

func init() {
	listCmd.Flags().StringP("output", "o", "table", "output format: table, yaml or toml")

	rootCmd.AddCommand(listCmd)
}
