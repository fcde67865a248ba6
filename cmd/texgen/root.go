package main

import (
	"github.com/aellingwood/texgen/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "texgen",
	Short: "Generate placeholder block textures",
	Long: "texgen makes sure every block category has a texture on disk, painting a flat-colour\n" +
		"placeholder PNG wherever one is missing. Existing files are never overwritten.\n\n" +
		"Run without a subcommand to provision every category.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProvision(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().String("base-dir", config.DefaultBaseDir, "directory holding one sub-directory per category")
	rootCmd.PersistentFlags().Int("size", config.DefaultSize, "texture width and height in pixels")
	rootCmd.PersistentFlags().String("filename", config.DefaultFilename, "texture file name inside each category directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
