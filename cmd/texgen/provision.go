package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/aellingwood/texgen/internal/config"
	"github.com/aellingwood/texgen/internal/palette"
	"github.com/aellingwood/texgen/internal/provision"
	"github.com/spf13/cobra"
)

var provisionCmd = &cobra.Command{
	Use:   "provision [category...]",
	Short: "Create missing placeholder textures",
	Long: "Create the directory and flat-colour texture for each category that does not have one yet.\n" +
		"With no arguments every category is provisioned; otherwise only the named ones.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProvision(cmd, args)
	},
}

// runProvision is shared by the root command and provision.
func runProvision(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Watch && cfg.DryRun {
		return errors.New("--watch cannot be combined with --dry-run")
	}

	table, err := palette.Default().Select(args...)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)
	fsys := provision.OSFilesystem()
	if cfg.DryRun {
		fsys = provision.DryRunFilesystem(fsys)
		log.Info("dry run: nothing will be written to disk")
	}

	p := provision.New(fsys, cfg, log)
	report, err := p.Provision(table)
	if err != nil {
		return err
	}
	printSummary(cmd, cfg, table, report)

	if err := report.Err(); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	return watch(cmd, cfg, p, table)
}

// printSummary writes the counts of a run followed by the texture tree.
func printSummary(cmd *cobra.Command, cfg *config.Config, table palette.Table, r *provision.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%d textures: %d created, %d skipped, %d failed\n",
		len(table), len(r.Created), len(r.Skipped), len(r.Failures))

	var paths []string
	for _, e := range table {
		rel, err := filepath.Rel(cfg.BaseDir, cfg.TexturePath(e.Name))
		if err != nil {
			continue
		}
		paths = append(paths, filepath.ToSlash(rel))
	}
	fmt.Fprintf(out, "\n%s\n", renderTree(filepath.ToSlash(cfg.BaseDir), paths))
}

// watch re-provisions whenever textures are removed, until interrupted.
func watch(cmd *cobra.Command, cfg *config.Config, p *provision.Provisioner, table palette.Table) error {
	log := newLogger(cmd, cfg)

	w := provision.NewWatcher(cfg.BaseDir, cfg.Debounce, log, func() {
		log.Info("change detected, re-provisioning")
		report, err := p.Provision(table)
		if err != nil {
			log.WithField("error", err).Error("re-provisioning failed")
			return
		}
		if err := report.Err(); err != nil {
			log.WithField("error", err).Error("re-provisioning incomplete")
		}
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down...")
		w.Stop()
	}()

	log.WithField("path", cfg.BaseDir).Info("watching for removed textures (Ctrl+C to stop)")
	if err := w.Start(); err != nil {
		return fmt.Errorf("watcher error: %w", err)
	}
	return nil
}

func init() {
	provisionCmd.Flags().Bool("dry-run", false, "report what would be created without writing anything")
	provisionCmd.Flags().Bool("watch", false, "keep running and restore textures that get removed")
	provisionCmd.Flags().Duration("debounce", config.DefaultDebounce, "quiet period before restoring removed textures")

	rootCmd.AddCommand(provisionCmd)
}
