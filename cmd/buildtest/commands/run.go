package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asadandasad/openrw-editor/cmd/buildtest/internal/clierr"
	"github.com/asadandasad/openrw-editor/internal/checks"
	"github.com/asadandasad/openrw-editor/internal/diag"
	"github.com/asadandasad/openrw-editor/internal/harness"
	"github.com/asadandasad/openrw-editor/internal/manifest"
	"github.com/asadandasad/openrw-editor/internal/shell"
)

func loadManifest() (*manifest.Manifest, error) {
	if flagManifest == "" {
		return manifest.Default(), nil
	}
	return manifest.Load(flagManifest)
}

func resolveStateStore(projectRoot string) *harness.StateStore {
	dir := flagStateDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(projectRoot, dir)
	}
	return harness.NewStateStore(dir)
}

// runPipeline executes the full check pipeline and writes the report.
// The printed report and the exit code are the only externally
// observable signals; check failures never surface as raised errors.
func runPipeline(cmd *cobra.Command) error {
	m, err := loadManifest()
	if err != nil {
		return err
	}
	if flagBuildDir != "" {
		m.BuildDir = flagBuildDir
	}

	root, err := filepath.Abs(flagProjectRoot)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	log := diag.New(cmd.OutOrStdout())
	env := harness.NewEnv(root, m, shell.NewRunner(), log)

	log.Info("OpenRW Level Editor Build Test")
	log.Info(strings.Repeat("=", 40))

	outcomes := harness.NewPipeline(checks.Registry(), env).Run(cmd.Context())
	ok := harness.WriteReport(log, outcomes)

	// Persistence is best-effort; a state write failure must not change
	// the verdict.
	store := resolveStateStore(root)
	for _, o := range outcomes {
		if err := store.WriteOutcome(o); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: persisting outcome %s: %v\n", o.Check, err)
		}
	}
	if err := store.WriteLastRun(harness.Summarize(outcomes)); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: persisting run summary: %v\n", err)
	}

	if !ok {
		return clierr.Silent(1)
	}
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the checks in execution order",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range checks.Registry() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), c.Name())
			}
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the result of the last run",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(flagProjectRoot)
			if err != nil {
				return err
			}
			store := resolveStateStore(root)
			last, err := store.ReadLastRun()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if last == nil {
				_, _ = fmt.Fprintln(out, "No run state found.")
				return nil
			}

			_, _ = fmt.Fprintf(out, "Status: %s\n", last.Status)
			if len(last.Failed) > 0 {
				_, _ = fmt.Fprintln(out, "Failed:")
				for _, f := range last.Failed {
					_, _ = fmt.Fprintf(out, "  - %s\n", f)
					if o, oerr := store.ReadOutcome(f); oerr == nil && o != nil && o.Note != "" {
						_, _ = fmt.Fprintf(out, "      %s\n", o.Note)
					}
				}
			} else {
				_, _ = fmt.Fprintln(out, "All checks passed.")
			}
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear persisted run state",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(flagProjectRoot)
			if err != nil {
				return err
			}
			return resolveStateStore(root).Reset()
		},
	}
}
