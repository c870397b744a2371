// Package commands wires the buildtest CLI surface.
package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	flagProjectRoot string
	flagBuildDir    string
	flagManifest    string
	flagStateDir    string
	flagNoColor     bool
)

// NewRootCmd constructs the buildtest root command. With no arguments it
// runs the full verification pipeline and exits 0 iff every check
// passed.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buildtest",
		Short: "Build and smoke-test harness for the OpenRW level editor",
		Long: `buildtest verifies end-to-end that the editor source tree can be
configured, compiled, linked into a runnable binary and minimally
executed.

It runs six checks in a fixed order, never stopping early:

  1. File Structure      - required sources and headers are present
  2. Dependencies        - toolchain binaries and Qt packages are available
  3. CMake Configuration - a clean build directory configures successfully
  4. Compilation         - the project compiles and links the editor binary
  5. Code Quality        - the compilation database covers the entry point
  6. Executable Basic    - the built binary starts without immediate crash

The build directory is owned by the harness and is destroyed and
recreated on every run. buildtest exits 0 when every check passes and 1
otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagNoColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flagProjectRoot, "project-root", ".", "Project tree to verify")
	cmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", ".buildtest", "Directory to store run state")
	cmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	cmd.Flags().StringVar(&flagBuildDir, "build-dir", "", "Override the build output directory (relative to project root)")
	cmd.Flags().StringVar(&flagManifest, "manifest", "", "YAML manifest overriding the built-in check tables")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the buildtest version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "buildtest version %s\n", version)
		},
	})
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newResetCmd())

	return cmd
}
