package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"typecore/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "typecore",
	Short:         "Name interning and type rendering toolkit",
	Long:          `typecore interns names, builds type trees from fixture files and renders them in debug and display form`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyColor(cmd); err != nil {
			return err
		}
		profiler, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		cleanup, err := setupTracing(cmd)
		if err != nil {
			_ = profiler.Stop()
			return err
		}
		runCleanup = func() {
			cleanup()
			if err := profiler.Stop(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		finish()
	},
}

// runCleanup flushes tracing and profiling; set by the root pre-run hook.
var runCleanup func()

func finish() {
	if runCleanup != nil {
		runCleanup()
		runCleanup = nil
	}
}

// main registers subcommands and persistent flags, then executes the root
// command. Any error is printed to stderr and the process exits with status 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(namesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to a file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")

	if err := rootCmd.Execute(); err != nil {
		finish()
		errColor := color.New(color.FgRed, color.Bold)
		fmt.Fprintf(os.Stderr, "%s %v\n", errColor.Sprint("error:"), err)
		os.Exit(1)
	}
}

// applyColor resolves the --color flag once for fatih/color and lipgloss users.
func applyColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
