// Package cmd provides the CLI commands for envcheck.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/envcheck/envcheck/internal/config"
	"github.com/envcheck/envcheck/internal/logging"
	"github.com/envcheck/envcheck/internal/platform"
	"github.com/envcheck/envcheck/internal/preflight"
	"github.com/envcheck/envcheck/internal/probe"
	"github.com/envcheck/envcheck/internal/report"
	"github.com/envcheck/envcheck/pkg/version"
)

// Execute runs the root command and prints any non-check error to stderr.
// Check failures are not reprinted; their report already went to stdout.
func Execute() error {
	err := NewRootCmd().Execute()
	reportError(os.Stderr, err)
	return err
}

// reportError prints err to w unless it is the check-failure sentinel.
// Cobra error printing is silenced, so this is the only place a config or
// setup error becomes visible.
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var checkErr *checkError
	if errors.As(err, &checkErr) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// runOptions carries the root command flags into runChecks.
type runOptions struct {
	json      bool
	verbose   bool
	noColor   bool
	markClean bool
}

// NewRootCmd creates the root command for the envcheck CLI.
func NewRootCmd() *cobra.Command {
	var (
		opts      runOptions
		debugMode bool
	)

	cmd := &cobra.Command{
		Use:   "envcheck",
		Short: "Pre-flight environment diagnostic for Python project setup",
		Long: `envcheck inspects the local machine before you run ./setup:
Python interpreter presence and version, pip availability, virtual
environment activation, project layout, installed package versions, and
known failure signatures such as externally-managed Python installs.

It prints a pass/warn/fail checklist with remediation commands for the
detected operating system. Inspection is read-only; nothing is installed
or modified.

Exit code 0 means all checks passed or only warnings were found.
Exit code 1 means at least one check failed.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var cleanup func()
			if debugMode {
				var err error
				cleanup, err = logging.SetupDefault()
				if err != nil {
					return fmt.Errorf("enable debug logging: %w", err)
				}
				defer cleanup()
			}

			return runChecks(ctx, cmd, opts)
		},
	}

	cmd.SetVersionTemplate("envcheck version {{.Version}}\n")

	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Include check IDs in the report")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.markClean, "mark-clean", false, "Record a clean run in .envcheck/last-pass under the project root")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.envcheck/logs/")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// runChecks runs the full checklist and renders the report. The returned
// error is non-nil exactly when at least one check failed, which maps to
// exit code 1 in main.
func runChecks(ctx context.Context, cmd *cobra.Command, opts runOptions) error {
	root, err := config.FindProjectRoot(".")
	if err != nil {
		root, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}

	family := platform.Detect()
	runner := probe.NewRunner(probe.WithTimeout(cfg.ProbeTimeout()))
	checker := preflight.New(cfg, runner, family, root)

	rep := checker.RunAll(ctx)

	presenter := report.New(cmd.OutOrStdout(),
		report.WithColor(useColor(opts.noColor)),
		report.WithVerbose(opts.verbose),
	)

	if opts.json {
		if err := presenter.PrintJSON(rep); err != nil {
			return err
		}
	} else {
		presenter.Print(rep)
		printLastClean(cmd, root)
	}

	if rep.HasFailures() {
		// A failing run invalidates any marker a previous --mark-clean
		// run left behind.
		if opts.markClean {
			_ = preflight.ClearMarker(root)
		}
		return &checkError{failed: rep.Failed}
	}

	// Inspection stays read-only unless the user opts in to the marker.
	// The write is advisory; a failed write never fails a clean run.
	if opts.markClean {
		_ = preflight.MarkClean(root)
	}
	return nil
}

// useColor enables colors only on a tty, honoring --no-color and NO_COLOR.
func useColor(noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// printLastClean reports how long ago the last clean run finished.
func printLastClean(cmd *cobra.Command, root string) {
	t, ok := preflight.LastClean(root)
	if !ok {
		return
	}
	cmd.Printf("Last clean run: %s ago\n", formatAge(time.Since(t)))
}

// formatAge renders a duration at human granularity.
func formatAge(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return fmt.Sprintf("%d minutes", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%d hours", int(d.Hours()))
	default:
		return fmt.Sprintf("%d days", int(d.Hours()/24))
	}
}

// checkError signals a run with failures without printing a second message.
type checkError struct {
	failed int
}

func (e *checkError) Error() string {
	return fmt.Sprintf("%d check(s) failed", e.failed)
}
