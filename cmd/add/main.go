package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/addcheck/internal/config"
	"github.com/pengelbrecht/addcheck/internal/selftest"
	"github.com/pengelbrecht/addcheck/internal/styles"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitUsage   = 2
)

// runError marks failures that happened after argument parsing.
type runError struct {
	err error
}

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	return execute(context.Background(), config.Default(), args[1:], os.Stdout, os.Stderr)
}

func execute(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer, opts ...selftest.RunnerOption) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(cfg, stdout, stderr, opts...)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitSuccess
	}

	var re *runError
	if errors.As(err, &re) {
		fmt.Fprintf(stderr, "self-test failed: %v\n", re.err)
		return exitFailure
	}

	fmt.Fprintf(stderr, "%v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	return exitUsage
}

func newRootCmd(cfg config.Config, stdout, stderr io.Writer, opts ...selftest.RunnerOption) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Run the addition self-test",
		Long: `Run the addition self-test.

Checks add(2, 3) == 5 and add(-1, 1) == 0 using 64-bit signed
integers. Exits 0 when both pass. On the first mismatch it prints
the report to stderr and exits 1.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelfTest(cmd.Context(), cfg, stdout, stderr, opts...)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func runSelfTest(ctx context.Context, cfg config.Config, stdout, stderr io.Writer, opts ...selftest.RunnerOption) error {
	if err := cfg.Validate(); err != nil {
		return &runError{err: fmt.Errorf("invalid config: %w", err)}
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()})).
		With("component", "selftest")

	opts = append([]selftest.RunnerOption{selftest.WithLogger(logger)}, opts...)
	report, err := selftest.NewRunner(opts...).Run(ctx)
	if err != nil {
		fmt.Fprintln(stderr, styles.RenderReport(report, cfg.Styled))
		return &runError{err: err}
	}

	fmt.Fprintln(stdout, styles.RenderReport(report, cfg.Styled))
	return nil
}
