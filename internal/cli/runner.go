package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/users/internal/config"
	"github.com/idilsaglam/users/internal/logging"
	"github.com/idilsaglam/users/internal/store"
	"github.com/idilsaglam/users/internal/tui"
	"github.com/idilsaglam/users/internal/ui"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// Exit codes: 0 ok, 1 error, 2 usage.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by bad invocation rather than a failed run.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// usageArgs reports argument validation failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// runPage is swapped in tests; the real page needs a terminal.
var runPage = tui.Run

// env is what every command needs once flags and config are resolved.
type env struct {
	cfg      config.Config
	log      *slog.Logger
	registry *prometheus.Registry
}

// setup resolves config (file, then flags), applies the theme and builds the logger.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, &usageError{err}
	}
	if f := cmd.Flags().Lookup("theme"); f != nil && f.Changed {
		cfg.Theme = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, &usageError{err}
	}
	ui.SetTheme(cfg.Theme)
	return &env{
		cfg:      cfg,
		log:      logging.New(cmd.ErrOrStderr(), level),
		registry: prometheus.NewRegistry(),
	}, nil
}

// newContainer establishes the scope for one run with metrics attached.
func (e *env) newContainer() (*store.Container, error) {
	m, err := store.NewMetrics(e.registry)
	if err != nil {
		return nil, err
	}
	return store.New(store.WithLogger(e.log), store.WithHooks(m.Hooks())), nil
}

// logMetrics dumps the run's counters at debug level.
func (e *env) logMetrics() {
	families, err := e.registry.Gather()
	if err != nil {
		e.log.Warn("gather metrics", "error", err)
		return
	}
	for _, f := range families {
		var total float64
		for _, m := range f.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			}
		}
		e.log.Debug("metric", "name", f.GetName(), "value", total)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "users",
		Short: "A users page backed by a single state container",
		Long: `users opens a page with an entry form and a list of users.
Submitting the form appends the entry to the list. Nothing is persisted:
every run starts with the seed user.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			c, err := e.newContainer()
			if err != nil {
				return err
			}
			defer c.Close()
			defer e.logMetrics()

			ctx := store.WithContainer(cmd.Context(), c)
			return runPage(ctx, c, tui.Options{
				Placeholder: e.cfg.Placeholder,
				CharLimit:   e.cfg.CharLimit,
				AltScreen:   e.cfg.UseAltScreen(),
			})
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})

	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().String("theme", "classic", "color theme: classic, neon or mono")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(newAddCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of users",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "users version %s\n", Version)
		},
	}
}

// Execute runs the command tree with args and returns an exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	ui.Fail(stderr, err.Error())

	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr)
		fmt.Fprint(stderr, root.UsageString())
		return ExitUsage
	}
	return ExitError
}

// Main is the process entry point.
func Main() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
