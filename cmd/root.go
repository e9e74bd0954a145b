package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/cli"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/cli/todo"
	"github.com/thenoetrevino/todo/internal/launcher"
	"github.com/thenoetrevino/todo/internal/logging"
)

// rootOptions holds the pieces tests swap out
type rootOptions struct {
	openCLI func(ctx context.Context, opts cli.Options) (*cli.CLI, error)
	launch  func(ctx context.Context, c *cli.CLI) error
}

// Option configures the root command
type Option func(*rootOptions)

// WithCLIFactory replaces how the CLI is opened
func WithCLIFactory(open func(ctx context.Context, opts cli.Options) (*cli.CLI, error)) Option {
	return func(o *rootOptions) {
		o.openCLI = open
	}
}

// WithLauncher replaces the interactive screen
func WithLauncher(launch func(ctx context.Context, c *cli.CLI) error) Option {
	return func(o *rootOptions) {
		o.launch = launch
	}
}

// NewRootCmd builds the todo command tree. The opened CLI is handed to
// onOpen so the caller can close it once the command finishes.
func NewRootCmd(onOpen func(*cli.CLI), opts ...Option) *cobra.Command {
	o := &rootOptions{
		openCLI: openCLI,
		launch: func(ctx context.Context, c *cli.CLI) error {
			return launcher.Launch(ctx, c.App, c.Config)
		},
	}
	for _, opt := range opts {
		opt(o)
	}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a terminal to-do list",
		Long: `todo keeps a to-do list in a local SQLite database.

Run it without a subcommand for the interactive screen, or use the
subcommands below from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			dbPath, _ := cmd.Flags().GetString("db")

			cliInstance, err := o.openCLI(cmd.Context(), cli.Options{ConfigPath: configPath, DBPath: dbPath})
			if err != nil {
				return cli.FormatterFor(cmd).Fail(err, "Check --db, TODO_DB_PATH or database.path in the config file")
			}
			if onOpen != nil {
				onOpen(cliInstance)
			}

			if cli.IsTerminal(cmd.OutOrStdout()) {
				styles.Init(cliInstance.Config.ColorScheme)
			}

			cmd.SetContext(cli.WithCLI(cmd.Context(), cliInstance))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return o.launch(cmd.Context(), cliInstance)
		},
	}

	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (default ~/.todo/todos.db)")
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")

	rootCmd.AddCommand(todo.Commands()...)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.FormatterFor(cmd).Usage(err, usageHint(cmd))
	})
	wrapArgs(rootCmd)
	return rootCmd
}

// wrapArgs makes positional argument errors anywhere in the tree usage errors
func wrapArgs(cmd *cobra.Command) {
	if validate := cmd.Args; validate != nil {
		cmd.Args = func(c *cobra.Command, args []string) error {
			if err := validate(c, args); err != nil {
				return cli.FormatterFor(c).Usage(err, usageHint(c))
			}
			return nil
		}
	}
	for _, sub := range cmd.Commands() {
		wrapArgs(sub)
	}
}

func usageHint(cmd *cobra.Command) string {
	return fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath())
}

// openCLI sets up file logging and opens the CLI
func openCLI(ctx context.Context, opts cli.Options) (*cli.CLI, error) {
	logCloser, err := logging.Init("")
	if err != nil {
		// Logging is not worth failing the command over
		slog.SetDefault(logging.New(os.Stderr, slog.LevelWarn))
		slog.Warn("file logging disabled", "error", err)
	}
	opts.Logger = slog.Default()

	cliInstance, err := cli.NewCLI(ctx, opts)
	if err != nil {
		slog.Error("failed to open todo database", "error", err)
		if logCloser != nil {
			_ = logCloser.Close()
		}
		return nil, err
	}
	if logCloser != nil {
		cliInstance.AddCloser(logCloser)
	}
	return cliInstance, nil
}

// Run executes the command line in args and returns the process exit code
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, opts ...Option) int {
	var opened *cli.CLI
	rootCmd := NewRootCmd(func(c *cli.CLI) { opened = c }, opts...)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)

	if opened != nil {
		if closeErr := opened.Close(); closeErr != nil {
			slog.Error("error closing CLI", "error", closeErr)
		}
	}

	// Command errors were already reported; cobra's own errors were not
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}

// Execute runs the root command against the process arguments and streams
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
