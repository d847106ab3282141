package root

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-textpipe/cmd/textpipe/version"
	"github.com/askiada/go-textpipe/internal/command"
	"github.com/askiada/go-textpipe/internal/config"
	"github.com/askiada/go-textpipe/internal/ctxlog"
	"github.com/askiada/go-textpipe/internal/processor"
	"github.com/askiada/go-textpipe/internal/transform"
)

type flags struct {
	configPath string
	logLevel   string
	logFormat  string
	graphPath  string
	quiet      bool
	stats      bool
}

// NewRootCmd creates the root command for textpipe.
// With arguments, the arguments form a single request. Without, requests are read from stdin.
func NewRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flg := &flags{}

	cmd := &cobra.Command{
		Use:   "textpipe [command text...]",
		Short: "Apply text transforms to a single request or to an interactive session",
		Long: "Apply text transforms to a single request or to an interactive session.\n\n" +
			"Run without arguments to read one request per line from stdin, until 'quit' or end of input.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flg)
			if err != nil {
				return &ExitError{Code: exitUsage, Message: err.Error()}
			}

			return run(cmd, cfg, args, stdin, stdout, stderr)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: exitUsage, Message: err.Error()}
	})

	// Everything after the command name belongs to the payload.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&flg.configPath, "config", "", "Path to a YAML configuration file.")
	cmd.Flags().StringVar(&flg.logLevel, "log-level", config.DefaultLogLevel, "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cmd.Flags().StringVar(&flg.logFormat, "log-format", config.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	cmd.Flags().BoolVar(&flg.quiet, "quiet", false, "Do not print the banner, the prompt and the farewell.")
	cmd.Flags().BoolVar(&flg.stats, "stats", false, "Log per-stage metrics at the end of the run.")
	cmd.Flags().StringVar(&flg.graphPath, "graph", "", "Write the stage graph of the run to this DOT file.")

	cmd.AddCommand(version.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	return cmd.Execute()
}

func resolveConfig(cmd *cobra.Command, flg *flags) (config.Config, error) {
	cfg := config.Default()

	if flg.configPath != "" {
		loaded, err := config.Load(flg.configPath)
		if err != nil {
			return config.Config{}, err
		}

		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = strings.ToLower(flg.logLevel)
	}

	if changed("log-format") {
		cfg.LogFormat = strings.ToLower(flg.logFormat)
	}

	if changed("quiet") {
		cfg.Quiet = flg.quiet
	}

	if changed("stats") {
		cfg.Stats = flg.stats
	}

	if changed("graph") {
		cfg.GraphPath = flg.graphPath
	}

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := cfg.Logger(stderr)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	obs := newObservers(cfg)
	opts := []processor.Option{processor.WithPipelineOptions(obs.pipelineOptions()...)}

	if len(args) == 0 && !cfg.Quiet {
		opts = append(opts, processor.WithPrompt(stdout, cfg.Prompt))
	}

	coord := processor.New(transform.NewRegistry(), stdout, stderr, opts...)

	if len(args) == 0 {
		stats, err := coord.Run(ctx, stdin)
		obs.report(config.NewLogger("info", cfg.LogFormat, stderr), stats)

		return errors.Wrap(err, "session failed")
	}

	stats, err := coord.RunOnce(ctx, strings.Join(args, " "))
	if err != nil {
		if errors.Is(err, command.ErrUnknownCommand) || errors.Is(err, command.ErrMissingPayload) {
			_, _ = io.WriteString(stderr, "Error: "+err.Error()+"\n")

			return &ExitError{Code: exitFailure}
		}

		return errors.Wrap(err, "request failed")
	}

	obs.report(config.NewLogger("info", cfg.LogFormat, stderr), stats)

	if stats.Failed > 0 {
		return &ExitError{Code: exitFailure}
	}

	return nil
}
