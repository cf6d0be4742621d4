package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"yearprogress/internal/clock"
	"yearprogress/internal/config"
	"yearprogress/internal/formatter"
	"yearprogress/internal/generator"
	"yearprogress/internal/readme"
	"yearprogress/internal/scheduler"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath   string
	templatePath string
	now          string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "yearprogress",
		Short:         "Print the profile README with the current year progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if !opts.verbose && cmd.Name() != "watch" {
				log.SetOutput(io.Discard)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $YEARPROGRESS_CONFIG or "+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&opts.templatePath, "template", "", "Markdown template with {{progress_bar}}, {{progress_percent}}, {{progress_date}}")
	root.PersistentFlags().StringVar(&opts.now, "now", "", "render as of this RFC 3339 instant instead of the system clock")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log to stderr")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newRefreshCmd(opts))
	root.AddCommand(newWatchCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

func newRenderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the README to stdout (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}
}

func newRefreshCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [README.md]",
		Short: "Print an existing README with its year progress line updated",
		Long:  "Reads the README from the given path, or stdin when omitted, and prints it with the line starting with \"⏳ **Year Progress:**\" replaced. The input file is not modified.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, _, err := loadGenerator(opts)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open readme: %w", err)
				}
				defer f.Close()
				in = f
			}
			data, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read readme: %w", err)
			}

			out, err := gen.Refresh(string(data))
			if err != nil {
				return fmt.Errorf("refresh readme: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	var runOnStart bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the README every time the configured cron schedule fires",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, cfg, err := loadGenerator(opts)
			if err != nil {
				return err
			}

			sched := scheduler.NewScheduler(gen, cmd.OutOrStdout())
			if err := sched.Register(cfg.Schedule.Cron); err != nil {
				return err
			}
			log.Printf("[INFO] watching with schedule %q", cfg.Schedule.Cron)

			if runOnStart || cfg.Schedule.RunOnStart {
				sched.RunNow()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			sched.Run(ctx)
			log.Println("[INFO] shutdown signal received, stopped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "render once before the first scheduled run")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "yearprogress %s\n", version)
		},
	}
}

func runRender(cmd *cobra.Command, opts *options) error {
	gen, _, err := loadGenerator(opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), gen.Render())
	return err
}

// loadGenerator reads config, applies flag overrides and wires the pipeline.
func loadGenerator(opts *options) (*generator.Generator, *config.Config, error) {
	path := config.ResolvePath(opts.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if opts.templatePath != "" {
		cfg.Template.Path = opts.templatePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config validation: %w", err)
	}
	log.Printf("[INFO] config loaded from %s", path)

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	tpl := readme.Default()
	if cfg.Template.Path != "" {
		if tpl, err = readme.Load(cfg.Template.Path); err != nil {
			return nil, nil, err
		}
		log.Printf("[INFO] template loaded from %s", cfg.Template.Path)
	}

	clk, err := newClock(opts.now)
	if err != nil {
		return nil, nil, err
	}

	bar := formatter.BarStyle{
		Capacity: cfg.Progress.Capacity,
		Filled:   cfg.Progress.FilledGlyph,
		Empty:    cfg.Progress.EmptyGlyph,
		Open:     cfg.Progress.Open,
		Close:    cfg.Progress.Close,
	}
	f := formatter.New(bar, loc, cfg.Progress.ClampPercent)
	return generator.New(clk, f, tpl), cfg, nil
}

var errBadNow = errors.New("--now must be an RFC 3339 timestamp")

func newClock(now string) (clock.Clock, error) {
	if now == "" {
		return clock.Real{}, nil
	}
	t, err := time.Parse(time.RFC3339, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadNow, err)
	}
	log.Printf("[WARN] clock frozen at %s", t.Format(time.RFC3339))
	return clock.Fixed(t), nil
}
