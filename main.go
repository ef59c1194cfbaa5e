package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"swipedeck/internal/config"
	"swipedeck/internal/domain"
	"swipedeck/internal/eventbus"
	"swipedeck/internal/logging"
	"swipedeck/internal/ui"
)

var version = "dev"

// runOptions holds the flags of the root command
type runOptions struct {
	autoAdvance bool
	interval    time.Duration
	transition  time.Duration
	logFile     string
	logLevel    string
	logFormat   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:           "swipedeck [deck.toml]",
		Short:         "Page through a deck of full-screen pages in the terminal",
		Long:          "Click the right half of the screen to go forward, the left half to go back, or drag to swipe.\nWithout an argument the deck is read from the user config directory.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.autoAdvance, "auto-advance", false, "advance pages on a timer (overrides the deck file)")
	flags.DurationVar(&opts.interval, "interval", 0, "auto-advance interval (overrides the deck file)")
	flags.DurationVar(&opts.transition, "transition", 0, "page transition duration (overrides the deck file)")
	flags.StringVar(&opts.logFile, "log-file", "swipedeck.log", `log file, "-" to disable logging`)
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format (text or json)")

	cmd.AddCommand(newInitCmd())
	return cmd
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [deck.toml]",
		Short: "Write a sample deck file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := config.NewConfigService()
			path := svc.Path()
			if len(args) > 0 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := svc.SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample deck to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *runOptions) error {
	cleanup, err := logging.Init(logging.Options{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		File:   opts.logFile,
	})
	if err != nil {
		return err
	}
	defer cleanup()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	configSvc := config.NewConfigServiceWithBus(bus)
	path := configSvc.Path()
	if len(args) > 0 {
		path = args[0]
	}

	cfg, err := configSvc.LoadFromPath(path)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, cfg, opts); err != nil {
		return err
	}

	model, err := ui.NewModel(cfg.DomainPages(), deckOptions(cfg), bus)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.WithFields(logrus.Fields{"deck": path, "pages": len(cfg.Pages)}).Info("starting deck")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	model.SetProgram(p)

	_, err = p.Run()
	model.Stop()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// applyOverrides applies explicitly set flags on top of the deck file
func applyOverrides(cmd *cobra.Command, cfg *config.Config, opts *runOptions) error {
	flags := cmd.Flags()
	if flags.Changed("auto-advance") {
		cfg.AutoAdvance.Enabled = opts.autoAdvance
	}
	if flags.Changed("interval") {
		cfg.AutoAdvance.Interval = config.Duration{Duration: opts.interval}
	}
	if flags.Changed("transition") {
		cfg.Transition.Duration = config.Duration{Duration: opts.transition}
	}
	return cfg.Validate()
}

// deckOptions maps a deck file onto the container options
func deckOptions(cfg *config.Config) ui.Options {
	return ui.Options{
		Title:              cfg.Title,
		AutoAdvance:        cfg.AutoAdvance.Enabled,
		Interval:           cfg.AutoAdvance.Interval.Duration,
		TransitionDuration: cfg.Transition.Duration.Duration,
		SwipeThreshold:     cfg.Transition.SwipeThreshold,
	}
}

// subscribeLogging writes every domain event to the log
func subscribeLogging(bus eventbus.EventBus) {
	for _, t := range domain.AllEventTypes {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			logrus.WithField("event", e.Type()).Debugf("%+v", e)
		})
	}
}
