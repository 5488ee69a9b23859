package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/pawprint/internal/app"
	"github.com/henri123lemoine/pawprint/internal/config"
	"github.com/henri123lemoine/pawprint/internal/debug"
)

// options holds the global flag values.
type options struct {
	configPath string
	debug      bool
	noMotion   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pawprint",
		Short: "All About Dogs, in your terminal",
		Long: `pawprint shows a tabbed page about dogs: popular breeds, fun facts
and care tips. Switch tabs with 1/2/3 or tab, filter with /.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: "+config.ConfigPath()+")")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log")
	cmd.Flags().BoolVar(&opts.noMotion, "no-motion", false, "skip all animations")

	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// loadConfig loads the config file chosen by --config, or the default one.
func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath != "" {
		return config.LoadFromPath(opts.configPath)
	}
	return config.Load()
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	if opts.debug || cfg.Debug.Enabled {
		path := cfg.Debug.LogFile
		if path == "" {
			path = debug.DefaultLogPath()
		}
		// The debug log never stops the program from starting.
		if err := debug.Enable(path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: debug log disabled: %v\n", err)
		} else {
			defer debug.Close()
			if debug.Path() != path {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s is in use, logging to %s\n", path, debug.Path())
			}
		}
	}
	if opts.noMotion {
		cfg.Animation.Enabled = false
	}

	debug.Log("Starting pawprint %s (theme=%s, motion=%v)", version, cfg.UI.Theme, cfg.Animation.Enabled)

	p := tea.NewProgram(app.New(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	done := debug.Timed("Session")
	finalModel, err := p.Run()
	done()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(app.Model); ok && m.ShouldQuit() {
		debug.Log("Quit")
	}
	return nil
}
