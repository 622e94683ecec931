package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"spree/internal/debug"
	"spree/internal/version"
	"spree/pkg/config"
	"spree/pkg/gui/icons"
	"spree/pkg/gui/tui"
	"spree/pkg/launcher"
)

type rootOptions struct {
	configPath  string
	dryRun      bool
	showVersion bool
	nerdFonts   bool
}

// resolvedConfigPath returns the --config value or the default location.
func (o *rootOptions) resolvedConfigPath() (string, error) {
	if o.configPath != "" {
		return o.configPath, nil
	}
	return config.DefaultPath()
}

// load reads, validates and themes the configuration.
func (o *rootOptions) load(exit func(int)) (*config.Config, *launcher.Launcher, error) {
	path, err := o.resolvedConfigPath()
	if err != nil {
		return nil, nil, err
	}
	debug.Log("Loading configuration from %s", path)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	l, err := launcher.New(cfg, launcher.Options{DryRun: o.dryRun, Exit: exit})
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}

func runMenu(opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("spree needs an interactive terminal")
	}

	logger := debug.InitDebugLogger()
	exit := func(code int) {
		logger.Close()
		os.Exit(code)
	}

	_, l, err := opts.load(exit)
	if err != nil {
		debug.Log("Startup failed: %v", err)
		logger.Close()
		return err
	}
	if opts.dryRun {
		debug.Log("Dry run: commands will be logged, not started")
	}

	err = tui.New().Run(l)
	logger.Close()
	return err
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "spree",
		Short: "A configurable power and session menu for the terminal",
		Long: `Spree shows a row of buttons read from a TOML file and runs the command
bound to the one you pick.

Move between buttons with Tab/Shift-Tab, h/l or the arrow keys (each style
can be switched off in the config), jump with a button's hotkey and press
Enter to run it. Esc or Ctrl-C leaves.

The configuration is read from $XDG_CONFIG_HOME/spree/config.toml or
~/.config/spree/config.toml unless --config is given.

Examples:
  spree                       # Show the menu
  spree --dry-run             # Log commands instead of running them
  spree check                 # Validate the configuration
  spree icons --out /tmp/ic   # Export themed SVG icons`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if cmd.Flags().Changed("nerd-fonts") {
				icons.SetNerdFonts(opts.nerdFonts)
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if opts.showVersion {
				fmt.Println(version.Long())
				return nil
			}
			return runMenu(opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&opts.nerdFonts, "nerd-fonts", false, "Force Nerd Font glyphs on or off")
	rootCmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "d", false, "Log button commands instead of running them")
	rootCmd.Flags().BoolVarP(&opts.showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(newCheckCmd(opts), newIconsCmd(opts))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
