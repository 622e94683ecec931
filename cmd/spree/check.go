package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"spree/pkg/config"
	"spree/pkg/nav"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := opts.resolvedConfigPath()
			if err != nil {
				return err
			}
			cfg, l, err := opts.load(nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: OK\n", path)
			fmt.Fprintf(out, "navigation: %s\n", describeModes(l.Modes()))

			buttons := l.Buttons()
			hotkeys := make([]nav.Hotkey, len(buttons))
			for i, b := range buttons {
				hotkeys[i] = b.Hotkey
				key := "-"
				if b.Hotkey.HasKey {
					key = fmt.Sprintf("%q", b.Hotkey.Key)
				}
				fmt.Fprintf(out, "  #%d %-10s key %-5s %s\n", b.Index, b.Label, key, strings.Join(b.Command, " "))
			}

			for _, w := range cfg.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			for _, d := range config.DuplicateHotkeys(hotkeys) {
				fmt.Fprintf(out, "warning: %s\n", d)
			}
			return nil
		},
	}
}

func describeModes(m nav.Modes) string {
	var modes []string
	if m.Tab {
		modes = append(modes, "tab")
	}
	if m.Vim {
		modes = append(modes, "vim")
	}
	if m.Arrow {
		modes = append(modes, "arrow")
	}
	if len(modes) == 0 {
		return "hotkeys only"
	}
	return strings.Join(modes, ", ")
}
