package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newIconsCmd(opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "Write the themed focused and unfocused SVG for every button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, l, err := opts.load(nil)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			for _, b := range l.Buttons() {
				files := map[string]string{
					fmt.Sprintf("%d-focused.svg", b.Index):   b.Icon.Focused,
					fmt.Sprintf("%d-unfocused.svg", b.Index): b.Icon.Unfocused,
				}
				for name, markup := range files {
					path := filepath.Join(outDir, name)
					if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
						return fmt.Errorf("failed to write icon: %w", err)
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n", b.Index, b.Label)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write the SVG files to")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}
