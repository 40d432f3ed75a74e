package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templaro-dev/templaro"
)

func resolveCmd() *cobra.Command {
	var (
		rootDir   string
		ext       string
		pathFlags []string
		probe     bool
	)

	cmd := &cobra.Command{
		Use:   "resolve [flags] NAME...",
		Short: "Resolve template names to paths",
		Long: `Resolve one or more template names against the registered
directories and print the resulting paths.

Examples:
  templaro resolve --path views pages/index.htm
  templaro resolve --path admin=views/admin "@admin/form.htm"
  templaro resolve --probe --path views maybe/missing.htm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := templaro.DefaultConfig()
			cfg.RootDir = rootDir
			if ext != "" {
				cfg.DefaultExtension = ext
			}

			loader, err := templaro.New(cfg)
			if err != nil {
				return err
			}
			if err := registerPaths(loader, pathFlags); err != nil {
				return err
			}

			for _, name := range args {
				if probe {
					if path, ok := loader.Probe(name); ok {
						fmt.Printf("%s\t%s\n", name, path)
					} else {
						fmt.Printf("%s\tnot found\n", name)
					}
					continue
				}

				path, err := loader.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", name, path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rootDir, "root", "", "Base directory for relative template paths (default: working directory)")
	cmd.Flags().StringVar(&ext, "ext", "", "Default template extension (default: htm)")
	cmd.Flags().StringArrayVar(&pathFlags, "path", nil, "Template directory, repeatable, as \"dir\" or \"namespace=dir\"")
	cmd.Flags().BoolVar(&probe, "probe", false, "Report misses as \"not found\" instead of failing")

	return cmd
}
