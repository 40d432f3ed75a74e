package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/templaro-dev/templaro"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "templaro",
		Short: "Namespaced template path resolution",
		Long: `Templaro resolves symbolic template names to verified paths.

A name is either plain ("pages/index.htm") or namespaced
("@admin/form.htm"); each namespace searches an ordered list of
directories and the first match wins. Traversal attempts are rejected
and repeated lookups are served from cache.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		resolveCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// registerPaths applies repeated --path flags of the form "ns=dir".
// A bare "dir" registers under the default namespace.
func registerPaths(loader *templaro.Loader, pathFlags []string) error {
	for _, entry := range pathFlags {
		ns, dir, ok := strings.Cut(entry, "=")
		if !ok {
			ns, dir = templaro.DefaultNamespace, entry
		}
		if err := loader.AddPath(ns, dir); err != nil {
			return err
		}
	}
	return nil
}
