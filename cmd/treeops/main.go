// Package main implements the treeops command: find, copy and delete files
// in a directory tree by extension and base name, from the shell or as an
// MCP server.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/taigrr/treeops/internal/logger"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treeops",
		Short: "Find, copy and delete files in a directory tree",
		Long: `treeops walks a directory tree and finds, copies or deletes the files
whose extension and/or base name match. Without any filter, copy
duplicates the whole tree and delete removes it.`,
		Example: `treeops find src --ext .js
treeops copy src dist --ext .js
treeops delete build --name index
treeops serve ~/projects`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/treeops/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "progress verbosity: "+strings.Join(logger.Levels, ", "))
	flags.StringVar(&opts.color, "color", "auto", "colored output: auto, always, never")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress lines")

	cmd.AddCommand(
		newFindCmd(),
		newCopyCmd(),
		newDeleteCmd(),
		newServeCmd(),
	)
	return cmd
}
