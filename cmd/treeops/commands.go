package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/taigrr/treeops/internal/config"
	"github.com/taigrr/treeops/internal/filesystem"
	"github.com/taigrr/treeops/internal/logger"
	"github.com/taigrr/treeops/internal/types"
)

var opts struct {
	configPath string
	logLevel   string
	color      string
	quiet      bool
	extension  string
	baseName   string
	yes        bool
}

// loadSettings merges the config file with any flags set on cmd.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	var f config.Flags
	if cmd.Flags().Changed("log-level") {
		f.LogLevel = &opts.logLevel
	}
	if cmd.Flags().Changed("color") {
		f.Color = &opts.color
	}
	if cmd.Flags().Changed("ext") {
		f.Extension = &opts.extension
	}
	if cmd.Flags().Changed("name") {
		f.BaseName = &opts.baseName
	}
	cfg.MergeWithFlags(f)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService builds a Service whose progress goes to stderr so stdout only
// carries results (or the MCP stream). The returned logger shares that
// destination and is silent under --quiet.
func newService(cmd *cobra.Command, cfg *config.Config, root string) (*filesystem.Service, *logger.ConsoleLogger) {
	var w io.Writer
	if !opts.quiet {
		w = cmd.ErrOrStderr()
	}
	log := logger.NewConsoleLogger(w, cfg.LogLevel, cfg.Color)
	return filesystem.New(root, log), log
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&opts.extension, "ext", "e", "", "match files whose path ends with this suffix, e.g. .js")
	cmd.Flags().StringVarP(&opts.baseName, "name", "n", "", "match files whose name without extension equals this")
}

func printResults(w io.Writer, colorMode, header string, paths []string) {
	c := color.New(color.FgGreen)
	switch strings.ToLower(colorMode) {
	case logger.ColorAlways:
		c.EnableColor()
	case logger.ColorNever:
		c.DisableColor()
	}
	c.Fprintf(w, "%s\n", header)
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [dir]",
		Short: "List files matching the filter",
		Long:  "List every file below dir (default \".\") whose extension and/or base name match. With no filter every file is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			svc, _ := newService(cmd, cfg, dir)
			files, err := svc.Find(dir, types.Filter{Extension: cfg.Extension, BaseName: cfg.BaseName})
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), cfg.Color, fmt.Sprintf("Found %d file%s:", len(files), plural(len(files))), files)
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Copy matching files, mirroring directory structure",
		Long: `Copy files matching the filter from src into dst, recreating the source
directory structure. With no filter the entire tree is copied and no
individual files are listed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			sel := types.Select(cfg.Extension, cfg.BaseName)
			svc, _ := newService(cmd, cfg, args[0])
			copied, err := svc.Copy(args[0], args[1], sel)
			if err != nil {
				return err
			}
			if sel.IsWholeTree() {
				printResults(cmd.OutOrStdout(), cfg.Color, fmt.Sprintf("Copied %s to %s", args[0], args[1]), nil)
				return nil
			}
			printResults(cmd.OutOrStdout(), cfg.Color, fmt.Sprintf("Copied %d file%s:", len(copied), plural(len(copied))), copied)
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [dir]",
		Short: "Delete matching files and prune emptied directories",
		Long: `Delete files below dir (default ".") matching the filter and remove any
subdirectory left empty. With no filter dir itself is removed, which
requires --yes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			sel := types.Select(cfg.Extension, cfg.BaseName)
			if sel.IsWholeTree() && !opts.yes {
				return fmt.Errorf("no filter given: this would remove %s entirely; pass --yes to confirm", dir)
			}

			svc, log := newService(cmd, cfg, dir)
			if sel.IsWholeTree() {
				log.LogWarn("Removing entire directory: " + dir)
			}
			deleted, err := svc.Delete(dir, sel)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), cfg.Color, fmt.Sprintf("Deleted %d path%s:", len(deleted), plural(len(deleted))), deleted)
			return nil
		},
	}
	addFilterFlags(cmd)
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "confirm removal of the whole directory when no filter is given")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve [root]",
		Short: "Run an MCP server exposing find, copy and delete",
		Long: `serve runs a Model Context Protocol server over stdio. Tool paths are
resolved inside root (default: config root, then the current directory)
and may not escape it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			root := cfg.Root
			if len(args) > 0 {
				root = args[0]
			}
			if root == "" || root == "." {
				if root, err = os.Getwd(); err != nil {
					return fmt.Errorf("failed to get current directory: %w", err)
				}
			}

			var log *logger.ConsoleLogger
			fileSystem, log = newService(cmd, cfg, root)
			log.LogInfo("Serving MCP over stdio, root: " + fileSystem.Root())

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "treeops",
				Version: version,
			}, nil)
			registerTools(server)

			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return fmt.Errorf("error running server: %w", err)
			}
			return nil
		},
	}
}
