package cmd

import (
	"fmt"

	"srcmerge/pkg/logging"
	"srcmerge/pkg/merge"
	"srcmerge/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is supplied by main via Execute and may be swapped for a
// development logger when --debug is set.
var rootLogger *zap.Logger

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "srcmerge",
	Short: "srcmerge merges source files into a single markdown document",
	Long: `srcmerge walks a directory tree, selects files by extension while skipping
ignored directories and files, optionally minifies their contents, and
concatenates everything into one markdown file for LLM or human consumption.`,
	RunE: runMerge,
}

// Execute runs the root command with the provided logger.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}

func init() {
	f := RootCmd.Flags()
	f.StringP("start_dir", "s", ".", "directory to start the search from")
	f.StringSliceP("ignore", "i", nil, "directory names to ignore")
	f.StringSliceP("ignore_files", "x", nil, "file names to ignore")
	f.BoolP("all_types", "a", false, "include all file types")
	f.StringSliceP("extensions", "e", merge.DefaultConfig().Extensions, "file extensions to include")
	f.StringP("name", "n", "project", "base name of the markdown file to write")
	f.BoolP("minify", "m", false, "minify file contents")
	f.BoolP("tree", "t", false, "prepend a directory tree to the document")
	f.BoolP("debug", "d", false, "enable debug logging")
	f.BoolP("Help", "H", false, "show this help message and exit")
}

// runMerge translates the flag surface into a merge.Config and executes one run.
func runMerge(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	if help, _ := flags.GetBool("Help"); help {
		return cmd.Help()
	}

	if debug, _ := flags.GetBool("debug"); debug {
		logger, err := logging.Setup(true, "srcmerge", version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		rootLogger = logger
	}

	cfg := merge.DefaultConfig()
	cfg.StartDir, _ = flags.GetString("start_dir")
	cfg.IgnoreDirs, _ = flags.GetStringSlice("ignore")
	cfg.IgnoreFiles, _ = flags.GetStringSlice("ignore_files")
	cfg.AllTypes, _ = flags.GetBool("all_types")
	cfg.Extensions, _ = flags.GetStringSlice("extensions")
	cfg.Name, _ = flags.GetString("name")
	cfg.Minify, _ = flags.GetBool("minify")
	cfg.Tree, _ = flags.GetBool("tree")

	if err := merge.Run(cfg, rootLogger); err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	return nil
}
