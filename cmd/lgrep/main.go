package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dl/lgrep/internal/cli"
)

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	var cfg cli.Config
	var context int
	exit := 0

	cmd := &cobra.Command{
		Use:          "lgrep [flags] PATTERN [PATH...]",
		Short:        "Search files for lines matching a regular expression",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		Long: `lgrep streams each file line by line and prints lines matching PATTERN,
optionally with surrounding context. With no PATH, the current directory
is searched recursively.`,
		RunE: func(c *cobra.Command, args []string) error {
			cfg.Pattern = args[0]
			cfg.Paths = args[1:]
			if c.Flags().Changed("context") {
				cfg.After = context
				cfg.Before = context
			}
			exit = cli.Run(cfg)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&cfg.After, "after-context", "A", 0, "print N lines of trailing context")
	fl.IntVarP(&cfg.Before, "before-context", "B", 0, "print N lines of leading context")
	fl.IntVarP(&context, "context", "C", 0, "print N lines of leading and trailing context")
	fl.BoolVarP(&cfg.Color, "color", "c", false, "highlight matching text")
	fl.BoolVarP(&cfg.Hidden, "hidden", "h", false, "search hidden files and directories")
	fl.BoolVarP(&cfg.IgnoreCase, "ignore-case", "i", false, "case-insensitive matching")
	fl.BoolVar(&cfg.NoHeading, "no-heading", false, "print the filename on every line instead of grouping by file")
	fl.BoolVarP(&cfg.Fixed, "fixed", "F", false, "treat PATTERN as a literal string")
	fl.BoolVarP(&cfg.PCRE, "pcre", "P", false, "use the PCRE2 regex engine")
	fl.BoolVar(&cfg.NoIgnore, "no-ignore", false, "do not respect .gitignore files")
	// -h is taken by --hidden; registering --help ourselves stops cobra from
	// claiming the shorthand.
	fl.Bool("help", false, "help for lgrep")

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return exit
}
