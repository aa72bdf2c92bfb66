// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/naka-gawa/commit-weekday/internal/config"
)

// NewRootCommand builds the commit-weekday command with all of its flags.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "commit-weekday <repo> <user>",
		Short: "Reports which weekdays a GitHub repository gets the most commits on.",
		Long: `commit-weekday reads the weekly commit activity GitHub keeps for a repository
and prints the weekday with the highest average number of commits, or every
weekday ranked by its average, over the last N weeks.`,
		Example: `  commit-weekday hello-world octocat
  commit-weekday hello-world octocat --weeks 12 --useList --sort asc
  commit-weekday --runTests`,
		Args:          validateArgs,
		RunE:          runReport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.Flags().Int("weeks", config.DefaultWeeks, "Number of trailing weeks of commit history to check")
	rootCmd.Flags().Bool("useList", config.DefaultUseList, "Print every weekday ranked by average instead of only the top one")
	rootCmd.Flags().String("sort", config.DefaultSort, "Order of the weekday list (asc or desc)")
	rootCmd.Flags().Bool("runTests", false, "Run the built-in scenario suite instead of a live report")
	rootCmd.Flags().String("format", config.DefaultFormat, "Output format (text, table or json)")
	rootCmd.Flags().String("config", "", "Path to a config file (default .commit-weekday.yaml in CWD or $HOME)")
	rootCmd.Flags().String("api-url", config.DefaultAPIURL, "GitHub API base URL (default https://api.github.com/)")

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	runTests, _ := cmd.Flags().GetBool("runTests")
	if runTests {
		return nil
	}
	if len(args) != 2 {
		return fmt.Errorf("expected <repo> <user>, got %d argument(s)", len(args))
	}
	return nil
}
