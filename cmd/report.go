package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/commit-weekday/internal/config"
	"github.com/naka-gawa/commit-weekday/internal/gateway"
	"github.com/naka-gawa/commit-weekday/internal/render"
	"github.com/naka-gawa/commit-weekday/internal/selfcheck"
	"github.com/naka-gawa/commit-weekday/internal/usecase"
)

func runReport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(os.Stderr)
	}

	if runTests, _ := cmd.Flags().GetBool("runTests"); runTests {
		return selfcheck.Run(ctx, out, logger)
	}
	repo, user := args[0], args[1]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Printf("Reporting on %s/%s over %d weeks (sort=%s, list=%t, format=%s)", user, repo, cfg.Weeks, cfg.Sort, cfg.UseList, cfg.Format)

	githubGateway, err := gateway.NewGitHubGateway(cfg.APIURL, nil, logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	reporter := usecase.NewReporter(githubGateway, logger)

	switch cfg.Format {
	case config.FormatTable, config.FormatJSON:
		report, err := reporter.Report(ctx, user, repo, cfg.Weeks, cfg.SortOrder())
		if err != nil {
			return err
		}
		if cfg.Format == config.FormatJSON {
			return render.JSON(out, report)
		}
		return render.Table(out, report, cfg.UseList)
	default:
		if cfg.UseList {
			lines, err := reporter.RankedWeekdays(ctx, user, repo, cfg.Weeks, cfg.SortOrder())
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, lines)
			return err
		}
		best, err := reporter.BestWeekday(ctx, user, repo, cfg.Weeks)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, best)
		return err
	}
}

// loadConfig layers explicitly set flags over the config file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("weeks") {
		cfg.Weeks, _ = flags.GetInt("weeks")
	}
	if flags.Changed("useList") {
		cfg.UseList, _ = flags.GetBool("useList")
	}
	if flags.Changed("sort") {
		cfg.Sort, _ = flags.GetString("sort")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("api-url") {
		cfg.APIURL, _ = flags.GetString("api-url")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
