package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/accomplishments"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Print the accomplishments logged for a day",
	Long: `Extracts the accomplishments dated --date (default today) from every project
log file below the projects root and prints them grouped by project.

With --json the records are also written to a file that "dailylog daily --input"
can read back. The format follows the file extension unless --format is given.`,
	Args: cobra.NoArgs,
	RunE: runParse,
}

type parseOptions struct {
	Date   string
	Root   string
	Output string
	Format string
	Quiet  bool
}

var parseOpts parseOptions

func init() {
	parseCmd.Flags().StringVar(&parseOpts.Date, "date", "", "Date to extract (YYYY-MM-DD, default today)")
	parseCmd.Flags().StringVar(&parseOpts.Root, "root", "", "Projects root to scan (overrides config)")
	parseCmd.Flags().StringVar(&parseOpts.Output, "json", "", "Write records to this file")
	parseCmd.Flags().StringVar(&parseOpts.Format, "format", "", "Record file format: json or yaml")
	parseCmd.Flags().BoolVarP(&parseOpts.Quiet, "quiet", "q", false, "Do not print the report")
}

func runParse(cmd *cobra.Command, args []string) error {
	return parse(cmd.OutOrStdout(), parseOpts)
}

func parse(w io.Writer, opts parseOptions) error {
	date, err := targetDate(opts.Date)
	if err != nil {
		return err
	}

	// Resolve the format before scanning
	var format accomplishments.Format
	if opts.Format != "" {
		if format, err = accomplishments.ParseFormat(opts.Format); err != nil {
			return err
		}
	} else if opts.Output != "" {
		format = accomplishments.FormatForPath(opts.Output)
	}

	cfg, err := loadConfig(config.Overrides{ProjectsRoot: opts.Root})
	if err != nil {
		return err
	}

	records, err := collectRecords(cfg, "", date, opts.Quiet)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		printHeader(w, "Accomplishments for %s", date.Format(accomplishments.DateLayout))
		fmt.Fprintln(w, accomplishments.RenderConsole(records))
	}

	if opts.Output == "" {
		return nil
	}

	if err := accomplishments.SaveAs(opts.Output, records, format); err != nil {
		return err
	}
	if !opts.Quiet {
		printSuccess(w, "Saved %d record(s) to %s", len(records), opts.Output)
	}
	return nil
}
