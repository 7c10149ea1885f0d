package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/accomplishments"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/dailynote"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Write the day's accomplishments into the Obsidian daily note",
	Long: `Scans the projects root for log files, extracts the accomplishments dated
--date (default today) and writes them into the "## Development Work" section of
that day's daily note. The note is created from the daily template when missing.

With --input, records are read from a file written by "dailylog parse --json"
instead of scanning.`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

type dailyOptions struct {
	Date   string
	Vault  string
	Output string
	Root   string
	Input  string
	Quiet  bool
}

var dailyOpts dailyOptions

func init() {
	dailyCmd.Flags().StringVar(&dailyOpts.Date, "date", "", "Date to process (YYYY-MM-DD, default today)")
	dailyCmd.Flags().StringVar(&dailyOpts.Vault, "vault", "", "Obsidian vault root (overrides config)")
	dailyCmd.Flags().StringVarP(&dailyOpts.Output, "output", "o", "", "Write to this note path instead of the vault's daily note")
	dailyCmd.Flags().StringVar(&dailyOpts.Root, "root", "", "Projects root to scan (overrides config)")
	dailyCmd.Flags().StringVarP(&dailyOpts.Input, "input", "i", "", "Read records from a JSON or YAML file instead of scanning")
	dailyCmd.Flags().BoolVarP(&dailyOpts.Quiet, "quiet", "q", false, "Only print errors")
}

func runDaily(cmd *cobra.Command, args []string) error {
	return daily(cmd.OutOrStdout(), dailyOpts)
}

func daily(w io.Writer, opts dailyOptions) error {
	if opts.Quiet {
		w = io.Discard
	}

	date, err := targetDate(opts.Date)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(config.Overrides{VaultPath: opts.Vault, ProjectsRoot: opts.Root})
	if err != nil {
		return err
	}

	printHeader(w, "Processing accomplishments for %s", date.Format(accomplishments.DateLayout))

	notePath := opts.Output
	if notePath == "" {
		vault, err := dailynote.OpenVault(cfg.VaultPath, cfg.DailyNoteFormat)
		if err != nil {
			if errors.Is(err, dailynote.ErrVaultNotFound) {
				printWarn(w, "Set obsidian_vault_path in the config, $%s, or pass --vault", config.VaultEnvVar)
			}
			return err
		}
		notePath = vault.NotePath(date)
	}

	records, err := collectRecords(cfg, opts.Input, date, opts.Quiet)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(w, "No accomplishments found for %s\n", date.Format(accomplishments.DateLayout))
	} else {
		fmt.Fprintf(w, "Found %d accomplishment(s) across %d project(s)\n",
			len(records), len(accomplishments.GroupByProject(records)))
	}

	outcome, err := dailynote.Merge(notePath, accomplishments.RenderNote(records), date)
	if err != nil {
		return err
	}

	logger.Debug("daily note written",
		zap.String("path", outcome.Path),
		zap.String("action", string(outcome.Action)))

	switch outcome.Action {
	case dailynote.Created:
		printSuccess(w, "Created daily note: %s", dimColor.Sprint(outcome.Path))
	default:
		printSuccess(w, "Updated daily note: %s", dimColor.Sprint(outcome.Path))
	}
	return nil
}

// collectRecords reads the records dated date from input when given,
// otherwise scans the configured projects root for them.
func collectRecords(cfg *config.Config, input string, date time.Time, quiet bool) ([]accomplishments.Record, error) {
	if input != "" {
		records, err := accomplishments.Load(input)
		if err != nil {
			return nil, err
		}
		logger.Debug("records loaded", zap.String("input", input), zap.Int("count", len(records)))

		dated := accomplishments.OnDate(records, date)
		if skipped := len(records) - len(dated); skipped > 0 {
			logger.Warn("ignoring records dated another day",
				zap.String("input", input),
				zap.String("date", date.Format(accomplishments.DateLayout)),
				zap.Int("skipped", skipped))
		}
		return dated, nil
	}

	root, err := cfg.ProjectsRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve projects root: %w", err)
	}

	ex, err := newExtractor(cfg)
	if err != nil {
		return nil, err
	}

	stop := startSpinner("Scanning "+root, quiet)
	records, err := ex.Extract(root, date)
	stop()
	return records, err
}
