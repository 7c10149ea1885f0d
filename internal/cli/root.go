package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/accomplishments"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/logging"
)

var (
	verbose bool
	cfgFile string
	logger  *zap.Logger
	rootCmd *cobra.Command
)

func init() {
	logger = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:   "dailylog",
		Short: "Collect project accomplishments into Obsidian daily notes",
		Long: `dailylog scans your projects for CLAUDE.md files, extracts the accomplishments
logged for a day and writes them into the Development Work section of that day's
Obsidian daily note.

Run "dailylog setup" once per machine, then "dailylog daily" at the end of the day.`,
		PersistentPreRunE: setupLogger,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.dailylog/config.yaml)")
}

// Execute runs the root command
func Execute(version string) error {
	// Add subcommands here to ensure proper initialization order
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)

	rootCmd.Version = version
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func setupLogger(cmd *cobra.Command, args []string) error {
	l, err := logging.New(verbose)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// loadConfig loads the configuration named by --config (or the global one)
// and applies command line overrides.
func loadConfig(o config.Overrides) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	o.Apply(cfg)
	logger.Debug("config loaded",
		zap.String("vault", cfg.VaultPath),
		zap.String("projects", cfg.Projects.CurrentMachine))
	return cfg, nil
}

func newExtractor(cfg *config.Config) (*accomplishments.Extractor, error) {
	return accomplishments.NewExtractor(accomplishments.Options{
		LogFile:       cfg.Extract.LogFile,
		AutomationDir: cfg.Extract.AutomationDir,
		Ignore:        cfg.Extract.Ignore,
		Logger:        logger,
	})
}

// targetDate parses a YYYY-MM-DD flag value; empty means today.
func targetDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := accomplishments.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return d, nil
}
