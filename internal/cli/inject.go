package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/inject"
)

var injectCmd = &cobra.Command{
	Use:   "inject",
	Short: "Add accomplishment logging sections to project log files",
	Long: `Adds the "## Recent Accomplishments" and "## Accomplishment Logging Guidelines"
sections to every project log file below the projects root that lacks them.
Files that already have an accomplishments section are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInject,
}

var injectRoot string

func init() {
	injectCmd.Flags().StringVar(&injectRoot, "root", "", "Projects root to scan (overrides config)")
}

func runInject(cmd *cobra.Command, args []string) error {
	return injectLogs(cmd.OutOrStdout(), injectRoot, time.Now())
}

func injectLogs(w io.Writer, root string, now time.Time) error {
	cfg, err := loadConfig(config.Overrides{ProjectsRoot: root})
	if err != nil {
		return err
	}

	root, err = cfg.ProjectsRoot()
	if err != nil {
		return fmt.Errorf("failed to resolve projects root: %w", err)
	}

	ex, err := newExtractor(cfg)
	if err != nil {
		return err
	}

	printHeader(w, "Updating %s files in %s", ex.LogFile(), root)

	res, err := inject.Run(ex, root, now, logger)
	if err != nil {
		return err
	}

	for _, path := range res.Updated {
		printSuccess(w, "Updated %s", projectName(path))
	}
	for _, path := range res.Failed {
		printWarn(w, "Failed %s", projectName(path))
	}

	fmt.Fprintf(w, "\n%d of %d file(s) updated", len(res.Updated), len(res.Files))
	if n := len(res.Failed); n > 0 {
		fmt.Fprintf(w, ", %d failed", n)
	}
	fmt.Fprintln(w)
	return nil
}

func projectName(logPath string) string {
	return filepath.Base(filepath.Dir(logPath))
}
