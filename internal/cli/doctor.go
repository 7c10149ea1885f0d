package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/dailynote"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/inject"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check dailylog configuration health",
	Long:  `Runs diagnostic checks on the configuration, vault and projects root and reports pass/fail for each.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, failed := doctor(cmd.OutOrStdout(), time.Now())
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func doctor(w io.Writer, now time.Time) (passed, failed int) {
	check := func(name string, ok bool, detail string) {
		if ok {
			successColor.Fprintf(w, "  ✓ %s\n", name)
			passed++
		} else {
			failColor.Fprintf(w, "  ✗ %s", name)
			fmt.Fprintf(w, ": %s\n", detail)
			failed++
		}
	}

	// Configuration
	fmt.Fprintln(w, "Configuration:")
	path := configFilePath()
	check("config file "+path, exists(path), "run: dailylog setup")

	cfg, err := loadConfig(config.Overrides{})
	if err != nil {
		check("config readable", false, err.Error())
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Results: %d passed, %d failed\n", passed, failed)
		return passed, failed
	}
	check("config readable", true, "")

	// Vault
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Obsidian vault:")
	vault, err := dailynote.OpenVault(cfg.VaultPath, cfg.DailyNoteFormat)
	check("vault "+cfg.VaultPath, err == nil, fmt.Sprintf("set obsidian_vault_path or $%s", config.VaultEnvVar))
	if vault != nil {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		fmt.Fprintf(w, "  → today's note: %s\n", dimColor.Sprint(vault.NotePath(today)))
	}

	// Projects
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Projects:")
	root, err := cfg.ProjectsRoot()
	if err != nil {
		check("projects root", false, err.Error())
	} else {
		check("projects root "+root, exists(root), "set projects.current_machine or pass --root")
	}

	ex, err := newExtractor(cfg)
	check("ignore patterns", err == nil, fmt.Sprint(err))
	if err == nil && root != "" && exists(root) {
		files, err := ex.FindLogFiles(root)
		check(ex.LogFile()+" files readable", err == nil, fmt.Sprint(err))

		missing := 0
		for _, f := range files {
			content, err := os.ReadFile(f)
			if err != nil || !inject.HasAccomplishmentSection(string(content)) {
				missing++
			}
		}
		fmt.Fprintf(w, "  → %d log file(s), %d without an accomplishments section\n", len(files), missing)
		if missing > 0 {
			fmt.Fprintln(w, "    run: dailylog inject")
		}
	}

	// Summary
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Results: %d passed, %d failed\n", passed, failed)
	return passed, failed
}
