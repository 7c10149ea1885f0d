package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/environment"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure dailylog for this machine",
	Long: `Detects the environment (WSL, Linux, macOS or Windows), proposes the projects
and Obsidian vault locations, writes the config file and creates an orchestrator
CLAUDE.md at the projects root.

Without --yes every value is confirmed interactively.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

type setupOptions struct {
	Projects string
	Vault    string
	Yes      bool
	Force    bool
}

var setupOpts setupOptions

func init() {
	setupCmd.Flags().StringVar(&setupOpts.Projects, "projects", "", "Projects directory")
	setupCmd.Flags().StringVar(&setupOpts.Vault, "vault", "", "Obsidian vault root")
	setupCmd.Flags().BoolVarP(&setupOpts.Yes, "yes", "y", false, "Accept detected defaults without prompting")
	setupCmd.Flags().BoolVar(&setupOpts.Force, "force", false, "Overwrite an existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	return setup(cmd.InOrStdin(), cmd.OutOrStdout(), environment.Detect(), setupOpts)
}

func setup(in io.Reader, w io.Writer, env environment.Kind, opts setupOptions) error {
	configPath := configFilePath()

	if exists(configPath) && !opts.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	p := &prompter{in: bufio.NewReader(in), w: w, yes: opts.Yes}

	printHeader(w, "dailylog setup")
	fmt.Fprintf(w, "Detected environment: %s\n\n", env)

	defaults := environment.DefaultPaths(env, environment.Username())

	projects := opts.Projects
	if projects == "" {
		projects = p.ask("Projects directory", defaults.Projects)
	}
	if projects == "" {
		return fmt.Errorf("a projects directory is required (use --projects)")
	}
	projects = config.ExpandHome(projects)

	vault := opts.Vault
	if vault == "" {
		suggested, found := environment.FindVault(defaults)
		if found {
			fmt.Fprintf(w, "Found Obsidian vault: %s\n", suggested)
		} else {
			suggested = defaults.Vault
		}
		vault = p.ask("Obsidian vault path", suggested)
	}
	if vault == "" {
		return fmt.Errorf("a vault path is required (use --vault)")
	}
	vault = config.ExpandHome(vault)

	createProjects := false
	if !exists(projects) {
		createProjects = p.confirm(fmt.Sprintf("Projects directory %s does not exist. Create it?", projects))
	}

	res, err := environment.Setup(environment.Options{
		Env:            env,
		ProjectsPath:   projects,
		VaultPath:      vault,
		ConfigPath:     configPath,
		CreateProjects: createProjects,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	if res.ProjectsCreated {
		printSuccess(w, "Created projects directory: %s", projects)
	}
	printSuccess(w, "Wrote config: %s", res.ConfigPath)
	if res.OrchestratorCreated {
		printSuccess(w, "Created orchestrator: %s", res.OrchestratorPath)
	} else {
		fmt.Fprintf(w, "  Orchestrator already present: %s\n", res.OrchestratorPath)
	}
	if !exists(vault) {
		printWarn(w, "Vault %s does not exist yet; \"dailylog daily\" will fail until it does", vault)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  dailylog inject   # add accomplishment sections to project CLAUDE.md files")
	fmt.Fprintln(w, "  dailylog daily    # write today's accomplishments to Obsidian")
	return nil
}

// prompter reads answers line by line. With yes set every question takes
// its default.
type prompter struct {
	in  *bufio.Reader
	w   io.Writer
	yes bool
}

func (p *prompter) ask(question, def string) string {
	if p.yes {
		return def
	}
	if def != "" {
		fmt.Fprintf(p.w, "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(p.w, "%s: ", question)
	}

	line, _ := p.in.ReadString('\n')
	if answer := strings.TrimSpace(line); answer != "" {
		return answer
	}
	return def
}

func (p *prompter) confirm(question string) bool {
	if p.yes {
		return true
	}
	fmt.Fprintf(p.w, "%s [Y/n]: ", question)

	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	}
	return false
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
