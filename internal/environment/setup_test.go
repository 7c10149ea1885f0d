package environment

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/testutil"
)

func TestSetupWritesConfigAndOrchestrator(t *testing.T) {
	env := testutil.SetupTestEnv(t)

	res, err := Setup(Options{
		Env:          Linux,
		ProjectsPath: env.ProjectsDir,
		VaultPath:    env.VaultDir,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(env.Home, ".dailylog", "config.yaml"), res.ConfigPath)
	assert.True(t, res.OrchestratorCreated)
	assert.False(t, res.ProjectsCreated)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, env.VaultDir, cfg.VaultPath)
	assert.Equal(t, env.ProjectsDir, cfg.Projects.CurrentMachine)
	assert.Equal(t, "linux", cfg.Environment)
	assert.Equal(t, env.VaultDir, cfg.VaultPaths["linux"])

	orchestrator := env.ReadFile(res.OrchestratorPath)
	assert.Contains(t, orchestrator, "## Recent Accomplishments")

	// A second run keeps the existing orchestrator.
	require.NoError(t, os.WriteFile(res.OrchestratorPath, []byte("custom"), 0644))
	res, err = Setup(Options{Env: Linux, ProjectsPath: env.ProjectsDir, VaultPath: env.VaultDir})
	require.NoError(t, err)
	assert.False(t, res.OrchestratorCreated)
	assert.Equal(t, "custom", env.ReadFile(res.OrchestratorPath))
}

func TestSetupProjectsMissing(t *testing.T) {
	env := testutil.SetupTestEnv(t)
	projects := filepath.Join(env.Home, "new-projects")

	_, err := Setup(Options{Env: Linux, ProjectsPath: projects, VaultPath: env.VaultDir})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProjectsMissing))

	res, err := Setup(Options{
		Env:            Linux,
		ProjectsPath:   projects,
		VaultPath:      env.VaultDir,
		ConfigPath:     filepath.Join(env.Home, "cfg", "config.json"),
		CreateProjects: true,
	})
	require.NoError(t, err)
	assert.True(t, res.ProjectsCreated)
	assert.True(t, env.FileExists(filepath.Join(env.Home, "cfg", "config.json")))
}
