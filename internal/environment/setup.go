package environment

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/config"
)

// ErrProjectsMissing is returned when the projects directory does not exist
// and Setup was not asked to create it.
var ErrProjectsMissing = errors.New("projects directory does not exist")

// Options configures Setup.
type Options struct {
	Env            Kind
	ProjectsPath   string
	VaultPath      string
	ConfigPath     string // defaults to config.GlobalConfigPath()
	CreateProjects bool
}

// Result reports what Setup wrote.
type Result struct {
	ConfigPath          string
	OrchestratorPath    string
	OrchestratorCreated bool
	ProjectsCreated     bool
}

// Setup writes the configuration for this machine and an orchestrator log
// file at the projects root.
func Setup(opts Options) (*Result, error) {
	res := &Result{ConfigPath: opts.ConfigPath}
	if res.ConfigPath == "" {
		res.ConfigPath = config.GlobalConfigPath()
	}

	if _, err := os.Stat(opts.ProjectsPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat projects directory: %w", err)
		}
		if !opts.CreateProjects {
			return nil, fmt.Errorf("%w: %s", ErrProjectsMissing, opts.ProjectsPath)
		}
		if err := os.MkdirAll(opts.ProjectsPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create projects directory: %w", err)
		}
		res.ProjectsCreated = true
	}

	if err := config.Save(res.ConfigPath, NewConfig(opts.Env, opts.ProjectsPath, opts.VaultPath)); err != nil {
		return nil, err
	}

	res.OrchestratorPath = filepath.Join(opts.ProjectsPath, config.DefaultLogFile)
	if _, err := os.Stat(res.OrchestratorPath); os.IsNotExist(err) {
		if err := os.WriteFile(res.OrchestratorPath, []byte(orchestratorLog(opts.ProjectsPath)), 0644); err != nil {
			return nil, fmt.Errorf("failed to write orchestrator: %w", err)
		}
		res.OrchestratorCreated = true
	}

	return res, nil
}

// NewConfig builds the configuration written by setup.
func NewConfig(env Kind, projectsPath, vaultPath string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.VaultPath = vaultPath
	cfg.Environment = string(env)
	cfg.Projects.CurrentMachine = projectsPath
	cfg.VaultPaths = map[string]string{string(env): vaultPath}
	return cfg
}

func orchestratorLog(projectsPath string) string {
	return `# CLAUDE.md - Projects Orchestrator

This file provides guidance to Claude Code for managing automation across all projects in this directory.

## Purpose

This is the main orchestrator CLAUDE.md that manages:
- Cross-project accomplishment tracking
- Daily log generation for Obsidian
- Standardization of project CLAUDE.md files

## Recent Accomplishments

*Orchestrator-level accomplishments and automation improvements*

## Daily Automation Commands

### Update All Project CLAUDE.md Files
` + "```bash" + `
dailylog inject --root "` + projectsPath + `"
` + "```" + `

### Parse Daily Accomplishments
` + "```bash" + `
dailylog parse --root "` + projectsPath + `"
` + "```" + `

### Generate Obsidian Daily Note
` + "```bash" + `
dailylog daily --root "` + projectsPath + `"
` + "```" + `

## Setup Complete

The automation system is now configured for this machine. Run the daily command at the end of each day to update your Obsidian vault with accomplishments from all projects.
`
}
