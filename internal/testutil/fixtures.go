package testutil

import "fmt"

// ProjectLog returns a CLAUDE.md whose accomplishments section holds entries.
func ProjectLog(name string, entries string) string {
	return fmt.Sprintf(`# CLAUDE.md

This file provides guidance for %s.

## Overview

Some description.

## Recent Accomplishments

*Log major tasks, features, and fixes with timestamps for daily log automation*

%s
## Commands

- make build
`, name, entries)
}

// LegacyLog returns a CLAUDE.md without any accomplishment sections.
func LegacyLog(name string) string {
	return fmt.Sprintf(`# %s

This file provides guidance to Claude Code.

Project description.

## Build

- go build ./...

## Conventions

- gofmt
`, name)
}
