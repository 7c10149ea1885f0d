package accomplishments

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"go.uber.org/zap"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/logging"
)

const (
	// DefaultLogFile is the per-project log file name.
	DefaultLogFile = "CLAUDE.md"
	// DefaultAutomationDir is skipped at every depth.
	DefaultAutomationDir = "automation-scripts"
)

// Options configures an Extractor. Zero values select the defaults.
type Options struct {
	LogFile       string
	AutomationDir string
	// Ignore holds glob patterns for directories to skip, matched against the
	// directory name and its slash-separated path relative to the root.
	Ignore []string
	Logger *zap.Logger
}

// Extractor finds project log files and extracts their accomplishments.
type Extractor struct {
	logFile       string
	automationDir string
	ignore        []glob.Glob
	logger        *zap.Logger
}

// NewExtractor creates an Extractor. Invalid ignore patterns are reported
// as an error.
func NewExtractor(opts Options) (*Extractor, error) {
	e := &Extractor{
		logFile:       opts.LogFile,
		automationDir: opts.AutomationDir,
		logger:        logging.OrNop(opts.Logger),
	}
	if e.logFile == "" {
		e.logFile = DefaultLogFile
	}
	if e.automationDir == "" {
		e.automationDir = DefaultAutomationDir
	}

	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		e.ignore = append(e.ignore, g)
	}

	return e, nil
}

// LogFile returns the log file name the extractor looks for.
func (e *Extractor) LogFile() string {
	return e.logFile
}

// FindLogFiles returns the log files below root in lexical walk order.
func (e *Extractor) FindLogFiles(root string) ([]string, error) {
	root = filepath.Clean(root)
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("projects root: %w", err)
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			e.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && e.skipDir(root, path, d.Name()) {
				return fs.SkipDir
			}
			return nil
		}

		if d.Name() == e.logFile && filepath.Dir(path) != root {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

func (e *Extractor) skipDir(root, path, name string) bool {
	if strings.HasPrefix(name, ".") || name == e.automationDir {
		return true
	}
	if len(e.ignore) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = name
	}
	rel = filepath.ToSlash(rel)
	for _, g := range e.ignore {
		if g.Match(name) || g.Match(rel) {
			return true
		}
	}
	return false
}

// Extract returns all records dated target from the log files below root.
// A file that cannot be read is logged and contributes nothing.
func (e *Extractor) Extract(root string, target time.Time) ([]Record, error) {
	files, err := e.FindLogFiles(root)
	if err != nil {
		return nil, err
	}

	var all []Record
	for _, path := range files {
		records, err := e.ExtractFile(path, target)
		if err != nil {
			e.logger.Warn("failed to parse log file", zap.String("path", path), zap.Error(err))
			continue
		}
		if len(records) > 0 {
			e.logger.Debug("found accomplishments",
				zap.String("project", records[0].Project),
				zap.Int("count", len(records)))
		}
		all = append(all, records...)
	}

	return all, nil
}

// ExtractFile extracts the records dated target from a single log file. The
// project is the name of the file's parent directory.
func (e *Extractor) ExtractFile(path string, target time.Time) ([]Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	project := filepath.Base(filepath.Dir(path))
	return ParseSection(project, string(content), target), nil
}
