package cli

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
	dimColor     = color.New(color.Faint)
)

// startSpinner shows progress on stderr while a scan runs. It is a no-op
// when stderr is not a terminal or quiet is set. The returned func stops it.
func startSpinner(suffix string, quiet bool) func() {
	fd := os.Stderr.Fd()
	if quiet || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return func() {}
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + suffix
	s.Start()
	return s.Stop
}

func printHeader(w io.Writer, format string, a ...interface{}) {
	headerColor.Fprintf(w, format+"\n", a...)
}

func printSuccess(w io.Writer, format string, a ...interface{}) {
	successColor.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarn(w io.Writer, format string, a ...interface{}) {
	warnColor.Fprintf(w, "! "+format+"\n", a...)
}
