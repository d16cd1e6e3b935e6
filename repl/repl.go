/*
File    : notlox/repl/repl.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy

Package repl implements the Read-Eval-Print Loop (REPL) for the NotLox
interpreter. The REPL provides an interactive environment where users can:
- Enter NotLox code line by line against one live interpreter session
- Navigate command history using arrow keys
- Receive colored feedback for banner and informational output

When stdin is an interactive terminal the loop runs on the readline
library for line editing and history. When input is piped in, the banner
and readline are skipped and plain lines are consumed instead, so
`echo 'print 1;' | notlox` behaves like a script.
*/
package repl

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/CesGalaxy/notlox/interp"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: version info
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates the
// visual configuration of the interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
	History string // Path of the persistent history file
}

// NewRepl creates a REPL instance from the banner configuration plus the
// user's config file overrides (see LoadConfig).
func NewRepl(banner, version, line, license string, cfg Config) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Line:    line,
		License: license,
		Prompt:  cfg.Prompt,
		History: cfg.HistoryFile,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
//
// Parameters:
//   - writer: The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | License: "+r.License)
	cyanColor.Fprintln(writer, "Type NotLox code line by line. Enter 'quit' or press Ctrl-D to leave.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until the user quits or input ends. Each line runs
// through the shared session; a bad line reports its diagnostics and the
// error flag is cleared before the next prompt, so the session survives
// mistakes.
//
// Parameters:
//   - reader: Input source; interactive editing is used only when this is
//     a terminal
//   - writer: Destination for the banner and informational output
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	session := interp.NewSession()

	if file, ok := reader.(*os.File); ok && isatty.IsTerminal(file.Fd()) {
		r.startInteractive(session, writer)
		return
	}
	r.startPlain(session, reader)
}

// startInteractive is the terminal loop: banner, readline with history,
// prompt per line.
func (r *Repl) startInteractive(session *interp.Session, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Prompt,
		HistoryFile: r.History,
	})
	if err != nil {
		// Fall back to plain input if the terminal refuses raw mode
		r.startPlain(session, os.Stdin)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			return
		}
		if r.runLine(session, line) {
			return
		}
	}
}

// startPlain is the non-terminal loop: read newline-terminated lines
// until EOF, no prompt, no banner.
func (r *Repl) startPlain(session *interp.Session, reader io.Reader) {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if r.runLine(session, scanner.Text()) {
			return
		}
	}
}

// runLine feeds one line to the session, resetting the syntax-error flag
// afterwards. Returns true when the user asked to quit.
func (r *Repl) runLine(session *interp.Session, line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "quit" {
		return true
	}
	if trimmed != "" {
		session.Run(line)
		session.Diag.Reset()
	}
	return false
}
