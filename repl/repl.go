/*
File   : glox/repl/repl.go
Package: repl
*/

// Package repl implements the Lox interactive prompt: read a line, run it
// through the same lexer -> parser -> resolver -> interpreter pipeline
// cmd/lox uses for a file, print whatever it produced, repeat. The
// interpreter's globals persist across lines in one session, the way a
// REPL is expected to behave; the host's error flags are reset before
// each line.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxlang/glox/ast"
	"github.com/loxlang/glox/host"
	"github.com/loxlang/glox/interpreter"
	"github.com/loxlang/glox/lexer"
	"github.com/loxlang/glox/parser"
	"github.com/loxlang/glox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured interactive session. Construct one with NewRepl
// and call Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner and prompt configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to glox!")
	cyanColor.Fprintf(writer, "%s\n", "Type a line of Lox and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Ctrl-D, Ctrl-C or '.exit' quits.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the read-eval-print loop until EOF, Ctrl-C, '.exit', or a
// fatal readline error. reader is unused -- readline drives stdin directly --
// and is kept so Start's signature mirrors the teacher's.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	h := host.New(writer)
	interp := interpreter.New(h, writer)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C: end the session cleanly with a newline.
			writer.Write([]byte("\n"))
			return
		}
		if err != nil {
			// EOF (Ctrl-D) or a fatal readline error.
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		r.run(h, interp, line)
	}
}

// run executes one line of input, resetting the host's error flags first
// so a mistake on one line never taints the next (spec.md's REPL model:
// errors are reported and the prompt simply returns).
func (r *Repl) run(h *host.Host, interp *interpreter.Interpreter, line string) {
	h.Reset()

	tokens := lexer.New(line, h).ScanTokens()
	stmts := parser.New(tokens, h).Parse()
	if h.HadCompileError {
		return
	}

	// A bare expression typed at the prompt auto-prints its value, the
	// one REPL-only deviation from file-mode semantics: a statement that
	// would otherwise be silently evaluated and discarded is instead
	// rewritten as a Print of the same expression before resolving.
	if len(stmts) == 1 {
		if expr, ok := stmts[0].(*ast.Expression); ok {
			stmts[0] = &ast.Print{Expr: expr.Expr}
		}
	}

	locals := resolver.New(h).Resolve(stmts)
	if h.HadCompileError {
		return
	}

	interp.Interpret(stmts, locals)
}
