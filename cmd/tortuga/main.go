package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	tortuga "github.com/misalcedo/tortuga"
)

const (
	appName     = "tortuga"
	historyFile = ".tortuga_history"
	promptMain  = ">>> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("Tortuga %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", tortuga.Version)

// Colors are disabled when stderr is not a terminal, so piped diagnostics
// stay plain text.
var colorized = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

func red(s string) string {
	if !colorized {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func blue(s string) string {
	if !colorized {
		return s
	}
	return "\x1b[94m" + s + "\x1b[0m"
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "check":
		os.Exit(cmdCheck(os.Args[2:]))
	case "version":
		fmt.Println(tortuga.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Tortuga %s (built %s)

Usage:
  %s run <file.ta | directory>    Run a script, or a workspace's entry file.
  %s run -e <expr> | run -        Evaluate an expression, or stdin.
  %s repl                         Start the REPL.
  %s check <file.ta | directory>  Parse without evaluating; report errors.
  %s version                      Print the compiled version.

`, tortuga.Version, tortuga.BuildDate, appName, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.ta | directory | -> | -e <expr>\n", appName)
		return 2
	}

	interpreter := tortuga.NewInterpreter()

	// "-e <expr>" evaluates the argument; "-" evaluates stdin.
	if args[0] == "-e" {
		if len(args) < 2 {
			fmt.Fprintf(os.Stderr, "%s: -e requires an expression\n", appName)
			return 2
		}
		return evalSource(interpreter, args[1])
	}
	if args[0] == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read stdin: %v\n", appName, err)
			return 1
		}
		return evalSource(interpreter, string(src))
	}

	files, code := resolveSources(args[0])
	if code != 0 {
		return code
	}

	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
			return 1
		}
		if code := evalSource(interpreter, string(src)); code != 0 {
			return code
		}
	}

	return 0
}

func evalSource(interpreter *tortuga.Interpreter, src string) int {
	value, err := interpreter.BuildThenRun(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(tortuga.WrapErrorWithSource(err, src).Error()))
		return 1
	}

	fmt.Println(value)
	return 0
}

// resolveSources maps a path argument to the source files to run: the file
// itself, a workspace's entry file, or every source in the workspace when no
// entry is set.
func resolveSources(path string) ([]string, int) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot stat %s: %v\n", appName, path, err)
		return nil, 1
	}

	if !info.IsDir() {
		return []string{path}, 0
	}

	workspace, err := tortuga.OpenWorkspace(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return nil, 1
	}

	if entry, ok := workspace.Entry(); ok {
		return []string{entry}, 0
	}

	sources, err := workspace.Sources()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return nil, 1
	}
	if len(sources) == 0 {
		fmt.Fprintf(os.Stderr, "%s: no %s files under %s\n", appName, tortuga.SourceExtension, path)
		return nil, 1
	}

	return sources, 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	interpreter := tortuga.NewInterpreter()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if trimmed == "" {
			continue
		}

		value, err := interpreter.BuildThenRun(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(tortuga.WrapErrorWithSource(err, code).Error()))
			continue
		}
		fmt.Println(blue(value.String()))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe accumulates lines until the buffer parses, or fails with
// an error other than running out of input. Incomplete parses keep the
// continuation prompt going, so multi-line definitions work naturally.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := tortuga.Parse(src)
		if perr == nil {
			return src, true
		}
		if tortuga.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

// -----------------------------------------------------------------------------
// check
// -----------------------------------------------------------------------------

func cmdCheck(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s check <file.ta | directory>\n", appName)
		return 2
	}

	files, code := resolveSources(args[0])
	if code != 0 {
		return code
	}

	failures := 0
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
			return 1
		}

		if _, err := tortuga.Parse(string(src)); err != nil {
			fmt.Fprintf(os.Stderr, "%s:\n%s\n", file, red(tortuga.WrapErrorWithSource(err, string(src)).Error()))
			failures++
		}
	}

	if failures > 0 {
		return 1
	}
	return 0
}
