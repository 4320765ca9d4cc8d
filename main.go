// pattern: Imperative Shell
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"pickpack/internal/bundle"
	"pickpack/internal/config"
	"pickpack/internal/discover"
	"pickpack/internal/logging"
	"pickpack/internal/picker"
	"pickpack/internal/render"
	"pickpack/internal/selection"
	"pickpack/internal/sink"
	"pickpack/internal/style"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pickpack", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	ignore := fs.StringP("ignore", "i", "", "extended-regex pattern; matching paths are excluded from discovery")
	treeOnly := fs.BoolP("tree-only", "t", false, "emit directory trees only, no file contents")
	quiet := fs.BoolP("quiet", "q", false, "suppress the stdout echo of the bundle and skip the clipboard")
	forcePrint := fs.BoolP("print", "p", false, "force the stdout echo even with --quiet")
	debug := fs.Bool("debug", false, "emit diagnostic trace lines to stderr")
	showVersion := fs.BoolP("version", "v", false, "print version and exit")
	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Println("pickpack " + version)
		return 0
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "pickpack: at most one target path is accepted")
		return 1
	}
	target := ""
	if fs.NArg() == 1 {
		target = fs.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
	}
	if *ignore != "" {
		cfg.IgnorePattern = *ignore
	}
	cfg.TreeOnly = *treeOnly
	cfg.Quiet = *quiet
	cfg.Print = *forcePrint
	cfg.Debug = *debug

	return runPipeline(cfg, target)
}

func runPipeline(cfg config.Config, target string) int {
	var ignoreRe *regexp.Regexp
	if cfg.IgnorePattern != "" {
		re, err := regexp.Compile(cfg.IgnorePattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pickpack: invalid ignore pattern: %v\n", err)
			return 1
		}
		ignoreRe = re
	}

	// Clipboard availability is a startup condition; runtime write failures
	// are handled by the sink and stay non-fatal.
	if !sink.Supported() {
		fmt.Fprintln(os.Stderr, "pickpack: no clipboard utility available on this platform")
		return 1
	}

	interactive := target == ""
	if interactive && (!isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stderr.Fd())) {
		fmt.Fprintln(os.Stderr, "pickpack: interactive mode requires a terminal (pass a PATH instead)")
		return 1
	}

	logManager, err := logging.NewManager(logging.Config{
		FilePath: filepath.Join(config.StateDir(), "pickpack.log"),
		Level:    cfg.LogLevel,
		Debug:    cfg.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pickpack: failed to initialize logging: %v\n", err)
		return 1
	}
	defer func() { _ = logManager.Close() }()

	appLog := logManager.For("app")
	appLog.Debugw("run starting",
		"version", version,
		"target", target,
		"tree_only", cfg.TreeOnly,
		"quiet", cfg.Quiet,
		"print", cfg.Print,
	)

	styles := style.New(cfg.Theme)
	engine := discover.NewEngine(logManager.For("discover"))

	ctrl := &selection.Controller{
		Discover: func(root string) []string { return engine.Discover(root, ignoreRe) },
		Picker:   &picker.TTY{Styles: styles, Log: logManager.For("picker")},
		Log:      logManager.For("selection"),
	}

	sel, err := ctrl.Resolve(target)
	if err != nil {
		code, msg := classify(err)
		if code == 0 {
			fmt.Println(msg)
		} else {
			fmt.Fprintln(os.Stderr, "pickpack: "+msg)
		}
		return code
	}

	trees := render.Trees(sel, styles)
	var contents string
	if !cfg.TreeOnly {
		contents = render.Contents(sel)
	}
	bndl := bundle.Assemble(trees, contents, cfg.TreeOnly)
	appLog.Debugw("bundle assembled", "files", len(sel), "bytes", len(bndl))

	out := &sink.Sink{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Clipboard: sink.SystemClipboard{},
		Log:       logManager.For("sink"),
	}
	out.Emit(bndl, cfg.Quiet, cfg.Print)

	appLog.Debugw("run finished")
	return 0
}

// classify maps a selection error to its exit code and user-facing message.
// An empty interactive selection is a successful terminal state.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, selection.ErrEmptySelection):
		return 0, "No files selected."
	case errors.Is(err, selection.ErrNoCandidates):
		return 1, "no files found"
	default:
		return 1, err.Error()
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: pickpack [options] [PATH]\n\n")
	fmt.Fprintf(os.Stderr, "Discover files, pick a subset, and bundle directory trees plus file contents\n")
	fmt.Fprintf(os.Stderr, "for pasting into an LLM prompt. With no PATH an interactive picker opens over\n")
	fmt.Fprintf(os.Stderr, "the current directory. PATH may be a single file or a directory.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	fs.PrintDefaults()
}
