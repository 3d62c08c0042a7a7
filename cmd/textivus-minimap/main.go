package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/cornish/textivus-minimap/config"
	"github.com/cornish/textivus-minimap/minimap"
	"github.com/cornish/textivus-minimap/source"
	"github.com/cornish/textivus-minimap/ui"
	"github.com/cornish/textivus-minimap/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const version = "0.1.0"

// options holds the parsed command line
type options struct {
	filename string
	dump     bool
	width    int
	height   int
	help     bool
	version  bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the whole program; it returns the exit code so deferred cleanup
// (the debug log) runs before the process exits.
func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textivus-minimap: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try 'textivus-minimap --help' for more information.")
		return 2
	}
	if opts.version {
		fmt.Printf("textivus-minimap %s\n", version)
		return 0
	}

	// Debug log goes to a file; the TUI owns the terminal
	if path := os.Getenv("TEXTIVUS_DEBUG"); path != "" {
		f, err := tea.LogToFile(path, "textivus-minimap")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			return 1
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Detect terminal capabilities early
	config.InitCapabilities()

	// Load configuration
	cfg, configErr := config.Load()
	if configErr != nil {
		log.Printf("config: %v", configErr)
	}
	keys := config.LoadKeybindings()

	// Command-line --width overrides config for this run only
	session := *cfg
	if opts.width > 0 {
		session.Minimap.Width = opts.width
	}
	session.Validate()

	if opts.help {
		printHelp(os.Stdout, keys, session.Theme.GetResolved())
		return 0
	}

	if opts.dump {
		styled := term.IsTerminal(int(os.Stdout.Fd()))
		if err := dump(os.Stdout, opts, &session, styled); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ui.SetTrueColor(config.GetCapabilities().ShouldUseTrueColor(session.Viewer.TrueColor))

	v := viewer.NewWithConfig(&session, keys)

	// Config parse errors win the status bar over key conflicts
	if configErr != nil {
		v.SetConfigError(configErr)
	} else if msg := conflictMessage(keys.FindConflicts()); msg != "" {
		log.Printf("keybindings: %s", msg)
		v.SetMessage(msg, "error")
	}

	if opts.filename != "" {
		if err := v.LoadFile(opts.filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading file: %v\n", err)
			return 1
		}
		// Don't overwrite a config file we failed to parse
		if configErr == nil {
			cfg.AddRecentFile(opts.filename)
			if err := cfg.Save(); err != nil {
				log.Printf("config: save: %v", err)
			}
		}
	}

	p := tea.NewProgram(v, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		return 1
	}
	return 0
}

// parseArgs reads flags and the optional filename. --help and --version
// stop parsing.
func parseArgs(args []string) (options, error) {
	opts := options{height: 24}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--version", "-v":
			return options{version: true}, nil
		case "--help", "-h":
			return options{help: true}, nil
		case "--dump", "-d":
			opts.dump = true
		case "--width", "--height":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				return opts, fmt.Errorf("%s: invalid value %q", arg, args[i])
			}
			if arg == "--width" {
				opts.width = n
			} else {
				opts.height = n
			}
		default:
			if isFlag(arg) {
				return opts, fmt.Errorf("unknown option %s", arg)
			}
			if opts.filename != "" {
				return opts, fmt.Errorf("only one file can be viewed")
			}
			opts.filename = arg
		}
	}
	if opts.dump && opts.filename == "" {
		return opts, fmt.Errorf("--dump needs a file")
	}
	return opts, nil
}

// conflictMessage describes keys bound to more than one action, or ""
func conflictMessage(conflicts map[string][]config.Action) string {
	if len(conflicts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(conflicts))
	for key := range conflicts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, key := range keys {
		names := make([]string, len(conflicts[key]))
		for j, action := range conflicts[key] {
			names[j] = config.ActionNames[action]
		}
		parts[i] = fmt.Sprintf("%s bound to %s", config.FormatKeyForDisplay(key), strings.Join(names, ", "))
	}
	return "Key conflict: " + strings.Join(parts, "; ")
}

// dumpSource is a minimap.Source for a panel showing the top of a file
type dumpSource struct {
	snap          *source.Snapshot
	width, height int
}

func (d dumpSource) Lines() []string { return d.snap.Lines }

func (d dumpSource) Viewport() minimap.Viewport {
	return minimap.Viewport{Top: 0, Height: d.height}
}

func (d dumpSource) PanelSize() (int, int) { return d.width, d.height }

// dump prints the minimap for the file without starting the TUI. When
// styled, the highlighted rows are drawn with the configured highlight.
func dump(w io.Writer, opts options, cfg *config.Config, styled bool) error {
	snap, err := source.Load(opts.filename)
	if err != nil {
		return err
	}

	r := viewer.NewRasterizer(cfg.Minimap)
	frame, err := r.Frame(dumpSource{snap: snap, width: cfg.Minimap.Width, height: opts.height})
	if err != nil {
		return err
	}

	hl := frame.Highlight.Clamp(len(frame.Lines))
	style := ui.NewStyles(cfg.Theme.GetResolved()).Highlight(cfg.Minimap.Highlight)
	for row, line := range frame.Lines {
		if styled && hl.Contains(row) {
			fmt.Fprintln(w, style.Render(line))
			continue
		}
		fmt.Fprintln(w, minimap.TrimPadding(line))
	}
	fmt.Fprintf(w, "# %s: %d lines, highlight %d-%d, scroll %d\n",
		snap.EncodingName(), snap.LineCount(), frame.Highlight.Top, frame.Highlight.Bottom, frame.Scroll)
	return nil
}

func isFlag(s string) bool {
	return len(s) > 0 && s[0] == '-'
}

// printHelp writes usage with the keys as currently bound and the themes
// and highlight styles the config can name.
func printHelp(w io.Writer, keys *config.KeybindingsConfig, theme config.Theme) {
	fmt.Fprintln(w, "textivus-minimap - A file viewer with a braille minimap")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: textivus-minimap [options] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -h, --help       Show this help message")
	fmt.Fprintln(w, "  -v, --version    Show version information")
	fmt.Fprintln(w, "  -d, --dump       Print the minimap to stdout and exit")
	fmt.Fprintln(w, "  --width N        Minimap width in braille cells")
	fmt.Fprintln(w, "  --height N       Panel height for --dump (default 24)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keyboard Shortcuts:")
	for _, action := range config.AllActions() {
		fmt.Fprintf(w, "  %-20s %s\n", keys.GetBinding(action).DisplayString(), config.ActionNames[action])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Mouse:")
	fmt.Fprintln(w, "  Click minimap        Jump to that part of the file")
	fmt.Fprintln(w, "  Scroll               Scroll the text")
	fmt.Fprintln(w)
	themes := append(config.ThemeNames(), config.ListUserThemes()...)
	fmt.Fprintf(w, "Themes: %s\n", strings.Join(themes, ", "))
	fmt.Fprintf(w, "Highlight styles: %s\n", strings.Join(theme.HighlightNames(), ", "))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Set TEXTIVUS_DEBUG=<file> to write a debug log.")
}
