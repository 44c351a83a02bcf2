package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/bulga138/cellpad/config"
	"github.com/bulga138/cellpad/editor"
	"github.com/bulga138/cellpad/runewidth"
	"github.com/bulga138/cellpad/terminal"
	"github.com/bulga138/cellpad/version"
)

var (
	_ editor.Screen = (*terminal.ANSIScreen)(nil)
	_ editor.Screen = (*terminal.TcellScreen)(nil)
)

// Define the command-line flags
var (
	initConfig  = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion = flag.Bool("version", false, "Show version information and exit.")
	backend     = flag.String("backend", "", `Screen backend, "ansi" or "tcell". Overrides the config file.`)
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("cellpad %s\n", version.GetFullVersion())
		os.Exit(0)
	}

	if *initConfig {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Keep config warnings out of the terminal until logging is set up.
	log.SetOutput(io.Discard)
	cfg := config.LoadConfig()
	if *backend != "" {
		cfg.Backend = *backend
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	if cfg.EnableLogger {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- cellpad started ---")
	}
	log.Printf("Config loaded: %+v", cfg)

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: cellpad [flags] [filename]")
		os.Exit(1)
	}
	var filename string
	if len(args) == 1 {
		filename = args[0]
	}
	log.Printf("File to open: %q", filename)

	if err := run(cfg, filename); err != nil {
		log.Printf("Error running editor: %v", err)
		fmt.Fprintf(os.Stderr, "Error running editor: %v\n", err)
		os.Exit(1)
	}
	log.Println("--- cellpad exited cleanly ---")
}

func run(cfg config.Config, filename string) error {
	screen, cleanup, err := newScreen(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	e, err := editor.NewEditor(screen, cfg, filename)
	if err != nil {
		return fmt.Errorf("initializing editor: %w", err)
	}
	return e.Run()
}

func newScreen(cfg config.Config) (editor.Screen, func(), error) {
	switch cfg.Backend {
	case config.BackendTcell:
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, nil, fmt.Errorf("tcell screen: %w", err)
		}
		return terminal.NewTcellScreen(s, runewidth.New(cfg.AmbiguousWide)), func() {}, nil
	default:
		term := terminal.New()
		return terminal.NewANSIScreen(term, os.Stdout), func() { term.Close() }, nil
	}
}
