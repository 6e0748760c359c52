// ABOUTME: CLI entry point for keyprobe, an interactive terminal key-event inspector
// ABOUTME: Parses flags, loads config, and runs the key session with the viewer or JSON output

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/keyprobe/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/keyprobe/internal/config"
	"github.com/mauromedda/keyprobe/internal/log"
	"github.com/mauromedda/keyprobe/pkg/tui/keypress"
	"github.com/mauromedda/keyprobe/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	if args.version {
		fmt.Printf("keyprobe %s (%s) built %s\n", version, commit, date)
		return nil
	}

	cfg, err := loadSettings(args)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	tt := terminal.NewProcessTerminal(os.Stdin, os.Stdout)
	defer terminal.RestoreOnPanic(tt)

	if args.table {
		fmt.Print(renderMarkdown(keyTable(), tableWidth(tt)))
		return nil
	}

	if !tt.RawModeSupported() {
		log.Warn("stdin is not a terminal; reading until EOF")
	}

	sess := keypress.New(tt, os.Stdin, keypress.Options{
		KittyProtocol: cfg.Kitty(),
		Platform:      cfg.Platform,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if args.json {
		return runJSON(ctx, sess, os.Stdout)
	}
	return runViewer(ctx, sess, tt, cfg)
}

// loadSettings reads config files and applies flag overrides.
func loadSettings(args cliArgs) (*config.Settings, error) {
	var (
		cfg *config.Settings
		err error
	)
	if args.config != "" {
		if _, statErr := os.Stat(args.config); statErr != nil {
			return nil, fmt.Errorf("config file: %w", statErr)
		}
		cfg, err = config.LoadFiles(args.config)
	} else {
		cwd, _ := os.Getwd()
		cfg, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if args.kitty {
		on := true
		cfg.KittyProtocol = &on
	}
	if args.platform != "" {
		cfg.Platform = args.platform
	}
	if cfg.Platform == "" {
		cfg.Platform = runtime.GOOS
	}
	if args.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setupLogging applies the level and, when log_file is set, redirects output
// there since the terminal is in raw mode. The returned func closes the file.
func setupLogging(cfg *config.Settings) (func(), error) {
	if cfg.LogLevel != "" {
		lvl, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		log.SetLevel(lvl)
	}
	if cfg.LogFile == "" {
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		_ = f.Close()
	}, nil
}

// runJSON prints every event as a JSON line until EOF, ctrl+c, or a signal.
func runJSON(ctx context.Context, sess *keypress.Session, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sink := newJSONSink(out)
	unsubscribe := sess.Subscribe(func(ev keypress.Event) {
		if isInterrupt(ev.Key) {
			cancel()
			return
		}
		sink.write(ev)
	})
	defer unsubscribe()

	if err := sess.Run(ctx); err != nil {
		return err
	}
	return sink.Err()
}

// runViewer runs the session and the Bubble Tea viewer together. Whichever
// finishes first stops the other.
func runViewer(ctx context.Context, sess *keypress.Session, tt terminal.Terminal, cfg *config.Settings) error {
	p := tea.NewProgram(
		newViewerModel(cfg.EventLimit(), cfg.Highlight),
		tea.WithInput(nil),
		tea.WithOutput(os.Stdout),
		tea.WithoutSignalHandler(),
	)

	unsubscribe := sess.Subscribe(func(ev keypress.Event) {
		p.Send(eventMsg{ev: ev, at: time.Now()})
	})
	defer unsubscribe()

	g, gctx := errgroup.WithContext(ctx)
	sessCtx, cancelSession := context.WithCancel(gctx)
	defer cancelSession()

	g.Go(func() error {
		return runSession(sessCtx, sess, tt, p.Quit)
	})
	g.Go(func() error {
		defer cancelSession()
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("bubble tea: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// runSession runs sess and then calls done. A panic in the session is
// returned as an error after the terminal is restored.
func runSession(ctx context.Context, sess *keypress.Session, tt terminal.Terminal, done func()) (err error) {
	defer terminal.RecoverGoroutineError(tt, &err)
	defer done()
	return sess.Run(ctx)
}

// tableWidth returns the column count to wrap the key table at.
func tableWidth(tt terminal.Terminal) int {
	if cols, _, err := tt.Size(); err == nil && cols > 0 {
		return cols
	}
	return 100
}
