package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/spinwheel/app"
	"github.com/lixenwraith/spinwheel/audio"
	"github.com/lixenwraith/spinwheel/config"
	"github.com/lixenwraith/spinwheel/constants"
	"github.com/lixenwraith/spinwheel/engine"
	"github.com/lixenwraith/spinwheel/entries"
	"github.com/lixenwraith/spinwheel/events"
	"github.com/lixenwraith/spinwheel/logging"
	"github.com/lixenwraith/spinwheel/render"
	"github.com/lixenwraith/spinwheel/spin"
	"github.com/lixenwraith/spinwheel/terminal"
)

var (
	configFlag   = flag.String("config", "", "Config file path (YAML)")
	entriesFlag  = flag.String("entries", "", "Entries file path, overrides config")
	watchFlag    = flag.Bool("watch", false, "Reload the entries file when it changes on disk")
	durationFlag = flag.Duration("duration", 0, "Spin duration, overrides config")
	seedFlag     = flag.Int64("seed", 0, "Random seed, 0 seeds from the clock")
	muteFlag     = flag.Bool("mute", false, "Start with sound off")
	logFlag      = flag.String("log", "", "Log file path, overrides config")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the app crashes
	defer func() {
		if r := recover(); r != nil {
			// Restore terminal to sane state immediately
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPINWHEEL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Entry list, optionally loaded from disk before the terminal takes over
	list := entries.NewList(nil)
	title := ""
	if cfg.Entries.Path != "" {
		file, err := entries.LoadFile(cfg.Entries.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load entries: %v\n", err)
			os.Exit(1)
		}
		list.Replace(file.Entries)
		title = file.Title
	}

	queue := events.NewQueue()
	router := events.NewRouter(queue)

	seed := cfg.Spin.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	machine := spin.New(spin.Config{
		Duration: cfg.Spin.Duration,
		IdleStep: cfg.Spin.IdleStep,
		Source:   spin.NewSource(uint64(seed)),
		Entries:  list,
		Queue:    queue,
	})

	// File watcher pushes reload events; the app applies them between spins
	if cfg.Entries.Watch {
		watcher, err := entries.NewWatcher(cfg.Entries.Path, queue, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch entries file: %v\n", err)
			os.Exit(1)
		}
		watcher.Start()
		defer watcher.Stop()
	}

	// Initialize audio engine
	player := audio.NewPlayer()
	if err := player.Initialize(); err != nil {
		fmt.Printf("Audio initialization failed: %v (continuing without audio)\n", err)
	} else {
		defer player.Cleanup()
	}
	player.SetMuted(!cfg.Sound.Enabled)

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	renderer := render.New(screen)
	driver := engine.NewDriver(constants.FrameInterval)

	// Safe crash handler for the input polling goroutine
	crash := func(r any) {
		terminal.EmergencyReset(os.Stdout)
		// Use \r\n for raw mode compatibility to avoid zig-zag output
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mSPINWHEEL CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}

	application := app.New(app.Options{
		Log:      logger,
		Renderer: renderer,
		Queue:    queue,
		Router:   router,
		Machine:  machine,
		List:     list,
		Title:    title,
		Player:   player,
		Driver:   driver,
		Crash:    crash,
	})

	// Handler order: sounds fire first, history records, the machine
	// consumes spin requests, and the app updates UI state last
	router.Register(audio.NewHandler(player))
	router.Register(application.History())
	router.Register(machine)
	router.Register(application)

	logger.Info("starting spinwheel",
		zap.Duration("duration", cfg.Spin.Duration),
		zap.Int64("seed", seed),
		zap.Int("entries", list.Len()),
	)

	if err := application.Run(); err != nil {
		logger.Error("shell exited with error", zap.Error(err))
	}
}

// applyFlagOverrides layers explicit command-line flags over the loaded
// configuration. Boolean and zero-valued flags only apply when set.
func applyFlagOverrides(cfg *config.Config) {
	if *entriesFlag != "" {
		cfg.Entries.Path = *entriesFlag
	}
	if *durationFlag > 0 {
		cfg.Spin.Duration = *durationFlag
	}
	if *logFlag != "" {
		cfg.Logging.Path = *logFlag
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "watch":
			cfg.Entries.Watch = *watchFlag
		case "seed":
			cfg.Spin.Seed = *seedFlag
		case "mute":
			cfg.Sound.Enabled = !*muteFlag
		}
	})
}
