package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sancho-bros/internal/audio"
	"github.com/vovakirdan/sancho-bros/internal/core"
	"github.com/vovakirdan/sancho-bros/internal/level"
	"github.com/vovakirdan/sancho-bros/internal/platform/tui"
	"github.com/vovakirdan/sancho-bros/internal/session"
	"github.com/vovakirdan/sancho-bros/internal/storage"
)

var (
	flagLevelsDir string
	flagWatch     bool
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the game at the title menu.

Controls:
  A/D, Left/Right   - Walk
  Space/W/Up        - Jump (hold for full height)
  X/F               - Fire laser while powered up
  P/Esc             - Pause
  Ctrl+S            - Screenshot
  Ctrl+C            - Quit

Difficulty options:
  easy   - 5 lives, longer invulnerability, weaker boss
  normal - Values from the config file
  hard   - 2 lives, shorter invulnerability, faster boss throws

Examples:
  sancho play
  sancho play --difficulty hard
  sancho play --levels ./levels --watch
  sancho play --config ./my-game.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory with level_<n> files (default: built-in campaign)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the current level when its file changes")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	loader, err := levelLoader(flagLevelsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// stderr belongs to the alt screen while playing
	logger, logFile, err := newFileLogger(flagLogFile, "sancho")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger = log.New(io.Discard)
	} else {
		defer logFile.Close()
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := session.Options{
		Config: cfg,
		Levels: loader,
		Logger: logger,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: progress will not be saved: %v\n", err)
	} else {
		defer store.Close()
		opts.Store = store
	}

	var backend audio.Backend = audio.Nop{}
	if !flagMute {
		music, sfx := session.DefaultVolume, session.DefaultVolume
		if store != nil {
			if m, s, err := store.LoadSettings(); err == nil {
				music, sfx = m, s
			}
		}
		beepBackend := audio.NewBeepBackend(music, sfx)
		if err := beepBackend.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer beepBackend.Close()
			backend = beepBackend
		}
	}
	opts.Audio = audio.NewEmitter(backend, logger)

	var watcher *level.Watcher
	if flagWatch {
		if !loader.OnDisk() {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs --levels; the built-in campaign cannot change")
		} else if watcher, err = level.NewWatcher(loader.Root); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: level watcher disabled: %v\n", err)
			watcher = nil
		} else {
			defer watcher.Close()
			if first, ok := loader.Path(1); ok {
				logger.Info("watching levels", "dir", loader.Root, "first", first)
			}
		}
	}

	err = tui.Run(tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: cfg.Window.FPS,
		},
		Game:    cfg,
		Session: session.New(opts),
		Watcher: watcher,
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
