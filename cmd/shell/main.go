package main

import (
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/cache"
	"github.com/domino14/tilegame/config"
	"github.com/domino14/tilegame/dawg"
	"github.com/domino14/tilegame/shell"
)

var (
	GitVersion string
)

//go:embed tilegame.txt
var banner string

func main() {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)
	fmt.Println(banner)
	fmt.Println(GitVersion)

	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
	log.Info().Str("lexicon-path", cfg.LexiconPath).Str("lexicon", cfg.DefaultLexicon).Msg("loaded-config")

	c := cache.New()
	d, err := dawg.Get(cfg, c, cfg.DefaultLexicon)
	if err != nil {
		// A lexicon that won't load is not something the shell can work around.
		log.Fatal().Err(err).Str("lexicon", cfg.DefaultLexicon).Msg("could-not-load-lexicon")
	}

	sc, err := shell.NewShellController(cfg, c, d)
	if err != nil {
		log.Fatal().Err(err).Msg("could-not-start-shell")
	}

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info().Msg("got quit signal...")
		close(done)
	}()

	if len(cfg.Args) == 0 {
		go sc.Loop(sig)
		<-done
	} else {
		// Run the one command line and quit.
		sc.Execute(sig, strings.Join(cfg.Args, " "))
	}
	log.Info().Msg("bye")
}
