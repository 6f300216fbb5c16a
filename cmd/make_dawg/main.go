package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tilegame/dawg"
	"github.com/domino14/tilegame/dawgmaker"
)

func main() {
	filename := flag.String("filename", "", "filename of the word list")
	out := flag.String("out", "", "output file; defaults to the word list name with a .dawg extension")
	minimize := flag.Bool("minimize", true, "minimize the dawg")
	verify := flag.Bool("verify", true, "check that every word can be found in the output")
	debug := flag.Bool("debug", false, "debug logging on")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *filename == "" {
		log.Fatal().Msg("-filename is required")
	}
	if *out == "" {
		base := filepath.Base(*filename)
		*out = strings.TrimSuffix(base, filepath.Ext(base)) + dawg.FileExtension
	}

	words, err := dawgmaker.ReadWordsFile(*filename)
	if err != nil {
		log.Fatal().Err(err).Msg("reading word list")
	}
	records, err := dawgmaker.GenerateDawg(words, *minimize).Serialize()
	if err != nil {
		log.Fatal().Err(err).Msg("building dawg")
	}
	text, err := dawgmaker.Encode(records)
	if err != nil {
		log.Fatal().Err(err).Msg("encoding dawg")
	}
	if err := os.WriteFile(*out, text, 0o644); err != nil {
		log.Fatal().Err(err).Msg("writing dawg")
	}
	log.Info().Str("out", *out).Int("words", len(words)).Int("records", len(records)).
		Int("bytes", len(text)).Msg("wrote-dawg")

	if *verify {
		if err := verifyFile(*out, words); err != nil {
			log.Fatal().Err(err).Msg("verification failed")
		}
		log.Info().Msg("verified")
	}
}

// verifyFile loads the written file back and looks every word up in it,
// splitting the words among a few goroutines.
func verifyFile(filename string, words []string) error {
	d, err := dawg.LoadFile(filename)
	if err != nil {
		return err
	}
	var g errgroup.Group
	workers := runtime.NumCPU()
	chunk := (len(words) + workers - 1) / workers
	for start := 0; start < len(words); start += chunk {
		part := words[start:min(start+chunk, len(words))]
		g.Go(func() error {
			for _, w := range part {
				if !d.Contains(w) {
					return fmt.Errorf("word %q is missing", w)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
