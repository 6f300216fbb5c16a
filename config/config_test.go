package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestLoadDefaults(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.LexiconPath, "./data/lexica")
	is.Equal(c.DefaultLexicon, "TWL06")
	is.True(!c.Debug)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--lexicon-path", "/srv/lex", "--debug"}))
	is.Equal(c.LexiconPath, "/srv/lex")
	is.True(c.Debug)
}

func TestLoadEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("TILEGAME_DEFAULT_LEXICON", "CSW21")
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.DefaultLexicon, "CSW21")
}

func TestAdjustRelativePaths(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()
	c.AdjustRelativePaths("/opt/tilegame")
	is.Equal(c.LexiconPath, "/opt/tilegame/data/lexica")
}

func TestLoadLeftoverArgs(t *testing.T) {
	is := is.New(t)
	c := &Config{}
	is.NoErr(c.Load([]string{"--debug", "check", "cat"}))
	is.Equal(c.Args, []string{"check", "cat"})
}
