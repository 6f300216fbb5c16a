package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigLexiconPath    = "lexicon-path"
	ConfigDefaultLexicon = "default-lexicon"
	ConfigDebug          = "debug"
	ConfigHistoryFile    = "history-file"
)

type Config struct {
	LexiconPath    string
	DefaultLexicon string
	Debug          bool
	HistoryFile    string

	// Args holds whatever is left after the flags.
	Args []string
}

// DefaultConfig returns the config with every option at its default value.
// It is mostly useful for tests.
func DefaultConfig() Config {
	return Config{
		LexiconPath:    "./data/lexica",
		DefaultLexicon: "TWL06",
		HistoryFile:    "/tmp/tilegame_readline.tmp",
	}
}

// Load reads flags from args, with TILEGAME_* environment variables as a
// fallback. Flags take precedence over the environment.
func (c *Config) Load(args []string) error {
	def := DefaultConfig()
	v := viper.New()
	fs := pflag.NewFlagSet("tilegame", pflag.ContinueOnError)
	fs.String(ConfigLexiconPath, def.LexiconPath, "directory holding lexicon files")
	fs.String(ConfigDefaultLexicon, def.DefaultLexicon, "the default lexicon to use")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigHistoryFile, def.HistoryFile, "readline history file for the shell")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix("tilegame")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	c.LexiconPath = v.GetString(ConfigLexiconPath)
	c.DefaultLexicon = v.GetString(ConfigDefaultLexicon)
	c.Debug = v.GetBool(ConfigDebug)
	c.HistoryFile = v.GetString(ConfigHistoryFile)
	c.Args = fs.Args()
	return nil
}

// AdjustRelativePaths makes relative data paths relative to basepath
// (usually the directory of the executable).
func (c *Config) AdjustRelativePaths(basepath string) {
	if strings.HasPrefix(c.LexiconPath, "./") {
		c.LexiconPath = filepath.Join(basepath, c.LexiconPath)
	}
}
