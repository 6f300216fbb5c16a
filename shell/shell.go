// Package shell is an interactive shell for querying a lexicon and
// playing moves on a board.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/cache"
	"github.com/domino14/tilegame/config"
	"github.com/domino14/tilegame/dawg"
	"github.com/domino14/tilegame/game"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errExit              = errors.New("exit")
)

type ShellController struct {
	l *readline.Instance

	config *config.Config
	cache  *cache.Cache

	dawg *dawg.Dawg
	game *game.Game
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewShellController creates a shell over the given lexicon. Other lexica
// are loaded through c.
func NewShellController(cfg *config.Config, c *cache.Cache, d *dawg.Dawg) (*ShellController, error) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mtilegame>\033[0m ",
		HistoryFile:     cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return nil, err
	}
	sc := newController(cfg, c, d)
	sc.l = l
	return sc, nil
}

func newController(cfg *config.Config, c *cache.Cache, d *dawg.Dawg) *ShellController {
	sc := &ShellController{config: cfg, cache: c, dawg: d}
	sc.newGame()
	return sc
}

func (sc *ShellController) stderr() io.Writer {
	if sc.l == nil {
		return os.Stderr
	}
	return sc.l.Stderr()
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.stderr())
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// extractFields splits a line into a command, its arguments, and its
// -name value options.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	log.Debug().Msgf("cmd: %v, args: %v, options: %v", cmd, args, options)
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) standardModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit":
		return nil, errExit
	case "help":
		return sc.help(cmd)
	case "check":
		return sc.check(cmd)
	case "children":
		return sc.children(cmd)
	case "anagram":
		return sc.anagram(cmd)
	case "count":
		return sc.count(cmd)
	case "lexicon":
		return sc.lexicon(cmd)
	case "new":
		return sc.newGameCmd(cmd)
	case "rack":
		return sc.rack(cmd)
	case "place":
		return sc.place(cmd)
	case "board", "s":
		return sc.board(cmd)
	case "bag":
		return sc.bag(cmd)
	default:
		log.Debug().Msgf("you said: %v", line)
		return nil, fmt.Errorf("command %v not found", cmd.cmd)
	}
}

// Execute runs a single line, as if it were typed into the shell.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line)
	if err == errExit {
		sig <- syscall.SIGINT
		return
	}
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line)
		if err == errExit {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
