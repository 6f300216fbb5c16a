package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/dawg"
	"github.com/domino14/tilegame/game"
	"github.com/domino14/tilegame/move"
	"github.com/domino14/tilegame/tilemapping"
)

var errNeedArgs = errors.New("not enough arguments")

func (sc *ShellController) newGame() {
	sc.game = game.New(dawg.Lexicon{Dawg: sc.dawg},
		tilemapping.EnglishLetterDistribution().MakeBag())
	if _, err := sc.game.Start(0); err != nil {
		log.Err(err).Msg("could-not-start-game")
	}
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	if len(cmd.args) == 0 {
		usage(&sb)
	} else {
		usageTopic(&sb, cmd.args[0])
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errNeedArgs
	}
	lines := make([]string, 0, len(cmd.args))
	for _, w := range cmd.args {
		word := strings.ToUpper(w)
		if sc.dawg.Contains(word) {
			lines = append(lines, word+" is valid in "+sc.dawg.LexiconName())
		} else {
			lines = append(lines, word+"* is not valid in "+sc.dawg.LexiconName())
		}
	}
	return msg(strings.Join(lines, "\n")), nil
}

func (sc *ShellController) children(cmd *shellcmd) (*Response, error) {
	prefix := ""
	if len(cmd.args) > 0 {
		prefix = cmd.args[0]
	}
	children := sc.dawg.Children(prefix)
	if len(children) == 0 {
		return msg("no words start with " + strings.ToUpper(prefix)), nil
	}
	return msg(strings.ToUpper(string(children))), nil
}

func (sc *ShellController) anagram(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errNeedArgs
	}
	limit := 0
	if l, ok := cmd.options["limit"]; ok {
		var err error
		if limit, err = strconv.Atoi(l); err != nil {
			return nil, err
		}
	}
	var words []string
	err := sc.dawg.Anagram(cmd.args[0], func(w string) error {
		words = append(words, strings.ToUpper(w))
		if limit > 0 && len(words) >= limit {
			return errStop
		}
		return nil
	})
	if err != nil && err != errStop {
		return nil, err
	}
	return msg(fmt.Sprintf("%s\n%d words", strings.Join(words, " "), len(words))), nil
}

var errStop = errors.New("stop")

func (sc *ShellController) count(cmd *shellcmd) (*Response, error) {
	n := 0
	for range sc.dawg.All() {
		n++
	}
	return msg(fmt.Sprintf("%v has %d words", sc.dawg.LexiconName(), n)), nil
}

func (sc *ShellController) lexicon(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg("current lexicon: " + sc.dawg.LexiconName()), nil
	}
	d, err := dawg.Get(sc.config, sc.cache, cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.dawg = d
	sc.newGame()
	return msg("loaded " + d.LexiconName() + "; started a new game"), nil
}

func (sc *ShellController) newGameCmd(cmd *shellcmd) (*Response, error) {
	sc.newGame()
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) rack(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errNeedArgs
	}
	if err := sc.game.SetRackFor(sc.game.PlayerOnTurn(), cmd.args[0]); err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) place(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) != 2 {
		return nil, errors.New("usage: place COORDS WORD")
	}
	p, err := move.NewPlacement(sc.game.Board(), cmd.args[0], cmd.args[1])
	if err != nil {
		return nil, err
	}
	res, err := sc.game.Play(p)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return msg(res.Reason.Error()), nil
	}
	return msg(fmt.Sprintf("%s\nPlayed %s for %d points",
		sc.game.ToDisplayText(), strings.Join(res.Words, ", "), res.Score)), nil
}

func (sc *ShellController) board(cmd *shellcmd) (*Response, error) {
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) bag(cmd *shellcmd) (*Response, error) {
	bag := sc.game.Bag()
	return msg(fmt.Sprintf("%d tiles: %v", bag.TilesRemaining(), tilemapping.Word(bag.Peek()))), nil
}
