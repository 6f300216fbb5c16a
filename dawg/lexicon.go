package dawg

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Lexicon adapts a Dawg to lexicon.Lexicon.
type Lexicon struct {
	*Dawg
}

func (l Lexicon) Name() string {
	return l.LexiconName()
}

func (l Lexicon) HasWord(word string) bool {
	return l.Contains(word)
}

var daPool = sync.Pool{
	New: func() interface{} {
		return &Anagrammer{}
	},
}

// HasAnagram returns whether the letters of word can be rearranged into a
// word.
func (l Lexicon) HasAnagram(word string) bool {
	log.Debug().Str("word", word).Msg("has-anagram?")

	da := daPool.Get().(*Anagrammer)
	defer daPool.Put(da)

	v, err := da.IsValidJumble(l.Dawg, word)
	if err != nil {
		log.Err(err).Str("word", word).Msg("has-anagram?-error")
		return false
	}
	return v
}
