package lexicon

import "strings"

// Lexicon is the dictionary the validator checks formed words against.
// Words are passed as upper-case letters; implementations fold case as
// they need to.
type Lexicon interface {
	Name() string
	HasWord(word string) bool
}

// AcceptAll accepts every word. It is useful for testing geometry and
// scoring on their own.
type AcceptAll struct{}

func (lex AcceptAll) Name() string {
	return "AcceptAll"
}

func (lex AcceptAll) HasWord(word string) bool {
	return true
}

// WordSet is a Lexicon backed by an in-memory set.
type WordSet map[string]bool

// NewWordSet creates a WordSet from upper- or lower-case words.
func NewWordSet(words ...string) WordSet {
	ws := WordSet{}
	for _, w := range words {
		ws[strings.ToUpper(w)] = true
	}
	return ws
}

func (ws WordSet) Name() string {
	return "WordSet"
}

func (ws WordSet) HasWord(word string) bool {
	return ws[strings.ToUpper(word)]
}
