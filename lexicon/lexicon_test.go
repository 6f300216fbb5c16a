package lexicon

import (
	"testing"

	"github.com/matryer/is"
)

func TestWordSet(t *testing.T) {
	is := is.New(t)
	var lex Lexicon = NewWordSet("cat", "ACT")
	is.True(lex.HasWord("CAT"))
	is.True(lex.HasWord("act"))
	is.True(!lex.HasWord("TAC"))
	is.True(AcceptAll{}.HasWord("TAC"))
}
