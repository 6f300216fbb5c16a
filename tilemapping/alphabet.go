package tilemapping

import (
	"fmt"
	"strings"
)

// A Letter is a single uppercase tile letter, A through Z, stored as its
// ASCII byte. The 0 value means "no letter", e.g. an empty board square.
type Letter byte

const (
	// EmptySquareMarker is what an empty square holds.
	EmptySquareMarker Letter = 0
	// BlankToken is the user-friendly representation of a wildcard in
	// anagram queries.
	BlankToken = '?'
	// ASCIIPlayedThrough marks a letter already on the board when a play
	// is written out, as in "CA.S".
	ASCIIPlayedThrough = '.'

	NumLetters = 26
)

// LetterValue is the point value of every letter.
var LetterValue = [NumLetters]int{
	// A  B  C  D  E  F  G  H  I  J  K  L  M
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3,
	// N  O  P  Q   R  S  T  U  V  W  X  Y  Z
	1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

// LetterFromRune converts r (either case) into a Letter.
func LetterFromRune(r rune) (Letter, error) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return EmptySquareMarker, fmt.Errorf("invalid letter %q", r)
	}
	return Letter(r), nil
}

// IsValid returns true for A through Z.
func (l Letter) IsValid() bool {
	return l >= 'A' && l <= 'Z'
}

// Score returns the face value of the letter; 0 for anything that isn't a
// letter.
func (l Letter) Score() int {
	if !l.IsValid() {
		return 0
	}
	return LetterValue[l-'A']
}

// Lower returns the lowercase rune, the form the dictionary stores.
func (l Letter) Lower() rune {
	return rune(l) + ('a' - 'A')
}

func (l Letter) String() string {
	if l == EmptySquareMarker {
		return " "
	}
	return string(rune(l))
}

// Word is a sequence of letters.
type Word []Letter

// ToWord converts a user string into a Word.
func ToWord(s string) (Word, error) {
	w := make(Word, 0, len(s))
	for _, r := range s {
		l, err := LetterFromRune(r)
		if err != nil {
			return nil, err
		}
		w = append(w, l)
	}
	return w, nil
}

func (w Word) String() string {
	var sb strings.Builder
	for _, l := range w {
		sb.WriteByte(byte(l))
	}
	return sb.String()
}

// Score returns the face value sum of the word.
func (w Word) Score() int {
	s := 0
	for _, l := range w {
		s += l.Score()
	}
	return s
}
