package dawg

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/rs/zerolog/log"
)

var errStopIteration = errors.New("stop iteration")

// zero value works. not threadsafe.
type Anagrammer struct {
	ans         []byte
	freq        [26]uint8
	blanks      uint8
	queryLength int
}

// InitForString sets up the bag of tiles. Letters may be either case;
// WildToken is a blank that can stand for any letter.
func (da *Anagrammer) InitForString(tiles string) error {
	da.freq = [26]uint8{}
	da.blanks = 0
	da.ans = da.ans[:0]
	da.queryLength = 0
	for _, r := range tiles {
		da.queryLength++ // count number of runes, not number of bytes
		var count *uint8
		switch {
		case r == WildToken:
			count = &da.blanks
		case r >= 'a' && r <= 'z':
			count = &da.freq[r-'a']
		case r >= 'A' && r <= 'Z':
			count = &da.freq[r-'A']
		default:
			return fmt.Errorf("invalid rune %v", r)
		}
		if *count == math.MaxUint8 {
			return fmt.Errorf("too many %q tiles", r)
		}
		*count++
	}
	return nil
}

// f must not keep the given slice. if f returns error, abort iteration.
func (da *Anagrammer) iterate(d *Dawg, nodeIdx uint32, exact bool, f func([]byte) error) error {
	for i := nodeIdx; ; i++ {
		letter := d.Letter(i)
		if letter == EndToken {
			if !exact || len(da.ans) == da.queryLength {
				if err := f(da.ans); err != nil {
					return err
				}
			}
		} else if li := letter - 'a'; da.freq[li] > 0 {
			da.freq[li]--
			da.ans = append(da.ans, letter)
			if err := da.iterate(d, d.ArcIndex(i), exact, f); err != nil {
				return err
			}
			da.ans = da.ans[:len(da.ans)-1]
			da.freq[li]++
		} else if da.blanks > 0 {
			da.blanks--
			da.ans = append(da.ans, letter)
			if err := da.iterate(d, d.ArcIndex(i), exact, f); err != nil {
				return err
			}
			da.ans = da.ans[:len(da.ans)-1]
			da.blanks++
		}
		if !d.more(i) {
			return nil
		}
	}
}

// Anagram finds words that use every tile in the bag.
func (da *Anagrammer) Anagram(d *Dawg, f func(word []byte) error) error {
	return da.iterate(d, 0, true, f)
}

// Subanagram finds words that use some or all of the tiles in the bag.
func (da *Anagrammer) Subanagram(d *Dawg, f func(word []byte) error) error {
	return da.iterate(d, 0, false, f)
}

var errHasAnagram = errors.New("has anagram")

func foundAnagram([]byte) error {
	return errHasAnagram
}

// IsValidJumble checks whether the tiles of word, in any order, spell a
// word.
func (da *Anagrammer) IsValidJumble(d *Dawg, word string) (bool, error) {
	if err := da.InitForString(word); err != nil {
		return false, err
	}
	err := da.Anagram(d, foundAnagram)
	if err == nil {
		return false, nil
	} else if err == errHasAnagram {
		return true, nil
	}
	return false, err
}

// Anagram calls f with every word that can be formed with some or all of
// letters, in alphabetical order. letters may contain WildToken. Words use
// lowercase letters, with wildcards shown as the letter they stand for.
func (d *Dawg) Anagram(letters string, f func(word string) error) error {
	da := &Anagrammer{}
	if err := da.InitForString(letters); err != nil {
		return err
	}
	return da.Subanagram(d, func(w []byte) error {
		return f(string(w))
	})
}

// Anagrams is the iterator form of Anagram. An invalid bag yields nothing.
func (d *Dawg) Anagrams(letters string) iter.Seq[string] {
	return func(yield func(string) bool) {
		err := d.Anagram(letters, func(w string) error {
			if !yield(w) {
				return errStopIteration
			}
			return nil
		})
		if err != nil && err != errStopIteration {
			log.Debug().Err(err).Str("letters", letters).Msg("anagram-failed")
		}
	}
}

func (d *Dawg) words(nodeIdx uint32, prefix []byte, f func(word string) error) error {
	for i := nodeIdx; ; i++ {
		letter := d.Letter(i)
		if letter == EndToken {
			if err := f(string(prefix)); err != nil {
				return err
			}
		} else if err := d.words(d.ArcIndex(i), append(prefix, letter), f); err != nil {
			return err
		}
		if !d.more(i) {
			return nil
		}
	}
}

// Words calls f with every word in the dawg, in alphabetical order.
func (d *Dawg) Words(f func(word string) error) error {
	return d.words(0, make([]byte, 0, 16), f)
}

// All is the iterator form of Words.
func (d *Dawg) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		d.Words(func(w string) error {
			if !yield(w) {
				return errStopIteration
			}
			return nil
		})
	}
}
