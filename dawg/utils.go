package dawg

import "strings"

// Contains returns true if word is in the dawg. The lookup is
// case-insensitive.
func (d *Dawg) Contains(word string) bool {
	nodeIdx, ok := d.walk(strings.ToLower(word))
	if !ok {
		return false
	}
	_, ok = d.NextNodeIdx(nodeIdx, EndToken)
	return ok
}

// HasPrefix returns true if some word starts with prefix.
func (d *Dawg) HasPrefix(prefix string) bool {
	_, ok := d.walk(strings.ToLower(prefix))
	return ok
}

// Children returns the edge labels that may follow prefix, in table order
// (EndToken first if the prefix is itself a word, then the letters
// alphabetically). It returns nil if no word starts with prefix.
func (d *Dawg) Children(prefix string) []rune {
	nodeIdx, ok := d.walk(strings.ToLower(prefix))
	if !ok {
		return nil
	}
	runes := []rune{}
	d.IterateSiblings(nodeIdx, func(letter byte, _ uint32) {
		runes = append(runes, rune(letter))
	})
	return runes
}

// walk resolves prefix edge by edge from the root and returns the index of
// the node it ends at.
func (d *Dawg) walk(prefix string) (uint32, bool) {
	nodeIdx := uint32(0)
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c == EndToken {
			return 0, false
		}
		next, ok := d.NextNodeIdx(nodeIdx, c)
		if !ok || next == 0 {
			return 0, false
		}
		nodeIdx = next
	}
	return nodeIdx, true
}
