// Package dawg implements a read-only word graph packed into a flat table
// of 32-bit records, for a very small memory footprint.
//
// Each record is MLLLLLLL IIIIIIII IIIIIIII IIIIIIII
//
//	M - more flag: the next record is another sibling of the same node
//	L - 7-bit ASCII edge label, a lowercase letter or EndToken
//	I - index of the first record of the child node
//
// All searches start at index 0. A node is the run of records from its
// first index up to and including the first record without the more flag.
// An EndToken edge means the path so far spells a word.
package dawg

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zlib"
	"github.com/rs/zerolog/log"
)

const (
	// EndToken is the edge label that marks the end of a word.
	EndToken = '$'
	// WildToken stands for any letter in anagram queries.
	WildToken = '?'

	MoreFlag     = 0x80000000
	LetterBitLoc = 24
	LetterMask   = 0x7f
	IndexMask    = (1 << LetterBitLoc) - 1

	FileExtension = ".dawg"
)

var ErrCorrupt = errors.New("corrupt dawg")

// Dawg is the packed record table. It is never modified after it is
// loaded, so any number of goroutines may query it at once.
type Dawg struct {
	records     []uint32
	lexiconName string
}

// Decode reads the persisted form: base64 text of the zlib-compressed
// little-endian record table.
func Decode(text []byte) (*Dawg, error) {
	text = bytes.TrimSpace(text)
	compressed := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(compressed, text)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %w", ErrCorrupt, err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed[:n]))
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %w", ErrCorrupt, err)
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: zlib: %w", ErrCorrupt, err)
	}
	return FromBytes(raw)
}

// FromBytes builds a Dawg from the uncompressed record table.
func FromBytes(raw []byte) (*Dawg, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: table length %d is not a multiple of 4", ErrCorrupt, len(raw))
	}
	records := make([]uint32, len(raw)/4)
	for i := range records {
		records[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return FromRecords(records)
}

// FromRecords wraps an already-unpacked table. The slice must not be
// modified afterwards.
func FromRecords(records []uint32) (*Dawg, error) {
	d := &Dawg{records: records}
	if err := d.verify(); err != nil {
		return nil, err
	}
	log.Debug().Int("num-records", len(records)).Msg("loaded-dawg")
	return d, nil
}

// verify checks that every scan of the table stays in bounds.
func (d *Dawg) verify() error {
	n := uint32(len(d.records))
	if n == 0 {
		return fmt.Errorf("%w: empty table", ErrCorrupt)
	}
	if d.more(n - 1) {
		// Otherwise the last run would never terminate.
		return fmt.Errorf("%w: last record has the more flag set", ErrCorrupt)
	}
	for i := uint32(0); i < n; i++ {
		letter := d.Letter(i)
		if letter == EndToken {
			continue
		}
		if letter < 'a' || letter > 'z' {
			return fmt.Errorf("%w: record %d has label %q", ErrCorrupt, i, letter)
		}
		if idx := d.ArcIndex(i); idx == 0 || idx >= n {
			return fmt.Errorf("%w: record %d points to %d", ErrCorrupt, i, idx)
		}
	}
	return nil
}

// LoadFile loads a persisted dawg. The lexicon name is the file name
// without its extension.
func LoadFile(filename string) (*Dawg, error) {
	log.Debug().Msgf("Loading %v ...", filename)
	text, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	d, err := Decode(text)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", filename, err)
	}
	d.lexiconName = strings.TrimSuffix(filepath.Base(filename), FileExtension)
	return d, nil
}

func (d *Dawg) LexiconName() string {
	return d.lexiconName
}

// SetLexiconName names a dawg that wasn't loaded from a file.
func (d *Dawg) SetLexiconName(name string) {
	d.lexiconName = name
}

// NumRecords returns the size of the table.
func (d *Dawg) NumRecords() int {
	return len(d.records)
}

func (d *Dawg) more(idx uint32) bool {
	return d.records[idx]&MoreFlag != 0
}

// Letter returns the edge label of the record at idx.
func (d *Dawg) Letter(idx uint32) byte {
	return byte(d.records[idx]>>LetterBitLoc) & LetterMask
}

// ArcIndex returns the first record of the child node of the record at idx.
func (d *Dawg) ArcIndex(idx uint32) uint32 {
	return d.records[idx] & IndexMask
}

// NextNodeIdx follows the edge labelled letter out of the node starting at
// nodeIdx.
func (d *Dawg) NextNodeIdx(nodeIdx uint32, letter byte) (uint32, bool) {
	for i := nodeIdx; ; i++ {
		if d.Letter(i) == letter {
			return d.ArcIndex(i), true
		}
		if !d.more(i) {
			return 0, false
		}
	}
}

// IterateSiblings calls cb for every edge of the node starting at nodeIdx.
func (d *Dawg) IterateSiblings(nodeIdx uint32, cb func(letter byte, next uint32)) {
	for i := nodeIdx; ; i++ {
		cb(d.Letter(i), d.ArcIndex(i))
		if !d.more(i) {
			break
		}
	}
}
