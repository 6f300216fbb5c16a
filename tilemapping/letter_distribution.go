package tilemapping

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LetterDistribution encodes the tile distribution for the game.
type LetterDistribution struct {
	distribution [NumLetters]uint8
	numLetters   int
	Name         string
}

// englishDistribution is in the same csv form that ScanLetterDistribution
// reads: letter,quantity,value
const englishDistribution = `A,9,1
B,2,3
C,2,3
D,4,2
E,12,1
F,2,4
G,3,2
H,2,4
I,9,1
J,1,8
K,1,5
L,4,1
M,2,3
N,6,1
O,8,1
P,2,3
Q,1,10
R,6,1
S,4,1
T,6,1
U,4,1
V,2,4
W,2,4
X,1,8
Y,2,4
Z,1,10
`

// ScanLetterDistribution reads a letter,quantity,value csv. Values must agree
// with LetterValue; they are there so the file documents itself.
func ScanLetterDistribution(name string, data io.Reader) (*LetterDistribution, error) {
	r := csv.NewReader(data)
	r.FieldsPerRecord = 3
	ld := &LetterDistribution{Name: name}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len([]rune(record[0])) != 1 {
			return nil, fmt.Errorf("bad letter field %q", record[0])
		}
		l, err := LetterFromRune([]rune(record[0])[0])
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, err
		}
		p, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, err
		}
		if p != l.Score() {
			return nil, fmt.Errorf("letter %v has value %d, expected %d", l, p, l.Score())
		}
		ld.distribution[l-'A'] = uint8(n)
		ld.numLetters += n
	}
	return ld, nil
}

// EnglishLetterDistribution returns the standard 100-tile distribution.
func EnglishLetterDistribution() *LetterDistribution {
	ld, err := ScanLetterDistribution("english", strings.NewReader(englishDistribution))
	if err != nil {
		panic(err)
	}
	return ld
}

// Count returns how many of the letter the distribution has.
func (ld *LetterDistribution) Count(l Letter) int {
	if !l.IsValid() {
		return 0
	}
	return int(ld.distribution[l-'A'])
}

// NumTotalTiles returns the total number of tiles.
func (ld *LetterDistribution) NumTotalTiles() int {
	return ld.numLetters
}

// MakeBag returns a full bag of tiles.
func (ld *LetterDistribution) MakeBag() *Bag {
	return NewBag(ld, nil)
}
