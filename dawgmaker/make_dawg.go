// Package dawgmaker has utility functions for creating a packed DAWG
// from a word list.
package dawgmaker

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zlib"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilegame/dawg"
)

// Node is a temporary type used in the creation of a DAWG.
// It will not be used when loading the DAWG.
type Node struct {
	Arcs []*Arc
	// Utility fields, for minimizing the DAWG at the end:
	copyOf *Node
	depth  uint8
	sig    string
}

// Arc is also a temporary type.
type Arc struct {
	Letter      byte
	Destination *Node
}

// Dawg is a temporary structure to hold the nodes prior to serializing
// them. It should not be used after making the table.
type Dawg struct {
	Root        *Node
	AllocStates uint32
	AllocArcs   uint32
	NumWords    int

	// every word ends with an arc to this node.
	terminal *Node
}

type ArcPtrSlice []*Arc

func (a ArcPtrSlice) Len() int           { return len(a) }
func (a ArcPtrSlice) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ArcPtrSlice) Less(i, j int) bool { return a[i].Letter < a[j].Letter }

// ReadWords reads a word list, one word per line; only the first field of a
// line is used. Words are lower-cased. Lines with anything other than the
// letters a-z are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		word := strings.ToLower(fields[0])
		if !validWord(word) {
			log.Warn().Str("word", fields[0]).Msg("skipping-invalid-word")
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// ReadWordsFile is ReadWords on a file.
func ReadWordsFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadWords(file)
}

func validWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

// Create a new node.
func (g *Dawg) createNode() *Node {
	g.AllocStates++
	return &Node{}
}

// Does the Node contain an arc for the letter c? Return the arc if so.
func (node *Node) containsArc(c byte) *Arc {
	for _, arc := range node.Arcs {
		if arc.Letter == c {
			return arc
		}
	}
	return nil
}

// Adds an arc from node for c (if one does not already exist) and
// returns the node this arc leads to.
func (node *Node) addArc(c byte, g *Dawg) *Node {
	if existing := node.containsArc(c); existing != nil {
		return existing.Destination
	}
	var next *Node
	if c == dawg.EndToken {
		next = g.terminal
	} else {
		next = g.createNode()
	}
	node.Arcs = append(node.Arcs, &Arc{Letter: c, Destination: next})
	g.AllocArcs++
	return next
}

type nodeTraversalFn func(*Node)

func traverseTreeAndExecute(node *Node, fn nodeTraversalFn) {
	fn(node)
	for _, arc := range node.Arcs {
		traverseTreeAndExecute(arc.Destination, fn)
	}
}

// GenerateDawg makes a DAWG out of the words, and optionally minimizes it.
// Words must already be lowercase a-z; duplicates are harmless.
func GenerateDawg(words []string, minimize bool) *Dawg {
	g := &Dawg{}
	g.Root = g.createNode()
	g.terminal = g.createNode()
	log.Debug().Int("words", len(words)).Msg("generating-dawg")
	for idx, word := range words {
		if idx%10000 == 0 && idx > 0 {
			log.Debug().Msgf("%d...", idx)
		}
		if !validWord(word) {
			log.Warn().Str("word", word).Msg("skipping-invalid-word")
			continue
		}
		st := g.Root
		for j := 0; j < len(word); j++ {
			st = st.addArc(word[j], g)
		}
		before := g.AllocArcs
		st.addArc(dawg.EndToken, g)
		if g.AllocArcs != before {
			g.NumWords++
		}
	}
	log.Debug().Msgf("Allocated arcs: %d states: %d", g.AllocArcs, g.AllocStates)
	// Sort the arcs so that a node's run is in alphabetical order, with the
	// end token (which sorts before 'a') first.
	traverseTreeAndExecute(g.Root, func(node *Node) {
		sort.Sort(ArcPtrSlice(node.Arcs))
	})
	if minimize {
		g.Minimize()
	} else {
		log.Debug().Msg("Not minimizing.")
	}
	return g
}

// Serialize lays the nodes out as a flat record table, with the root's
// run first.
func (g *Dawg) Serialize() ([]uint32, error) {
	if len(g.Root.Arcs) == 0 {
		return nil, errors.New("cannot serialize a dawg with no words")
	}
	indices := map[*Node]uint32{}
	order := []*Node{}
	next := 0
	queue := []*Node{g.Root}
	indices[g.Root] = 0
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		indices[node] = uint32(next)
		next += len(node.Arcs)
		if next-1 > dawg.IndexMask {
			return nil, fmt.Errorf("table too large: %d records", next)
		}
		order = append(order, node)
		for _, arc := range node.Arcs {
			if len(arc.Destination.Arcs) == 0 {
				continue
			}
			if _, seen := indices[arc.Destination]; !seen {
				indices[arc.Destination] = 0
				queue = append(queue, arc.Destination)
			}
		}
	}
	records := make([]uint32, next)
	for _, node := range order {
		base := indices[node]
		for j, arc := range node.Arcs {
			rec := uint32(arc.Letter) << dawg.LetterBitLoc
			if j < len(node.Arcs)-1 {
				rec |= dawg.MoreFlag
			}
			if arc.Letter != dawg.EndToken {
				rec |= indices[arc.Destination]
			}
			records[base+uint32(j)] = rec
		}
	}
	log.Debug().Int("records", len(records)).Int("nodes", len(order)).Msg("serialized-dawg")
	return records, nil
}

// Encode writes the persisted form of a record table: little-endian
// records, zlib-compressed, as base64 text.
func Encode(records []uint32) ([]byte, error) {
	raw := make([]byte, len(records)*4)
	for i, rec := range records {
		binary.LittleEndian.PutUint32(raw[i*4:], rec)
	}
	var compressed bytes.Buffer
	zw, err := zlib.NewWriterLevel(&compressed, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(compressed.Len()))
	base64.StdEncoding.Encode(out, compressed.Bytes())
	return out, nil
}

// Build is the whole pipeline: words in, loaded dawg out.
func Build(words []string) (*dawg.Dawg, error) {
	records, err := GenerateDawg(words, true).Serialize()
	if err != nil {
		return nil, err
	}
	return dawg.FromRecords(records)
}

// Save generates, serializes and encodes the words into filename.
func Save(words []string, filename string) error {
	records, err := GenerateDawg(words, true).Serialize()
	if err != nil {
		return err
	}
	text, err := Encode(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, text, 0o644); err != nil {
		return err
	}
	log.Info().Str("filename", filename).Int("records", len(records)).Msg("saved-dawg")
	return nil
}
