// This has utility functions for minimizing the DAWG.

package dawgmaker

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Minimize merges nodes that accept the same set of suffixes, turning the
// trie into a DAWG.
// Two nodes are the same if they have the same arc letters and all their
// children are the same. Children are canonicalized before their parents,
// so each node's signature only needs the ids of its canonical children.
func (g *Dawg) Minimize() {
	log.Debug().Msg("Minimizing...")
	calculateDepth(g.Root)
	registry := map[string]*Node{}
	ids := map[*Node]int{}
	canonicalize(g.Root, registry, ids)

	// Point every arc at the canonical copy of its destination.
	g.AllocArcs = 0
	g.AllocStates = 0
	visited := map[*Node]bool{}
	var relink func(*Node)
	relink = func(node *Node) {
		if visited[node] {
			return
		}
		visited[node] = true
		g.AllocStates++
		g.AllocArcs += uint32(len(node.Arcs))
		for _, arc := range node.Arcs {
			if arc.Destination.copyOf != nil {
				arc.Destination = arc.Destination.copyOf
				if arc.Destination.copyOf != nil {
					panic("Chain of nodes - something went wrong!")
				}
			}
			relink(arc.Destination)
		}
	}
	relink(g.Root)
	log.Debug().Msgf("Number of arcs, nodes now: %v, %v", g.AllocArcs, g.AllocStates)
}

func canonicalize(node *Node, registry map[string]*Node, ids map[*Node]int) *Node {
	if node.copyOf != nil {
		return node.copyOf
	}
	if _, done := ids[node]; done {
		return node
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(int(node.depth)))
	for _, arc := range node.Arcs {
		c := canonicalize(arc.Destination, registry, ids)
		sb.WriteByte('|')
		sb.WriteByte(arc.Letter)
		sb.WriteString(strconv.Itoa(ids[c]))
	}
	node.sig = sb.String()
	if existing, ok := registry[node.sig]; ok && existing != node {
		node.copyOf = existing
		return existing
	}
	registry[node.sig] = node
	ids[node] = len(ids)
	return node
}

// Equals compares two nodes. They are the same if they have the same arc
// letters, and all their children are the same.
func (node *Node) Equals(other *Node) bool {
	if len(node.Arcs) != len(other.Arcs) {
		return false
	}
	if node.depth != other.depth {
		return false
	}
	for idx, arc1 := range node.Arcs {
		if arc1.Letter != other.Arcs[idx].Letter {
			return false
		}
		if !arc1.Destination.Equals(other.Arcs[idx].Destination) {
			return false
		}
	}
	return true
}

// Calculates the depth of every node by doing a full recursive traversal.
func calculateDepth(node *Node) uint8 {
	maxDepth := uint8(0)
	for _, arc := range node.Arcs {
		thisDepth := calculateDepth(arc.Destination)
		if thisDepth > maxDepth {
			maxDepth = thisDepth
		}
	}
	node.depth = 1 + maxDepth
	return node.depth
}
