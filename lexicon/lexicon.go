package lexicon

import (
	"iter"
	"slices"
)

// node is a single trie vertex. Each node is owned by exactly one parent;
// the root is owned by the Lexicon.
type node struct {
	children map[rune]*node
	terminal bool
}

// child returns the child reached through r, or nil.
func (n *node) child(r rune) *node {
	if n.children == nil {
		return nil
	}

	return n.children[r]
}

// emptyRoot stands in for the root of a nil or zero-value Lexicon.
// It is never mutated.
var emptyRoot = &node{}

// Lexicon is an immutable prefix tree built once from a word list.
// A nil *Lexicon or a zero Lexicon behaves as an empty one.
type Lexicon struct {
	root  *node
	count int
}

// New builds a Lexicon from words. Duplicates are idempotent and empty
// strings are ignored. An empty or nil slice yields a lexicon holding only
// its root.
// Complexity: O(total runes).
func New(words []string) *Lexicon {
	return FromSeq(slices.Values(words))
}

// FromSeq builds a Lexicon from every word produced by seq.
// The sequence is consumed exactly once.
func FromSeq(seq iter.Seq[string]) *Lexicon {
	lx := &Lexicon{root: &node{}}
	for w := range seq {
		lx.insert(w)
	}

	return lx
}

// insert adds w rune by rune, creating nodes on demand.
func (lx *Lexicon) insert(w string) {
	if w == "" {
		return
	}
	cur := lx.root
	for _, r := range w {
		next := cur.child(r)
		if next == nil {
			if cur.children == nil {
				cur.children = make(map[rune]*node)
			}
			next = &node{}
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		lx.count++
	}
}

// top returns the root, or emptyRoot for a nil or zero Lexicon.
func (lx *Lexicon) top() *node {
	if lx == nil || lx.root == nil {
		return emptyRoot
	}

	return lx.root
}

// find walks s from the root and returns the node it ends on, or nil.
func (lx *Lexicon) find(s string) *node {
	cur := lx.top()
	for _, r := range s {
		if cur = cur.child(r); cur == nil {
			return nil
		}
	}

	return cur
}

// IsPrefix reports whether s is a prefix of at least one stored word.
// The empty string is always a prefix, even of an empty lexicon.
// Complexity: O(len(s)).
func (lx *Lexicon) IsPrefix(s string) bool {
	return lx.find(s) != nil
}

// IsWord reports whether s is a stored word.
// Complexity: O(len(s)).
func (lx *Lexicon) IsWord(s string) bool {
	n := lx.find(s)

	return n != nil && n.terminal
}

// Classify answers IsPrefix and IsWord for s with one traversal.
func (lx *Lexicon) Classify(s string) (prefix, word bool) {
	n := lx.find(s)
	if n == nil {
		return false, false
	}

	return true, n.terminal
}

// Len returns the number of distinct words stored.
func (lx *Lexicon) Len() int {
	if lx == nil {
		return 0
	}

	return lx.count
}

// Words returns every stored word in ascending rune order.
func (lx *Lexicon) Words() []string {
	out := make([]string, 0, lx.Len())
	buf := make([]rune, 0, 16)

	var collect func(n *node)
	collect = func(n *node) {
		if n.terminal {
			out = append(out, string(buf))
		}
		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		slices.Sort(keys)
		for _, r := range keys {
			buf = append(buf, r)
			collect(n.children[r])
			buf = buf[:len(buf)-1]
		}
	}
	collect(lx.top())

	return out
}
