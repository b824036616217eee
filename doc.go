// Package boggle is a word-search engine: a prefix-tree lexicon that prunes
// a backtracking search over a 2-D letter grid, enumerating every dictionary
// word reachable by a simple path of adjacent cells.
//
// What is in the box?
//
//	lexicon/   — immutable rune trie: IsPrefix, IsWord, Classify in O(len(s))
//	wordgrid/  — letter grid with Conn4/Conn8 adjacency, lazy Neighbors,
//	             pruned DFS search (sequential or one task per start cell),
//	             streaming Walk iterator
//	wordlist/  — word list and board readers, Unicode case folding
//	cmd/boggle — command-line solver (solve, check)
//
// Quick ASCII example:
//
//	a a r
//	t c d
//
//	with the dictionary {card, data, cat, tar} every word is found, e.g.
//	c(1,1)→a(0,1)→r(0,2)→d(1,2) spells "card".
//
// Casing is the caller's business: neither the lexicon nor the grid
// normalizes letters. Fold both sides with wordlist.Fold when needed.
//
//	go get github.com/katalvlaran/boggle
package boggle
