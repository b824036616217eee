// Package lexicon implements an immutable prefix tree (trie) over runes,
// answering word and prefix membership queries for a fixed word list.
//
// What:
//
//   - Lexicon owns a root node; every node maps a rune to exactly one child
//     and carries a terminal flag marking the end of a stored word.
//   - IsPrefix reports whether any stored word starts with the query.
//   - IsWord reports whether the query is itself a stored word.
//   - Classify answers both questions with a single traversal.
//
// Why:
//
//   - Word games: prune grid or board searches the moment the letters
//     collected so far cannot be extended to a real word.
//   - Autocomplete and spell checking over a closed vocabulary.
//
// Complexity:
//
//   - New / FromSeq: O(total runes), Memory: O(total runes).
//   - IsPrefix, IsWord, Classify: O(len(s)).
//   - Words: O(total runes · log σ), σ = alphabet size per node.
//
// Casing:
//
//	The lexicon performs no normalization. If the word list and the queries
//	use different casing, lookups silently miss. Fold both sides first
//	(see package wordlist) when case-insensitive matching is wanted.
//
// A Lexicon is read-only after construction and safe for concurrent use.
package lexicon
