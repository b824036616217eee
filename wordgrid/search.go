package wordgrid

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// errStopWalk aborts a walk when the consumer of Walk stops iterating.
var errStopWalk = errors.New("wordgrid: walk stopped")

// walker holds the state of one start cell's depth-first search: the current
// path, its letters and the visited set. A walker is never shared between
// goroutines.
type walker struct {
	grid     *Grid
	classify func(string) (prefix, word bool)
	ctx      context.Context
	minLen   int
	maxLen   int
	path     []Cell
	letters  []rune
	visited  []bool
	stats    Stats
	emit     func(word string, path []Cell) bool
}

func newWalker(g *Grid, lex Lexicon, ctx context.Context, o SearchOptions, emit func(string, []Cell) bool) *walker {
	return &walker{
		grid:     g,
		classify: classifierOf(lex),
		ctx:      ctx,
		minLen:   o.MinLength,
		maxLen:   o.MaxLength,
		path:     make([]Cell, 0, g.rows*g.cols),
		letters:  make([]rune, 0, g.rows*g.cols),
		visited:  make([]bool, g.rows*g.cols),
		emit:     emit,
	}
}

// classifierOf prefers a single-traversal Classify when lex offers one.
func classifierOf(lex Lexicon) func(string) (bool, bool) {
	if c, ok := lex.(Classifier); ok {
		return c.Classify
	}

	return func(s string) (bool, bool) {
		if !lex.IsPrefix(s) {
			return false, false
		}

		return true, lex.IsWord(s)
	}
}

// push enters c: marks it visited and appends it to the path.
func (w *walker) push(c Cell) {
	w.visited[w.grid.index(c)] = true
	w.path = append(w.path, c)
	w.letters = append(w.letters, w.grid.Letter(c))
}

// pop leaves the most recently entered cell and unmarks it.
func (w *walker) pop() {
	last := len(w.path) - 1
	w.visited[w.grid.index(w.path[last])] = false
	w.path = w.path[:last]
	w.letters = w.letters[:last]
}

// run explores every path starting at start.
func (w *walker) run(start Cell) error {
	if err := w.explore(start); err != nil {
		return err
	}
	w.stats.Starts++

	return nil
}

// explore extends the current path with c and recurses into unvisited
// neighbors while the path's letters remain a lexicon prefix.
func (w *walker) explore(c Cell) error {
	// 1. Cancellation check
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	// 2. Enter c; pop runs on every exit path below
	w.push(c)
	defer w.pop()
	w.stats.Visited++

	// 3. Prune when no word starts with these letters
	prefix, word := w.classify(string(w.letters))
	if !prefix {
		w.stats.Pruned++
		return nil
	}

	// 4. Record a complete word and keep going: longer words may share it
	if word && len(w.letters) >= w.minLen {
		if !w.emit(string(w.letters), w.path) {
			return errStopWalk
		}
	}

	// 5. Depth limit
	if w.maxLen > 0 && len(w.letters) >= w.maxLen {
		return nil
	}

	// 6. Explore each unvisited neighbor
	for n := range w.grid.Neighbors(c) {
		if w.visited[w.grid.index(n)] {
			continue
		}
		if err := w.explore(n); err != nil {
			return err
		}
	}

	return nil
}

// partial collects the discoveries of one start cell, first path per word.
type partial struct {
	found []Match
	seen  map[string]struct{}
	stats Stats
}

func (p *partial) record(word string, path []Cell) bool {
	if p.seen == nil {
		p.seen = make(map[string]struct{})
	}
	if _, ok := p.seen[word]; ok {
		return true
	}
	p.seen[word] = struct{}{}
	p.found = append(p.found, Match{Word: word, Path: slices.Clone(path)})

	return true
}

// searchStart runs one start cell's search into p.
func (g *Grid) searchStart(ctx context.Context, lex Lexicon, o SearchOptions, idx int, p *partial) error {
	w := newWalker(g, lex, ctx, o, p.record)
	err := w.run(g.cell(idx))
	p.stats = w.stats

	return err
}

// Words returns every distinct lexicon word spelled by a simple path of
// adjacent cells, longest first, then lexicographic. It is Search with
// default options, which cannot fail for a non-nil lexicon; a nil lex
// returns nil. Use Search to tell that case apart from an empty result.
func (g *Grid) Words(lex Lexicon) []string {
	res, err := g.Search(lex)
	if err != nil {
		return nil
	}

	return res.Words
}

// Search launches a pruned backtracking search from every cell and returns
// the distinct words found together with a witness path for each.
//
// Behavior:
//  1. Apply and validate options.
//  2. For every start cell, depth-first: enter the cell, test the path's
//     letters against lex, prune when they prefix no word, record when they
//     form one, recurse into unvisited neighbors, leave the cell.
//  3. With Workers != 1 start cells run concurrently, each with its own path
//     and visited set; partial results are merged in start order so the
//     outcome equals a sequential run.
//  4. If the context ends first, return the partial Result with Truncated
//     set and an error wrapping ErrTruncated and the context error.
//
// Returns ErrNilLexicon for a nil lex and ErrInvalidOption for bad options.
func (g *Grid) Search(lex Lexicon, opts ...Option) (*Result, error) {
	// 1. Validate input and apply options
	if lex == nil {
		return nil, ErrNilLexicon
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	// 2. Search all start cells
	began := time.Now()
	parts := make([]partial, g.rows*g.cols)
	var err error
	if o.Workers == 1 {
		for i := range parts {
			if err = g.searchStart(o.Ctx, lex, o, i, &parts[i]); err != nil {
				break
			}
		}
	} else {
		err = g.searchParallel(lex, o, parts)
	}

	// 3. Merge
	res := merge(parts)
	log := o.Logger.With(
		zap.Int("rows", g.rows),
		zap.Int("cols", g.cols),
		zap.Stringer("conn", g.conn),
		zap.Int("workers", o.Workers),
	)
	if err != nil {
		res.Truncated = true
		log.Warn("search truncated",
			zap.Int("starts_done", res.Stats.Starts),
			zap.Int("starts_total", len(parts)),
			zap.Int("words", len(res.Words)),
			zap.Error(err),
		)

		return res, fmt.Errorf("%w after %d of %d start cells: %w", ErrTruncated, res.Stats.Starts, len(parts), err)
	}
	log.Debug("search complete",
		zap.Int("words", len(res.Words)),
		zap.Int("visited", res.Stats.Visited),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Duration("elapsed", time.Since(began)),
	)

	return res, nil
}

// searchParallel dispatches one task per start cell on an errgroup limited
// to o.Workers goroutines. Each task writes only parts[i].
func (g *Grid) searchParallel(lex Lexicon, o SearchOptions, parts []partial) error {
	eg, ctx := errgroup.WithContext(o.Ctx)
	if o.Workers > 0 {
		eg.SetLimit(o.Workers)
	}
	for i := range parts {
		eg.Go(func() error {
			return g.searchStart(ctx, lex, o, i, &parts[i])
		})
	}

	return eg.Wait()
}

// merge unions the per-start discoveries in start order and sorts the words.
func merge(parts []partial) *Result {
	res := &Result{Paths: make(map[string][]Cell)}
	for i := range parts {
		res.Stats.add(parts[i].stats)
		for _, m := range parts[i].found {
			if _, ok := res.Paths[m.Word]; ok {
				continue
			}
			res.Paths[m.Word] = m.Path
			res.Words = append(res.Words, m.Word)
		}
	}
	SortWords(res.Words)

	return res
}

// SortWords orders words longest first (in runes), then lexicographically.
func SortWords(words []string) {
	slices.SortFunc(words, func(a, b string) int {
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return lb - la
		}

		return strings.Compare(a, b)
	})
}

// Walk returns a sequential stream of every discovery, start cells in
// row-major order. A word reachable by several paths is yielded once per
// path. Breaking out of the range loop stops the search. Workers is
// ignored.
//
// A walk that cannot start or does not finish ends with a single
// (Match{}, err) pair: ErrNilLexicon, ErrInvalidOption, or ErrTruncated
// wrapping the context error. A stream without an error pair is complete.
func (g *Grid) Walk(lex Lexicon, opts ...Option) iter.Seq2[Match, error] {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return func(yield func(Match, error) bool) {
		if lex == nil {
			yield(Match{}, ErrNilLexicon)
			return
		}
		if err := o.validate(); err != nil {
			yield(Match{}, err)
			return
		}
		emit := func(word string, path []Cell) bool {
			return yield(Match{Word: word, Path: slices.Clone(path)}, nil)
		}
		total := g.rows * g.cols
		for i := 0; i < total; i++ {
			w := newWalker(g, lex, o.Ctx, o, emit)
			err := w.run(g.cell(i))
			if errors.Is(err, errStopWalk) {
				return
			}
			if err != nil {
				yield(Match{}, fmt.Errorf("%w after %d of %d start cells: %w", ErrTruncated, i, total, err))
				return
			}
		}
	}
}
