package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/boggle/internal/config"
	"github.com/katalvlaran/boggle/wordgrid"
	"github.com/katalvlaran/boggle/wordlist"
)

// solveFlags holds flags local to the solve command.
type solveFlags struct {
	board     string
	adjacency int
	minLength int
	maxLength int
	workers   int
	timeout   time.Duration
	paths     bool
	json      bool
}

// solveOutput is the --json document.
type solveOutput struct {
	Words     []string                   `json:"words"`
	Paths     map[string][]wordgrid.Cell `json:"paths,omitempty"`
	Truncated bool                       `json:"truncated"`
	Stats     wordgrid.Stats             `json:"stats"`
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [row...]",
		Short: "List every dictionary word in a letter grid",
		Long: `Reads the grid from the arguments (one row per argument) or from --board,
then prints every word found, longest first.

A search cut short by --timeout or an interrupt prints what it found so far
and exits non-zero.`,
		Example: `  boggle solve aar tcd --dict words.txt
  boggle solve --board board.txt --adjacency 4 --min 4 --paths`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args, &f)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.board, "board", "b", "", "board file, one row per line")
	fl.IntVarP(&f.adjacency, "adjacency", "a", 8, "4 (orthogonal) or 8 (with diagonals)")
	fl.IntVar(&f.minLength, "min", 3, "shortest word to report")
	fl.IntVar(&f.maxLength, "max", 0, "longest path to explore, 0 for no limit")
	fl.IntVarP(&f.workers, "workers", "w", 1, "concurrent start-cell searches, 0 for one per cell")
	fl.DurationVarP(&f.timeout, "timeout", "t", 0, "stop searching after this long, 0 for no limit")
	fl.BoolVarP(&f.paths, "paths", "p", false, "print the cells spelling each word")
	fl.BoolVar(&f.json, "json", false, "print JSON")

	return cmd
}

// applySolveFlags overlays explicitly set solve flags on cfg.
func applySolveFlags(cmd *cobra.Command, f *solveFlags, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("adjacency") {
		cfg.Adjacency = f.adjacency
	}
	if fl.Changed("min") {
		cfg.MinLength = f.minLength
	}
	if fl.Changed("max") {
		cfg.MaxLength = f.maxLength
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
}

func (a *app) runSolve(cmd *cobra.Command, args []string, f *solveFlags) error {
	// 1. Resolve configuration
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	applySolveFlags(cmd, f, &cfg)
	if err = cfg.Validate(); err != nil {
		return err
	}

	// 2. Read the board
	rows := args
	if f.board != "" {
		if len(args) > 0 {
			return errors.New("give the board either as arguments or with --board, not both")
		}
		if rows, err = wordlist.ReadBoardFile(f.board); err != nil {
			return err
		}
	}
	if cfg.Fold {
		folded := make([]string, len(rows))
		for i, r := range rows {
			folded[i] = wordlist.Fold(r)
		}
		rows = folded
	}
	grid, err := wordgrid.New(rows, wordgrid.GridOptions{Conn: cfg.Connectivity()})
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	// 3. Build the lexicon
	lx, err := a.loadLexicon(cfg)
	if err != nil {
		return err
	}

	// 4. Search
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}
	opts := append(cfg.SearchOptions(), wordgrid.WithContext(ctx), wordgrid.WithLogger(a.logger))
	res, searchErr := grid.Search(lx, opts...)
	if searchErr != nil && !errors.Is(searchErr, wordgrid.ErrTruncated) {
		return searchErr
	}
	a.logger.Info("search finished",
		zap.Int("words", len(res.Words)),
		zap.Int("visited", res.Stats.Visited),
		zap.Int("pruned", res.Stats.Pruned),
		zap.Bool("truncated", res.Truncated),
	)

	// 5. Report
	if err = printResult(cmd.OutOrStdout(), res, f); err != nil {
		return err
	}

	return searchErr
}

// printResult writes res as text or JSON.
func printResult(w io.Writer, res *wordgrid.Result, f *solveFlags) error {
	if f.json {
		out := solveOutput{
			Words:     res.Words,
			Truncated: res.Truncated,
			Stats:     res.Stats,
		}
		if out.Words == nil {
			out.Words = []string{}
		}
		if f.paths {
			out.Paths = res.Paths
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, word := range res.Words {
		if !f.paths {
			if _, err := fmt.Fprintln(w, word); err != nil {
				return err
			}
			continue
		}
		cells := make([]string, len(res.Paths[word]))
		for i, c := range res.Paths[word] {
			cells[i] = c.String()
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", word, strings.Join(cells, " ")); err != nil {
			return err
		}
	}

	return nil
}
