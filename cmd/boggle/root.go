package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/boggle/internal/config"
	"github.com/katalvlaran/boggle/lexicon"
	"github.com/katalvlaran/boggle/wordlist"
)

// app carries state shared by all subcommands.
type app struct {
	verbose    bool
	configPath string
	logger     *zap.Logger

	// dictionary flags, shared by solve and check
	dict string
	fold bool
}

// newRootCmd builds the command tree. A nil logger is replaced by a zap
// production logger once flags are parsed.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	a := &app{logger: logger}

	root := &cobra.Command{
		Use:   "boggle",
		Short: "Find dictionary words in a grid of letters",
		Long: `boggle searches a rectangular letter grid for every dictionary word that can
be spelled by moving between adjacent cells without reusing a cell.

A prefix tree built from the dictionary prunes the search as soon as the
letters collected so far cannot start any word.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			zc := zap.NewProductionConfig()
			if a.verbose {
				zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			a.logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.dict, "dict", "d", "", "word list, one word per line (default "+wordlist.DefaultPath+")")
	root.PersistentFlags().BoolVar(&a.fold, "fold", false, "case-fold the dictionary, board and queries")

	root.AddCommand(newSolveCmd(a), newCheckCmd(a))

	return root
}

// loadConfig returns defaults, overlaid by --config, overlaid by any
// persistent flag the user set explicitly.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("dict") {
		cfg.Dictionary = a.dict
	}
	if flags.Changed("fold") {
		cfg.Fold = a.fold
	}

	return cfg, nil
}

// loadLexicon reads the configured dictionary into a lexicon.
func (a *app) loadLexicon(cfg config.Config) (*lexicon.Lexicon, error) {
	words, err := wordlist.ReadFile(cfg.Dictionary, wordlist.WithFold(cfg.Fold))
	if err != nil {
		return nil, err
	}
	lx := lexicon.New(words)
	a.logger.Debug("dictionary loaded",
		zap.String("path", cfg.Dictionary),
		zap.Int("words", lx.Len()),
		zap.Bool("fold", cfg.Fold),
	)

	return lx, nil
}
