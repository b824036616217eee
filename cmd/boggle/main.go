// Command boggle finds every dictionary word hidden in a letter grid.
//
//	boggle solve aar tcd --dict words.txt
//	boggle solve --board board.txt --adjacency 4 --min 4 --paths
//	boggle check car ca zz --dict words.txt
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(nil).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
