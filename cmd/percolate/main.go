// Command percolate estimates percolation thresholds and exposes the
// union-find demos behind them.
//
//	percolate stats 200 100
//	percolate stats --n 64 --trials 1000 --workers 8 --format json
//	percolate simulate 20 --seed 7
//	percolate uf < tinyUF.txt
//	echo "heads tails" | percolate randomword
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/percolate/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "percolate:", err)
	}
	os.Exit(cli.ExitCode(err))
}
