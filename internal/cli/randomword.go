package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/random"
	"github.com/katalvlaran/percolate/reservoir"
)

func (a *app) randomWordCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "randomword",
		Short: "Print one whitespace-separated token from stdin, chosen uniformly at random",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := reservoir.NewSampler(random.New(a.seed(seed)))
			in := newTokenScanner(cmd.InOrStdin())
			for {
				tok, err := in.next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				s.Offer(tok)
			}

			champ, ok := s.Champion()
			if !ok {
				return reservoir.ErrEmpty
			}
			a.log.Printf("picked from %d tokens", s.Seen())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), champ)
			return err
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")

	return cmd
}
