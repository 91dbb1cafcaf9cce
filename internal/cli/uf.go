package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolate/unionfind"
)

func (a *app) ufCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "uf",
		Short: "Read n and integer pairs from stdin; print each pair that joins two components",
		Long: "uf reads an element count n followed by pairs p q (0 <= p, q < n) from stdin.\n" +
			"Every pair that connects two previously separate components is echoed,\n" +
			"and the final number of components is printed last.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.log.Printf("union-find variant %s", kind)
			return runUnionFind(cmd.InOrStdin(), cmd.OutOrStdout(), unionfind.Kind(kind))
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(unionfind.KindWeighted), "variant: weighted, quickunion or quickfind")

	return cmd
}

func runUnionFind(r io.Reader, w io.Writer, kind unionfind.Kind) error {
	in := newTokenScanner(r)
	n, err := in.nextInt()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: missing element count", ErrUsage)
	}
	if err != nil {
		return err
	}
	uf, err := unionfind.New(kind, n)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	defer out.Flush()
	for {
		p, err := in.nextInt()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		q, err := in.nextInt()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: element %d has no partner", ErrUsage, p)
		}
		if err != nil {
			return err
		}

		ok, err := uf.Connected(p, q)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := uf.Union(p, q); err != nil {
			return err
		}
		fmt.Fprintf(out, "%d %d\n", p, q)
	}
	fmt.Fprintf(out, "%d components\n", uf.Count())

	return out.Flush()
}
