package percolation

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/percolate/unionfind"
)

// Model is an n-by-n percolation system.
type Model struct {
	n          int
	open       []bool // indexed by flat site id; 0 and n*n+1 are the virtual sites
	opened     int
	percolates bool
	top        int
	bottom     int
	full       *unionfind.Weighted // with virtual bottom
	topOnly    *unionfind.Weighted // without virtual bottom
}

// New returns an n-by-n grid with every site closed.
//
// Errors: ErrInvalidArgument if n <= 0 or n*n+2 does not fit in an int.
// Complexity: O(n²) time and memory.
func New(n int) (*Model, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New: %w: n must be greater than 0, got %d", ErrInvalidArgument, n)
	}
	if n > (math.MaxInt-2)/n {
		return nil, fmt.Errorf("New: %w: n*n+2 overflows int, got n=%d", ErrInvalidArgument, n)
	}
	sites := n * n
	full, err := unionfind.NewWeighted(sites + 2)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	topOnly, err := unionfind.NewWeighted(sites + 1)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	m := &Model{
		n:       n,
		open:    make([]bool, sites+2),
		top:     0,
		bottom:  sites + 1,
		full:    full,
		topOnly: topOnly,
	}
	m.open[m.top] = true
	m.open[m.bottom] = true

	return m, nil
}

// Size returns n, the side length of the grid.
func (m *Model) Size() int { return m.n }

// NumberOfOpenSites returns how many distinct sites have been opened.
func (m *Model) NumberOfOpenSites() int { return m.opened }

// Open opens site (row, col) and joins it with the virtual top (row 1),
// the virtual bottom (row n, full structure only) and every open neighbour.
// Opening an already open site does nothing.
//
// Errors: ErrInvalidArgument if row or col is outside [1, n].
// Complexity: O(α(n²)) amortized.
func (m *Model) Open(row, col int) error {
	i, err := m.site("Open", row, col)
	if err != nil {
		return err
	}
	if m.open[i] {
		return nil
	}
	m.open[i] = true
	m.opened++

	if row == 1 {
		if err := m.join(i, m.top); err != nil {
			return err
		}
	}
	if row == m.n {
		if err := m.full.Union(i, m.bottom); err != nil {
			return fmt.Errorf("Open: %w", err)
		}
	}
	for _, d := range neighborOffsets {
		r, c := row+d[0], col+d[1]
		if !m.inBounds(r, c) {
			continue
		}
		j := m.index(r, c)
		if !m.open[j] {
			continue
		}
		if err := m.join(i, j); err != nil {
			return err
		}
	}

	if !m.percolates {
		ok, err := m.full.Connected(m.top, m.bottom)
		if err != nil {
			return fmt.Errorf("Open: %w", err)
		}
		m.percolates = ok
	}
	return nil
}

// IsOpen reports whether site (row, col) is open.
//
// Errors: ErrInvalidArgument if row or col is outside [1, n].
func (m *Model) IsOpen(row, col int) (bool, error) {
	i, err := m.site("IsOpen", row, col)
	if err != nil {
		return false, err
	}
	return m.open[i], nil
}

// IsFull reports whether site (row, col) is open and connected to the top row
// through open sites. The answer comes from the structure without a virtual
// bottom, so it is never affected by backwash.
//
// Errors: ErrInvalidArgument if row or col is outside [1, n].
// Complexity: O(α(n²)) amortized.
func (m *Model) IsFull(row, col int) (bool, error) {
	i, err := m.site("IsFull", row, col)
	if err != nil {
		return false, err
	}
	if !m.open[i] {
		return false, nil
	}
	ok, err := m.topOnly.Connected(i, m.top)
	if err != nil {
		return false, fmt.Errorf("IsFull: %w", err)
	}
	return ok, nil
}

// Percolates reports whether the virtual top and virtual bottom are connected.
// Sites never close, so the answer is recorded by Open once it turns true.
//
// Complexity: O(1).
func (m *Model) Percolates() bool { return m.percolates }

// String renders the grid one row per line using GlyphClosed, GlyphOpen and GlyphFull.
func (m *Model) String() string {
	var sb strings.Builder
	sb.Grow(m.n * (m.n + 1))
	for row := 1; row <= m.n; row++ {
		for col := 1; col <= m.n; col++ {
			g := GlyphClosed
			if full, _ := m.IsFull(row, col); full {
				g = GlyphFull
			} else if m.open[m.index(row, col)] {
				g = GlyphOpen
			}
			sb.WriteRune(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// join unions a and b in both structures.
func (m *Model) join(a, b int) error {
	if err := m.full.Union(a, b); err != nil {
		return fmt.Errorf("Open: %w", err)
	}
	if err := m.topOnly.Union(a, b); err != nil {
		return fmt.Errorf("Open: %w", err)
	}
	return nil
}

// site validates (row, col) and returns its flat index.
// Bounds are checked before the multiply so no out-of-range value reaches unionfind.
func (m *Model) site(method string, row, col int) (int, error) {
	if row < 1 || row > m.n {
		return 0, fmt.Errorf("%s: %w: row %d is not between 1 and %d", method, ErrInvalidArgument, row, m.n)
	}
	if col < 1 || col > m.n {
		return 0, fmt.Errorf("%s: %w: col %d is not between 1 and %d", method, ErrInvalidArgument, col, m.n)
	}
	return m.index(row, col), nil
}

// inBounds reports whether (row, col) lies on the grid.
func (m *Model) inBounds(row, col int) bool {
	return row >= 1 && row <= m.n && col >= 1 && col <= m.n
}

// index maps (row, col) to (row-1)·n + col.
func (m *Model) index(row, col int) int {
	return (row-1)*m.n + col
}
