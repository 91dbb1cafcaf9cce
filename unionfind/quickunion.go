package unionfind

// QuickUnion is an unweighted disjoint-set forest without compression.
// Union always hangs p's root under q's root, so an adversarial sequence
// of unions builds a chain and Find degrades to O(n).
type QuickUnion struct {
	parent []int
	count  int
}

var _ UnionFind = (*QuickUnion)(nil)

// NewQuickUnion returns a QuickUnion structure of n singleton components.
//
// Errors: ErrInvalidArgument if n <= 0.
func NewQuickUnion(n int) (*QuickUnion, error) {
	if err := checkSize("NewQuickUnion", n); err != nil {
		return nil, err
	}
	return &QuickUnion{parent: identity(n), count: n}, nil
}

// Len returns the number of elements.
func (u *QuickUnion) Len() int { return len(u.parent) }

// Count returns the number of components.
func (u *QuickUnion) Count() int { return u.count }

// Find chases parent pointers to the root. Complexity: O(tree height).
func (u *QuickUnion) Find(p int) (int, error) {
	if err := checkIndex("Find", p, len(u.parent)); err != nil {
		return 0, err
	}
	return u.root(p), nil
}

func (u *QuickUnion) root(p int) int {
	for p != u.parent[p] {
		p = u.parent[p]
	}
	return p
}

// Connected reports whether p and q share a root.
func (u *QuickUnion) Connected(p, q int) (bool, error) {
	if err := checkPair("Connected", p, q, len(u.parent)); err != nil {
		return false, err
	}
	return u.root(p) == u.root(q), nil
}

// Union sets the parent of p's root to q's root.
func (u *QuickUnion) Union(p, q int) error {
	if err := checkPair("Union", p, q, len(u.parent)); err != nil {
		return err
	}
	rootP, rootQ := u.root(p), u.root(q)
	if rootP == rootQ {
		return nil
	}
	u.parent[rootP] = rootQ
	u.count--

	return nil
}
