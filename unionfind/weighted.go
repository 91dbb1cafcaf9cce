package unionfind

// Weighted is a disjoint-set forest with union-by-size and path halving.
//
// parent[i] is i's parent; a root satisfies parent[i] == i.
// size[i] is the number of elements in the tree rooted at i and is only
// meaningful while i is a root. The sum of size over all roots is always Len().
type Weighted struct {
	parent []int
	size   []int
	count  int
}

var _ UnionFind = (*Weighted)(nil)

// NewWeighted returns a Weighted structure of n singleton components.
//
// Errors: ErrInvalidArgument if n <= 0.
// Complexity: O(n) time and memory.
func NewWeighted(n int) (*Weighted, error) {
	if err := checkSize("NewWeighted", n); err != nil {
		return nil, err
	}
	size := make([]int, n)
	for i := range size {
		size[i] = 1
	}

	return &Weighted{parent: identity(n), size: size, count: n}, nil
}

// Len returns the number of elements.
func (w *Weighted) Len() int { return len(w.parent) }

// Count returns the number of components.
func (w *Weighted) Count() int { return w.count }

// Find returns the root of p's tree.
// Every node visited on the way up is re-pointed at its grandparent,
// halving the path for later lookups.
//
// Complexity: O(α(n)) amortized.
func (w *Weighted) Find(p int) (int, error) {
	if err := checkIndex("Find", p, len(w.parent)); err != nil {
		return 0, err
	}
	return w.root(p), nil
}

// root assumes p is valid.
func (w *Weighted) root(p int) int {
	for p != w.parent[p] {
		w.parent[p] = w.parent[w.parent[p]]
		p = w.parent[p]
	}
	return p
}

// Connected reports whether p and q share a root.
func (w *Weighted) Connected(p, q int) (bool, error) {
	if err := checkPair("Connected", p, q, len(w.parent)); err != nil {
		return false, err
	}
	return w.root(p) == w.root(q), nil
}

// Union links the root of the smaller tree under the root of the larger one.
// On equal sizes p's root goes under q's root.
//
// Complexity: O(α(n)) amortized.
func (w *Weighted) Union(p, q int) error {
	if err := checkPair("Union", p, q, len(w.parent)); err != nil {
		return err
	}
	rootP, rootQ := w.root(p), w.root(q)
	if rootP == rootQ {
		return nil
	}

	if w.size[rootP] > w.size[rootQ] {
		w.parent[rootQ] = rootP
		w.size[rootP] += w.size[rootQ]
	} else {
		w.parent[rootP] = rootQ
		w.size[rootQ] += w.size[rootP]
	}
	w.count--

	return nil
}

// Size returns the number of elements in p's component.
func (w *Weighted) Size(p int) (int, error) {
	if err := checkIndex("Size", p, len(w.parent)); err != nil {
		return 0, err
	}
	return w.size[w.root(p)], nil
}

// Components groups every element by component.
// Members are ascending; groups are ordered by their smallest member.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func (w *Weighted) Components() [][]int {
	groups := make([][]int, 0, w.count)
	slot := make(map[int]int, w.count)
	for i := range w.parent {
		r := w.root(i)
		k, ok := slot[r]
		if !ok {
			k = len(groups)
			slot[r] = k
			groups = append(groups, make([]int, 0, w.size[r]))
		}
		groups[k] = append(groups[k], i)
	}

	return groups
}
