package unionfind

// QuickFind stores each element's component id directly.
// Connected is a single comparison but every Union scans the whole array,
// so n unions cost O(n²).
type QuickFind struct {
	id    []int
	count int
}

var _ UnionFind = (*QuickFind)(nil)

// NewQuickFind returns a QuickFind structure of n singleton components.
//
// Errors: ErrInvalidArgument if n <= 0.
func NewQuickFind(n int) (*QuickFind, error) {
	if err := checkSize("NewQuickFind", n); err != nil {
		return nil, err
	}
	return &QuickFind{id: identity(n), count: n}, nil
}

// Len returns the number of elements.
func (f *QuickFind) Len() int { return len(f.id) }

// Count returns the number of components.
func (f *QuickFind) Count() int { return f.count }

// Find returns p's component id. Complexity: O(1).
func (f *QuickFind) Find(p int) (int, error) {
	if err := checkIndex("Find", p, len(f.id)); err != nil {
		return 0, err
	}
	return f.id[p], nil
}

// Connected compares component ids. Complexity: O(1).
func (f *QuickFind) Connected(p, q int) (bool, error) {
	if err := checkPair("Connected", p, q, len(f.id)); err != nil {
		return false, err
	}
	return f.id[p] == f.id[q], nil
}

// Union relabels every member of p's component with q's id.
// Complexity: O(n).
func (f *QuickFind) Union(p, q int) error {
	if err := checkPair("Union", p, q, len(f.id)); err != nil {
		return err
	}
	pid, qid := f.id[p], f.id[q]
	if pid == qid {
		return nil
	}
	for i := range f.id {
		if f.id[i] == pid {
			f.id[i] = qid
		}
	}
	f.count--

	return nil
}
