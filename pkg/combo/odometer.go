package combo

import "fmt"

// none marks a missing neighbour in the column arena.
const none = -1

// column is one wheel of the odometer. Neighbours are arena indices and are
// set exactly once by [NewOdometer].
type column struct {
	count    int
	value    int
	left     int
	right    int
	started  bool
	finished bool
}

// Odometer enumerates every assignment of distinct values 0..n-1 to n
// columns. Columns are kept in an arena and refer to each other by index, so
// the left/right links never form ownership cycles.
//
// The leftmost column drives the enumeration: [Column.Start] produces the
// first assignment and every successful [Column.Advance] produces the next one
// in lexicographic order. Advancing a column resets every column to its right,
// which then searches for the first value not held further left.
//
// An Odometer is not restartable and not safe for concurrent use.
type Odometer struct {
	cols []column
}

// Column is a handle to one column of an [Odometer].
type Column struct {
	o   *Odometer
	idx int
}

// Pair is one column's share of an assignment.
type Pair struct {
	Column int
	Value  int
}

// NewOdometer builds a chain of n columns, each allowed the values 0..n-1,
// linked left to right.
func NewOdometer(n int) (*Odometer, error) {
	if n < 1 {
		return nil, fmt.Errorf("odometer of %d columns: %w", n, ErrInvalidCount)
	}
	cols := make([]column, n)
	for i := range cols {
		cols[i] = column{count: n, left: i - 1, right: i + 1}
	}
	cols[n-1].right = none
	return &Odometer{cols: cols}, nil
}

// Len returns the number of columns.
func (o *Odometer) Len() int { return len(o.cols) }

// Column returns the handle for column i. It panics if i is out of range.
func (o *Odometer) Column(i int) *Column {
	if i < 0 || i >= len(o.cols) {
		panic(fmt.Sprintf("combo: column %d out of range [0,%d)", i, len(o.cols)))
	}
	return &Column{o: o, idx: i}
}

// Start starts the chain from its leftmost column.
func (o *Odometer) Start() error { return o.Column(0).Start() }

// Advance advances the chain from its leftmost column.
func (o *Odometer) Advance() (bool, error) { return o.Column(0).Advance() }

// Assignment returns every column's current value. It fails with the same
// invalid-state errors as [Column.Value].
func (o *Odometer) Assignment() ([]Pair, error) {
	out := make([]Pair, len(o.cols))
	for i := range o.cols {
		v, err := o.Column(i).Value()
		if err != nil {
			return nil, err
		}
		out[i] = Pair{Column: i, Value: v}
	}
	return out, nil
}

// Values returns the current assignment as a plain slice indexed by column.
func (o *Odometer) Values() ([]int, error) {
	pairs, err := o.Assignment()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(pairs))
	for i, p := range pairs {
		out[i] = p.Value
	}
	return out, nil
}

// Index returns the column's position in its chain.
func (c *Column) Index() int { return c.idx }

// Count returns the number of legal values for the column.
func (c *Column) Count() int { return c.o.cols[c.idx].count }

// Start assigns 0 to the leftmost column and cascades rightward so every
// other column picks its first available value.
func (c *Column) Start() error {
	col := &c.o.cols[c.idx]
	if col.left != none {
		return fmt.Errorf("start column %d: %w", c.idx, ErrNotLeftmost)
	}
	if col.started {
		return fmt.Errorf("start column %d: %w", c.idx, ErrAlreadyStarted)
	}
	col.started = true
	col.value = 0
	if col.right != none {
		c.o.reset(col.right)
	}
	return nil
}

// Advance moves the odometer to its next assignment. It reports false once
// every assignment has been produced; the chain is then exhausted.
func (c *Column) Advance() (bool, error) {
	col := &c.o.cols[c.idx]
	switch {
	case col.left != none:
		return false, fmt.Errorf("advance column %d: %w", c.idx, ErrNotLeftmost)
	case !col.started:
		return false, fmt.Errorf("advance column %d: %w", c.idx, ErrNotStarted)
	case col.finished:
		return false, fmt.Errorf("advance column %d: %w", c.idx, ErrExhausted)
	}

	if col.right != none && c.o.advance(col.right) {
		return true, nil
	}

	col.value++
	if col.value < col.count {
		if col.right != none {
			c.o.reset(col.right)
		}
		return true, nil
	}
	col.finished = true
	return false, nil
}

// Value returns the column's current value.
func (c *Column) Value() (int, error) {
	root := c.o.root()
	switch {
	case !root.started:
		return 0, fmt.Errorf("value of column %d: %w", c.idx, ErrNotStarted)
	case root.finished:
		return 0, fmt.Errorf("value of column %d: %w", c.idx, ErrExhausted)
	}
	return c.o.cols[c.idx].value, nil
}

// IsAvailable reports whether no column to the left holds v.
func (c *Column) IsAvailable(v int) bool { return c.o.isAvailable(c.idx, v) }

func (o *Odometer) root() *column {
	i := 0
	for o.cols[i].left != none {
		i = o.cols[i].left
	}
	return &o.cols[i]
}

func (o *Odometer) isAvailable(i, v int) bool {
	for j := o.cols[i].left; j != none; j = o.cols[j].left {
		if o.cols[j].value == v {
			return false
		}
	}
	return true
}

// reset makes column i take its first available value and cascades right.
func (o *Odometer) reset(i int) {
	col := &o.cols[i]
	col.started = true
	col.value = o.next(i, 0)
	if col.right != none {
		o.reset(col.right)
	}
}

// advance tries to move column i (or something right of it) forward
// without touching anything to its left.
func (o *Odometer) advance(i int) bool {
	col := &o.cols[i]
	if col.right != none && o.advance(col.right) {
		return true
	}
	v := o.next(i, col.value+1)
	if v >= col.count {
		return false
	}
	col.value = v
	if col.right != none {
		o.reset(col.right)
	}
	return true
}

// next returns the first value >= from that is available at column i, or
// count if none is.
func (o *Odometer) next(i, from int) int {
	for v := from; v < o.cols[i].count; v++ {
		if o.isAvailable(i, v) {
			return v
		}
	}
	return o.cols[i].count
}
