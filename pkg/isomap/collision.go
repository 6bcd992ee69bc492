package isomap

// CollisionGrid is the blocked/free matrix consumed by FindPath. It is a
// snapshot: mutating it never touches the tiles it was built from.
type CollisionGrid struct {
	cols, rows int
	blocked    []bool
}

// NewCollisionGrid returns an all-free grid.
func NewCollisionGrid(cols, rows int) *CollisionGrid {
	return &CollisionGrid{cols: cols, rows: rows, blocked: make([]bool, cols*rows)}
}

func (c *CollisionGrid) Cols() int { return c.cols }
func (c *CollisionGrid) Rows() int { return c.rows }

// InBounds reports whether idx lies on the grid.
func (c *CollisionGrid) InBounds(idx Index) bool {
	return idx.Col >= 0 && idx.Col < c.cols && idx.Row >= 0 && idx.Row < c.rows
}

// Blocked reports whether idx is blocked. Out of range cells count as blocked.
func (c *CollisionGrid) Blocked(idx Index) bool {
	if !c.InBounds(idx) {
		return true
	}
	return c.blocked[idx.Row*c.cols+idx.Col]
}

// SetBlocked marks idx. Out of range indexes are a programmer error.
func (c *CollisionGrid) SetBlocked(idx Index, blocked bool) {
	if !c.InBounds(idx) {
		panic("isomap: collision index out of range: " + idx.String())
	}
	c.blocked[idx.Row*c.cols+idx.Col] = blocked
}

// Clone returns an independent copy.
func (c *CollisionGrid) Clone() *CollisionGrid {
	out := &CollisionGrid{cols: c.cols, rows: c.rows, blocked: make([]bool, len(c.blocked))}
	copy(out.blocked, c.blocked)
	return out
}
