package isomap

import (
	"fmt"

	"go-bunny-defense/pkg/utils"
)

// Index addresses one grid cell by column and row.
type Index struct {
	Col, Row int
}

// Directions lists the four cardinal moves in the order the search expands them.
var Directions = []Index{
	{Col: 0, Row: 1}, {Col: 1, Row: 0}, {Col: 0, Row: -1}, {Col: -1, Row: 0},
}

// Add returns the sum of two indexes.
func (i Index) Add(o Index) Index {
	return Index{Col: i.Col + o.Col, Row: i.Row + o.Row}
}

// Manhattan returns the 4-directional grid distance between two indexes.
func (i Index) Manhattan(o Index) int {
	return utils.Abs(i.Col-o.Col) + utils.Abs(i.Row-o.Row)
}

// IsAdjacent reports whether o is exactly one cardinal step away from i.
func (i Index) IsAdjacent(o Index) bool {
	return i.Manhattan(o) == 1
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Col, i.Row)
}
