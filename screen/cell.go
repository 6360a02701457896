package screen

// Attr is a bitmask of the cell rendering attributes this panel supports.
// There is no separate "dim" flag: SGR 2 clears Bold, matching the
// original firmware's (unusual, but retained for fidelity) treatment.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrInverse
	AttrUnderline
)

// Cell is one grid position: a codepoint plus the attributes and
// background brightness it was written with.
type Cell struct {
	Codepoint uint16
	Attrs     Attr
	BgBright  uint8
}

// DefaultCell is the cleared-cell value: a space on a white background.
var DefaultCell = Cell{Codepoint: ' ', Attrs: 0, BgBright: 255}

// Clear resets the cell to DefaultCell.
func (c *Cell) Clear() { *c = DefaultCell }
