package screen

import "math/bits"

// DirtySet is a bitmask over rows; config.Rows is well under 32 so one
// machine word suffices.
type DirtySet uint32

// Mark sets bit r.
func (d *DirtySet) Mark(r int) { *d |= DirtySet(1 << uint(r)) }

// MarkAll sets the low n bits.
func (d *DirtySet) MarkAll(n int) { *d = DirtySet(1<<uint(n) - 1) }

// Has reports whether bit r is set.
func (d DirtySet) Has(r int) bool { return d&(1<<uint(r)) != 0 }

// Empty reports whether no bits are set.
func (d DirtySet) Empty() bool { return d == 0 }

// Clear resets the set to empty.
func (d *DirtySet) Clear() { *d = 0 }

// Bounds returns the lowest and highest set row, and false if the set is
// empty.
func (d DirtySet) Bounds() (min, max int, ok bool) {
	if d == 0 {
		return 0, 0, false
	}
	min = bits.TrailingZeros32(uint32(d))
	max = 31 - bits.LeadingZeros32(uint32(d))
	return min, max, true
}

// Rows returns the set bits as a sorted slice of row indices.
func (d DirtySet) Rows(n int) []int {
	var rows []int
	for r := 0; r < n; r++ {
		if d.Has(r) {
			rows = append(rows, r)
		}
	}
	return rows
}
