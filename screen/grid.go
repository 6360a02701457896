package screen

import "inkterm/config"

// Grid is a fixed ROWS×COLS array of cells, sized at compile time the same
// way term_config.h sizes TermBuffer's underlying arrays.
type Grid [config.Rows][config.Cols]Cell

func (g *Grid) clearRow(row int) {
	for c := 0; c < config.Cols; c++ {
		g[row][c] = DefaultCell
	}
}
