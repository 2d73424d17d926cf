package levels

import "github.com/milk9111/groundskeeper/common"

const (
	wallCell   = 'X'
	targetCell = 'S'
	playerCell = 'P'
)

// Cell is a grid coordinate. Row 0 is the top of the level.
type Cell struct {
	Col int
	Row int
}

// Layout is a parsed level grid.
type Layout struct {
	Name     string
	TileSize float64
	Cols     int
	Rows     int

	Walls   []Cell
	Targets []Cell

	// Start is the first P in reading order. Without one, the player starts
	// at StartX, StartY, the centre of the window.
	Start    Cell
	HasStart bool
	StartX   float64
	StartY   float64

	solid []bool
}

// Parse turns level rows into a Layout. Characters other than X, S and P are
// floor. Rows may have different lengths; the grid is as wide as the longest.
func Parse(lvl *Level) *Layout {
	l := &Layout{
		TileSize: common.TileSize,
		StartX:   common.BaseWidth / 2,
		StartY:   common.BaseHeight / 2,
	}
	if lvl == nil {
		return l
	}
	l.Name = lvl.Name
	if lvl.TileSize > 0 {
		l.TileSize = lvl.TileSize
	}

	l.Rows = len(lvl.Rows)
	for _, row := range lvl.Rows {
		if len(row) > l.Cols {
			l.Cols = len(row)
		}
	}
	l.solid = make([]bool, l.Cols*l.Rows)

	for r, row := range lvl.Rows {
		for c := 0; c < len(row); c++ {
			cell := Cell{Col: c, Row: r}
			switch row[c] {
			case wallCell:
				l.Walls = append(l.Walls, cell)
				l.solid[r*l.Cols+c] = true
			case targetCell:
				l.Targets = append(l.Targets, cell)
			case playerCell:
				if !l.HasStart {
					l.Start = cell
					l.HasStart = true
					l.StartX, l.StartY = l.Center(cell)
				}
			}
		}
	}
	return l
}

// Center returns the screen-space centre of a cell.
func (l *Layout) Center(c Cell) (x, y float64) {
	return float64(c.Col)*l.TileSize + l.TileSize/2, float64(c.Row)*l.TileSize + l.TileSize/2
}

// Solid reports whether the cell holds a wall. Cells off the grid are open.
func (l *Layout) Solid(col, row int) bool {
	if col < 0 || row < 0 || col >= l.Cols || row >= l.Rows {
		return false
	}
	return l.solid[row*l.Cols+col]
}

func (l *Layout) Width() float64 {
	return float64(l.Cols) * l.TileSize
}

func (l *Layout) Height() float64 {
	return float64(l.Rows) * l.TileSize
}

// Rect is a block of cells, Cols wide and Rows tall, anchored at Col, Row.
type Rect struct {
	Col  int
	Row  int
	Cols int
	Rows int
}

// MergedWalls covers every wall cell with as few rectangles as a greedy row
// scan finds: each rectangle grows right as far as it can, then down while
// the whole span stays solid.
func (l *Layout) MergedWalls() []Rect {
	visited := make([]bool, l.Cols*l.Rows)
	index := func(c, r int) int { return r*l.Cols + c }

	var out []Rect
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			if visited[index(c, r)] || !l.Solid(c, r) {
				continue
			}

			w := 0
			for c2 := c; c2 < l.Cols && l.Solid(c2, r) && !visited[index(c2, r)]; c2++ {
				w++
			}

			h := 1
		grow:
			for r2 := r + 1; r2 < l.Rows; r2++ {
				for c2 := c; c2 < c+w; c2++ {
					if !l.Solid(c2, r2) || visited[index(c2, r2)] {
						break grow
					}
				}
				h++
			}

			for r2 := r; r2 < r+h; r2++ {
				for c2 := c; c2 < c+w; c2++ {
					visited[index(c2, r2)] = true
				}
			}
			out = append(out, Rect{Col: c, Row: r, Cols: w, Rows: h})
		}
	}
	return out
}
