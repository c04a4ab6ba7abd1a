package render

import (
	"math"

	"github.com/lixenwraith/lines/physics"
	"github.com/lixenwraith/lines/vmath"
)

// CellAspect is the height-to-width ratio of a terminal cell
const CellAspect = 2.0

// Viewport maps field coordinates onto a terminal cell grid
// The field is letterboxed to keep its proportions under non-square cells
type Viewport struct {
	OffsetX, OffsetY int
	Cols, Rows       int
	Unit             float64 // Field units per cell column
}

// NewViewport fits field into a cols×rows grid
func NewViewport(field physics.Field, cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 || field.Width <= 0 || field.Height <= 0 {
		return Viewport{Unit: 1}
	}
	unit := math.Max(field.Width/float64(cols), field.Height/(CellAspect*float64(rows)))
	usedCols := min(cols, int(math.Ceil(field.Width/unit)))
	usedRows := min(rows, int(math.Ceil(field.Height/(CellAspect*unit))))
	return Viewport{
		OffsetX: (cols - usedCols) / 2,
		OffsetY: (rows - usedRows) / 2,
		Cols:    usedCols,
		Rows:    usedRows,
		Unit:    unit,
	}
}

// ToCell returns the cell containing p
func (v Viewport) ToCell(p vmath.Vec2) (int, int) {
	cx := int(math.Floor(p.X / v.Unit))
	cy := int(math.Floor(p.Y / (CellAspect * v.Unit)))
	cx = min(max(cx, 0), v.Cols-1)
	cy = min(max(cy, 0), v.Rows-1)
	return v.OffsetX + cx, v.OffsetY + cy
}

// CellCenter returns the field position at the center of grid cell x, y
func (v Viewport) CellCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		X: (float64(x-v.OffsetX) + 0.5) * v.Unit,
		Y: (float64(y-v.OffsetY) + 0.5) * CellAspect * v.Unit,
	}
}

// Span returns the inclusive cell rectangle covering the field box [min, max]
func (v Viewport) Span(lo, hi vmath.Vec2) (x0, y0, x1, y1 int) {
	x0, y0 = v.ToCell(lo)
	x1, y1 = v.ToCell(hi)
	return
}
