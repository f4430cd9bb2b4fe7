package layout

import "github.com/tsawler/pagemetry/model"

// DensityMap is a grid overlay of content coverage. Each cell holds the
// fraction of its area covered by boxes of each class, in [0, 1].
type DensityMap struct {
	// Rows and Cols are the grid dimensions
	Rows int
	Cols int

	// Text, Image, and Path are per-cell coverage grids indexed
	// [row][col], row 0 at the top of the page
	Text  [][]float64
	Image [][]float64
	Path  [][]float64
}

// Cell returns the three coverage values at a grid position, or zeros when
// the position is out of range
func (m *DensityMap) Cell(row, col int) (text, image, path float64) {
	if m == nil || row < 0 || row >= m.Rows || col < 0 || col >= m.Cols {
		return 0, 0, 0
	}
	return m.Text[row][col], m.Image[row][col], m.Path[row][col]
}

// DensityMapper computes content-density grids over a page
type DensityMapper struct{}

// NewDensityMapper creates a density mapper
func NewDensityMapper() *DensityMapper {
	return &DensityMapper{}
}

// Map overlays a rows×cols grid on the page and computes, for every cell,
// the area-weighted overlap with the text, image, and path boxes. Values
// are clamped to [0, 1]; non-positive grid dimensions or page sizes yield
// an empty map.
func (d *DensityMapper) Map(texts, images, paths []model.BBox, pageWidth, pageHeight float64, rows, cols int) *DensityMap {
	m := &DensityMap{}
	if rows <= 0 || cols <= 0 || pageWidth <= 0 || pageHeight <= 0 {
		return m
	}

	m.Rows = rows
	m.Cols = cols
	m.Text = d.coverage(texts, pageWidth, pageHeight, rows, cols)
	m.Image = d.coverage(images, pageWidth, pageHeight, rows, cols)
	m.Path = d.coverage(paths, pageWidth, pageHeight, rows, cols)

	return m
}

// coverage computes one class's per-cell coverage grid
func (d *DensityMapper) coverage(boxes []model.BBox, pageWidth, pageHeight float64, rows, cols int) [][]float64 {
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
	}

	cellWidth := pageWidth / float64(cols)
	cellHeight := pageHeight / float64(rows)
	cellArea := cellWidth * cellHeight

	for r := 0; r < rows; r++ {
		// Row 0 is the top band of the page
		cellTop := pageHeight - float64(r)*cellHeight
		cellBottom := cellTop - cellHeight

		for c := 0; c < cols; c++ {
			cell := model.BBox{
				Left:   float64(c) * cellWidth,
				Bottom: cellBottom,
				Right:  float64(c+1) * cellWidth,
				Top:    cellTop,
			}

			covered := 0.0
			for _, box := range boxes {
				covered += cell.Intersection(box).Area()
			}

			density := covered / cellArea
			if density > 1 {
				density = 1
			}
			grid[r][c] = density
		}
	}

	return grid
}
