// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gridmosaic

import (
	"fmt"
	"image"
)

// Cell is a rectangular area in the mosaic that gets replaced by one source
// image. The origin is the top left corner of the cell.
//
// Cells should be created with NewCell (or Grid.AddCell) to make sure that the
// origin is not negative and the size is positive.
type Cell struct {
	X, Y          int
	Width, Height int
}

// NewCell returns a new cell, it returns an error wrapping ErrInvalidCell if
// x or y is negative or width or height is not positive.
func NewCell(x, y, width, height int) (Cell, error) {
	if x < 0 || y < 0 {
		return Cell{}, fmt.Errorf("%w: origin must be non-negative, got (%d, %d)",
			ErrInvalidCell, x, y)
	}
	if width <= 0 || height <= 0 {
		return Cell{}, fmt.Errorf("%w: size must be positive, got %dx%d",
			ErrInvalidCell, width, height)
	}
	return Cell{X: x, Y: y, Width: width, Height: height}, nil
}

// Rect returns the area of the cell in the mosaic.
func (c Cell) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell(%d, %d, %dx%d)", c.X, c.Y, c.Width, c.Height)
}

// Grid is an ordered collection of cells. The order is the order in which the
// cells are composed into the mosaic, so if two cells overlap the one that was
// added later will be visible.
//
// A grid does not contain any image data, it only describes where images
// should be placed.
type Grid struct {
	cells []Cell
	// margin is added to the right and bottom of the canvas
	margin int
}

// NewGrid returns an empty grid. capacity is a hint for the number of cells.
func NewGrid(capacity int) *Grid {
	if capacity < 0 {
		capacity = 0
	}
	return &Grid{cells: make([]Cell, 0, capacity)}
}

// AddCell creates a new cell and appends it to the grid. The cell is not
// checked against the other cells, duplicates and overlapping cells are fine.
func (g *Grid) AddCell(x, y, width, height int) error {
	cell, cellErr := NewCell(x, y, width, height)
	if cellErr != nil {
		return cellErr
	}
	g.cells = append(g.cells, cell)
	return nil
}

// Size returns the number of cells in the grid.
func (g *Grid) Size() int {
	return len(g.cells)
}

// CellAt returns the cell with the given index.
func (g *Grid) CellAt(index int) (Cell, error) {
	if index < 0 || index >= len(g.cells) {
		return Cell{}, fmt.Errorf("%w: cell %d, grid has %d cells",
			ErrIndexOutOfRange, index, len(g.cells))
	}
	return g.cells[index], nil
}

// Cells returns a copy of all cells in insertion order.
func (g *Grid) Cells() []Cell {
	res := make([]Cell, len(g.cells))
	copy(res, g.cells)
	return res
}

// SetMargin sets the space left free to the right of and below the
// rightmost and lowest cell. Negative values are treated as 0.
func (g *Grid) SetMargin(margin int) {
	g.margin = IntMax(0, margin)
}

// Margin returns the margin set with SetMargin.
func (g *Grid) Margin() int {
	return g.margin
}

// CanvasSize returns the size of the smallest image (starting in (0, 0)) that
// contains all cells, plus the margin of the grid. For an empty grid this is
// (0, 0).
func (g *Grid) CanvasSize() (int, int) {
	if len(g.cells) == 0 {
		return 0, 0
	}
	width, height := 0, 0
	for _, cell := range g.cells {
		width = IntMax(width, cell.X+cell.Width)
		height = IntMax(height, cell.Y+cell.Height)
	}
	return width + g.margin, height + g.margin
}
