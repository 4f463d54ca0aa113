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
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// RegularLayout returns a grid with cols * rows cells, each cell has the
// given width and height. offset is the distance between two cells and also
// the distance between the cells and the border of the mosaic.
//
// Cells are added column by column: first all rows of column 0, then all rows
// of column 1 and so on. This order decides which source image ends up in
// which cell, so it must not be changed.
//
// The resulting canvas has a width of cols*cellWidth + (cols+1)*offset, the
// height is computed in the same way.
func RegularLayout(cols, rows, cellWidth, cellHeight, offset int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions must be positive, got %dx%d",
			ErrInvalidLayoutParams, cols, rows)
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: cell dimensions must be positive, got %dx%d",
			ErrInvalidLayoutParams, cellWidth, cellHeight)
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: offset must be non-negative, got %d",
			ErrInvalidLayoutParams, offset)
	}
	grid := NewGrid(cols * rows)
	// the offset surrounds the cells on all sides
	grid.SetMargin(offset)
	for gx := 0; gx < cols; gx++ {
		ox := offset + gx*(cellWidth+offset)
		for gy := 0; gy < rows; gy++ {
			oy := offset + gy*(cellHeight+offset)
			if err := grid.AddCell(ox, oy, cellWidth, cellHeight); err != nil {
				// can't happen with the checks above
				return nil, err
			}
		}
	}
	return grid, nil
}

// Level is used in RandomLevelsLayout, it requests Quantity square cells with
// a side length of MaxSize.
type Level struct {
	Quantity int `toml:"quantity"`
	MaxSize  int `toml:"max_size"`
}

func (l Level) String() string {
	return fmt.Sprintf("%d:%d", l.Quantity, l.MaxSize)
}

// ParseLevel parses a level of the form "Q:S" where Q is the quantity and S
// the size of the cells, for example "10:200".
func ParseLevel(s string) (Level, error) {
	split := strings.Split(s, ":")
	if len(split) != 2 {
		return Level{}, fmt.Errorf("Invalid level format: %s. Expect \"QUANTITY:SIZE\"", s)
	}
	quantity, quantityErr := strconv.Atoi(strings.TrimSpace(split[0]))
	if quantityErr != nil {
		return Level{}, fmt.Errorf("Invalid level %s: %w", s, quantityErr)
	}
	size, sizeErr := strconv.Atoi(strings.TrimSpace(split[1]))
	if sizeErr != nil {
		return Level{}, fmt.Errorf("Invalid level %s: %w", s, sizeErr)
	}
	return Level{Quantity: quantity, MaxSize: size}, nil
}

// ParseLevels parses each string with ParseLevel.
func ParseLevels(levels []string) ([]Level, error) {
	res := make([]Level, 0, len(levels))
	for _, s := range levels {
		level, levelErr := ParseLevel(s)
		if levelErr != nil {
			return nil, levelErr
		}
		res = append(res, level)
	}
	return res, nil
}

// NewRand returns a new random generator. If seed is 0 the generator is seeded
// with the current time, otherwise the seed is used and the sequence of
// numbers is reproducible.
//
// Note that rand.Rand instances are not safe for concurrent use.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomLevelsLayout creates a grid with cells at random positions.
// The levels are processed in the given order, for each level Quantity square
// cells of size MaxSize are created. The origin of each cell is chosen
// uniformly from [0, boundsWidth - MaxSize) x [0, boundsHeight - MaxSize).
//
// The cells are not checked for collisions, so cells overlap and the ones
// created later cover the ones created earlier. This layering is wanted and
// gives the mosaic its look.
//
// rnd is the source of randomness, if it is nil NewRand(0) is used.
// All levels are validated before any cell is created.
func RandomLevelsLayout(levels []Level, boundsWidth, boundsHeight int, rnd *rand.Rand) (*Grid, error) {
	if boundsWidth <= 0 || boundsHeight <= 0 {
		return nil, fmt.Errorf("%w: mosaic dimensions must be positive, got %dx%d",
			ErrInvalidLayoutParams, boundsWidth, boundsHeight)
	}
	total := 0
	for i, level := range levels {
		switch {
		case level.Quantity < 0:
			return nil, fmt.Errorf("%w: level %d: quantity must be non-negative, got %d",
				ErrInvalidLayoutParams, i, level.Quantity)
		case level.MaxSize <= 0:
			return nil, fmt.Errorf("%w: level %d: size must be positive, got %d",
				ErrInvalidLayoutParams, i, level.MaxSize)
		case level.MaxSize >= boundsWidth || level.MaxSize >= boundsHeight:
			return nil, fmt.Errorf("%w: level %d: size %d must be smaller than the mosaic dimensions %dx%d",
				ErrInvalidLayoutParams, i, level.MaxSize, boundsWidth, boundsHeight)
		}
		total += level.Quantity
	}
	if rnd == nil {
		rnd = NewRand(0)
	}
	grid := NewGrid(total)
	for _, level := range levels {
		size := level.MaxSize
		for i := 0; i < level.Quantity; i++ {
			ox := rnd.Intn(boundsWidth - size)
			oy := rnd.Intn(boundsHeight - size)
			if err := grid.AddCell(ox, oy, size, size); err != nil {
				return nil, err
			}
		}
	}
	return grid, nil
}
