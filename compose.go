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
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

// SelectionPolicy describes which source image is used for which cell.
type SelectionPolicy int

const (
	// SelectCyclic uses image i % n for cell i (n is the number of images), so
	// images are reused if there are more cells than images.
	SelectCyclic SelectionPolicy = iota
	// SelectStrict uses image i for cell i and requires at least as many
	// images as there are cells.
	SelectStrict
)

func (p SelectionPolicy) String() string {
	switch p {
	case SelectCyclic:
		return "cyclic"
	case SelectStrict:
		return "strict"
	default:
		return fmt.Sprintf("SelectionPolicy(%d)", p)
	}
}

// ParseSelectionPolicy parses "cyclic" or "strict".
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch strings.ToLower(s) {
	case "cyclic":
		return SelectCyclic, nil
	case "strict":
		return SelectStrict, nil
	default:
		return -1, fmt.Errorf("Unknown selection policy %s, expected cyclic or strict", s)
	}
}

// Select returns the image for each cell of a grid with numCells cells,
// given the available images.
func (p SelectionPolicy) Select(numCells int, images []ImageID) ([]ImageID, error) {
	if numCells == 0 {
		return nil, nil
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: grid has %d cells", ErrEmptySourceList, numCells)
	}
	res := make([]ImageID, numCells)
	switch p {
	case SelectCyclic:
		for i := range res {
			res[i] = images[i%len(images)]
		}
	case SelectStrict:
		if len(images) < numCells {
			return nil, fmt.Errorf("%w: got %d images for %d cells",
				ErrInsufficientSourceImages, len(images), numCells)
		}
		copy(res, images[:numCells])
	default:
		return nil, fmt.Errorf("Invalid selection policy %v", p)
	}
	return res, nil
}

var (
	// White is the default background of a mosaic.
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Compositor creates the mosaic image for a grid given the source images.
//
// A compositor is not safe for concurrent use (the image cache is, but the
// progress function might not be).
type Compositor struct {
	// Storage is used to load the source images.
	Storage ImageStorage

	// Resizer is the engine used to scale images, Strategy decides how to
	// scale them s.t. they fit into a cell.
	Resizer  ImageResizer
	Strategy ResizeStrategy

	// Policy decides which image is used in which cell.
	Policy SelectionPolicy

	// Background is the color of all areas not covered by a cell.
	Background color.Color

	// Cache caches fitted images, may be nil.
	Cache *ImageCache

	// SkipInvalid controls what happens if a source image is empty: If true
	// the cell is skipped and the background remains visible, if false the
	// composition fails.
	SkipInvalid bool

	// MinWidth and MinHeight enlarge the canvas if the cells don't reach that
	// far. Usually they're 0 and the size is given by the grid.
	MinWidth, MinHeight int

	// Progress is called after each cell, may be nil.
	Progress ProgressFunc

	// Log is used for debug and warning messages, may be nil.
	Log *log.Entry
}

// NewCompositor returns a compositor with default values: it uses
// DefaultResizer with CropResize, the cyclic selection policy, a white
// background and a cache of size DefaultImageCacheSize.
func NewCompositor(storage ImageStorage) *Compositor {
	return &Compositor{
		Storage:    storage,
		Resizer:    DefaultResizer,
		Strategy:   CropResize,
		Policy:     SelectCyclic,
		Background: White,
		Cache:      NewImageCache(DefaultImageCacheSize),
	}
}

func (c *Compositor) logger() *log.Entry {
	if c.Log == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return c.Log
}

// NewCanvas returns an image with the given size, filled with bg.
func NewCanvas(width, height int, bg color.Color) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return canvas
}

// Compose creates the mosaic. The sources are selected with the policy of
// the compositor, the selection is validated before any image is loaded.
//
// The canvas has the size of the grid and is filled with the background.
// Then for each cell (in grid order) its image is loaded, fitted into the
// cell and drawn onto the canvas, replacing everything that was drawn there
// before.
//
// If an error occurs no image is returned.
func (c *Compositor) Compose(grid *Grid, sources []ImageID) (*image.RGBA, error) {
	selection, selectErr := c.Policy.Select(grid.Size(), sources)
	if selectErr != nil {
		return nil, selectErr
	}
	bg := c.Background
	if bg == nil {
		bg = White
	}
	strategy := c.Strategy
	if strategy == nil {
		strategy = CropResize
	}
	resizer := c.Resizer
	if resizer == nil {
		resizer = DefaultResizer
	}
	width, height := grid.CanvasSize()
	width, height = IntMax(width, c.MinWidth), IntMax(height, c.MinHeight)
	logger := c.logger()
	logger.WithFields(log.Fields{
		"cells":   grid.Size(),
		"width":   width,
		"height":  height,
		"policy":  c.Policy,
		"resizer": resizer,
	}).Debug("Composing mosaic")

	canvas := NewCanvas(width, height, bg)
	for i, cell := range grid.cells {
		tile, tileErr := c.fitted(selection[i], cell, resizer, strategy)
		switch {
		case tileErr == nil:
			draw.Draw(canvas, cell.Rect(), tile, tile.Bounds().Min, draw.Src)
		case c.SkipInvalid && errors.Is(tileErr, ErrInvalidSourceImage):
			logger.WithError(tileErr).WithField("cell", i).Warn("Skipping cell")
		default:
			return nil, fmt.Errorf("Can't compose cell %d (%v): %w", i, cell, tileErr)
		}
		if c.Progress != nil {
			c.Progress(i + 1)
		}
	}
	return canvas, nil
}

func (c *Compositor) fitted(id ImageID, cell Cell, resizer ImageResizer, strategy ResizeStrategy) (image.Image, error) {
	if c.Cache != nil {
		if img := c.Cache.Get(id, cell.Width, cell.Height); img != nil {
			return img, nil
		}
	}
	img, loadErr := c.Storage.LoadImage(id)
	if loadErr != nil {
		return nil, loadErr
	}
	fitted, fitErr := strategy(resizer, cell.Width, cell.Height, img)
	if fitErr != nil {
		return nil, fitErr
	}
	if c.Cache != nil {
		c.Cache.Put(id, cell.Width, cell.Height, fitted)
	}
	return fitted, nil
}
