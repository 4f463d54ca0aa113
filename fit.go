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

// ResizeStrategy is a function that scales an image (img) to an image of
// exactly the size defined by tileWidth and tileHeight.
// This is used to compose the mosaic when the source images must be resized
// to fit in the cells.
//
// The difference between ResizeStrategy and ImageResizer is that we think of
// an ImageResizer as an "engine", for example a library, that performs the
// scaling of an image exactly to a specific width and height.
// A ResizeStrategy might first crop the image and then resize it. That is we
// think of a resizer as something that does the work and a ResizeStrategy as
// something that decides how to nicely scale an image s.t. it fits nicely.
type ResizeStrategy func(resizer ImageResizer, tileWidth, tileHeight int, img image.Image) (image.Image, error)

// ForceResize is a resize strategy that resizes to the given width and height,
// ignoring the ratio of the original image.
func ForceResize(resizer ImageResizer, tileWidth, tileHeight int, img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: image is empty", ErrInvalidSourceImage)
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: target size must be positive, got %dx%d",
			ErrInvalidCell, tileWidth, tileHeight)
	}
	return checkSize(resizer.Resize(uint(tileWidth), uint(tileHeight), img),
		tileWidth, tileHeight)
}

// CropResize is a resize strategy that keeps the aspect ratio of the tile:
// It cuts away the left and right (or top and bottom) parts of the image s.t.
// the remaining image has the ratio of the tile and then resizes the
// remaining part. See FitRegion for the area that is kept.
func CropResize(resizer ImageResizer, tileWidth, tileHeight int, img image.Image) (image.Image, error) {
	bounds := img.Bounds()
	region, regionErr := FitRegion(bounds.Dx(), bounds.Dy(), tileWidth, tileHeight)
	if regionErr != nil {
		return nil, regionErr
	}
	cropped, cropErr := SubImage(img, region.Add(bounds.Min))
	if cropErr != nil {
		return nil, cropErr
	}
	return checkSize(resizer.Resize(uint(tileWidth), uint(tileHeight), cropped),
		tileWidth, tileHeight)
}

// FitRegion computes the centered area of an image with size
// imageWidth x imageHeight that has (up to rounding) the same ratio as a tile
// of size tileWidth x tileHeight. The rectangle is relative to (0, 0).
//
// If the image is relatively wider than the tile the full height is kept and
// the width is cut, otherwise the full width is kept and the height is cut.
// If both ratios are equal the whole image is returned.
func FitRegion(imageWidth, imageHeight, tileWidth, tileHeight int) (image.Rectangle, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: image size must be positive, got %dx%d",
			ErrInvalidSourceImage, imageWidth, imageHeight)
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return image.Rectangle{}, fmt.Errorf("%w: target size must be positive, got %dx%d",
			ErrInvalidCell, tileWidth, tileHeight)
	}
	newWidth, newHeight := imageWidth, imageHeight
	ox, oy := 0, 0
	// imageWidth / imageHeight >= tileWidth / tileHeight
	if imageWidth*tileHeight >= imageHeight*tileWidth {
		newWidth = imageHeight * tileWidth / tileHeight
		ox = (imageWidth - newWidth) / 2
	} else {
		newHeight = imageWidth * tileHeight / tileWidth
		oy = (imageHeight - newHeight) / 2
	}
	// very thin images might be cut down to nothing
	newWidth, newHeight = IntMax(newWidth, 1), IntMax(newHeight, 1)
	return image.Rect(ox, oy, ox+newWidth, oy+newHeight), nil
}

func checkSize(img image.Image, width, height int) (image.Image, error) {
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		return nil, fmt.Errorf("%w: resizer returned %dx%d, expected %dx%d",
			ErrBufferBounds, bounds.Dx(), bounds.Dy(), width, height)
	}
	return img, nil
}
