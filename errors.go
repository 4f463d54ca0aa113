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

import "errors"

// The errors below describe all kinds of failures that can happen while
// building a layout or composing a mosaic. Functions wrap them with more
// context, use errors.Is to test for a specific kind.
var (
	// ErrInvalidCell is returned if a cell has a negative origin or a
	// non-positive size.
	ErrInvalidCell = errors.New("Invalid cell")

	// ErrInvalidLayoutParams is returned by the layout builders if their
	// parameters describe no valid layout.
	ErrInvalidLayoutParams = errors.New("Invalid layout parameters")

	// ErrIndexOutOfRange is returned when accessing a cell that does not exist.
	ErrIndexOutOfRange = errors.New("Index out of range")

	// ErrInvalidSourceImage is returned for empty (or corrupt) source images
	// that can't be fit into a cell.
	ErrInvalidSourceImage = errors.New("Invalid source image")

	// ErrEmptySourceList is returned if a mosaic with at least one cell should
	// be composed from no images at all.
	ErrEmptySourceList = errors.New("No source images given")

	// ErrInsufficientSourceImages is returned by the strict selection policy if
	// there are less images than cells.
	ErrInsufficientSourceImages = errors.New("Not enough source images")

	// ErrImageDecode is returned if an image can't be read.
	ErrImageDecode = errors.New("Can't decode image")

	// ErrImageEncode is returned if an image can't be written.
	ErrImageEncode = errors.New("Can't encode image")

	// ErrBufferBounds is returned if an image region is not valid for a pixel
	// operation, for example a crop outside of the image.
	ErrBufferBounds = errors.New("Invalid image region")
)
