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
	"reflect"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// SupportedImageFunc is a function that takes a file extension and decides if
// this file extension is supported.
//
// The extension passed to this function could be for example ".txt" or ".jpg".
// JPGAndPNG is an implementation accepting jpg and png files.
type SupportedImageFunc func(ext string) bool

// JPGAndPNG is an implementation of SupportedImageFunc accepting jpg and png
// file extensions (in any case, so ".JPG" and ".Png" are fine too).
func JPGAndPNG(ext string) bool {
	ext = strings.ToLower(ext)
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

// SubImager is a type that can produce a sub image from an original image.
type SubImager interface {
	SubImage(r image.Rectangle) image.Image
}

// SubImage returns a subimage of img given the boundaries r.
// r must be a non-empty area inside the image bounds, otherwise an error
// wrapping ErrBufferBounds is returned. The same is true if the image type
// does not have a sub image method.
func SubImage(img image.Image, r image.Rectangle) (image.Image, error) {
	bounds := img.Bounds()
	if r.Empty() || !r.In(bounds) {
		return nil, fmt.Errorf("%w: %v is not inside of %v", ErrBufferBounds, r, bounds)
	}
	imager, ok := img.(SubImager)
	if !ok {
		return nil, fmt.Errorf("%w: can't create sub image from type %v",
			ErrBufferBounds, reflect.TypeOf(img))
	}
	return imager.SubImage(r), nil
}

// ImageResizer resizes an image to the given width and height.
// Implementations must return an image of exactly the requested size.
type ImageResizer interface {
	Resize(width, height uint, img image.Image) image.Image
}

// NfntResizer uses the nfnt/resize package to resize an image.
type NfntResizer struct {
	// InterP is the interpolation function to use.
	InterP resize.InterpolationFunction
}

// NewNfntResizer returns a new resizer given the interpolation function.
func NewNfntResizer(interP resize.InterpolationFunction) NfntResizer {
	return NfntResizer{interP}
}

func (resizer NfntResizer) String() string {
	return "nfnt/" + InterPString(resizer.InterP)
}

// Resize calls nfnt/resize methods.
func (resizer NfntResizer) Resize(width, height uint, img image.Image) image.Image {
	return resize.Resize(width, height, img, resizer.InterP)
}

// GetInterP returns an interpolation function given a desired quality.
// The higher the quality the better the interpolation should be, but execution
// time is higher. Currently supported are values between 0 and 5, each
// selecting a different interpolation function. Values greater than 5 are
// treated as 5.
func GetInterP(quality uint) resize.InterpolationFunction {
	switch quality {
	case 0:
		return resize.NearestNeighbor
	case 1:
		return resize.Bilinear
	case 2:
		return resize.Bicubic
	case 3:
		return resize.MitchellNetravali
	case 4:
		return resize.Lanczos2
	default:
		return resize.Lanczos3
	}
}

// InterPString returns a human readable name of an interpolation function.
func InterPString(interP resize.InterpolationFunction) string {
	switch interP {
	case resize.NearestNeighbor:
		return "NearestNeighbor"
	case resize.Bilinear:
		return "Bilinear"
	case resize.Bicubic:
		return "Bicubic"
	case resize.MitchellNetravali:
		return "MitchellNetravali"
	case resize.Lanczos2:
		return "Lanczos2"
	case resize.Lanczos3:
		return "Lanczos3"
	default:
		return fmt.Sprintf("InterpolationFunction(%d)", interP)
	}
}

// XDrawResizer uses the scalers from golang.org/x/image/draw.
type XDrawResizer struct {
	Scaler draw.Scaler
}

// NewXDrawResizer returns a resizer for the given quality: 0 is nearest
// neighbor, 1 approximate bilinear, 2 bilinear and everything above Catmull-Rom.
func NewXDrawResizer(quality uint) XDrawResizer {
	var scaler draw.Scaler
	switch quality {
	case 0:
		scaler = draw.NearestNeighbor
	case 1:
		scaler = draw.ApproxBiLinear
	case 2:
		scaler = draw.BiLinear
	default:
		scaler = draw.CatmullRom
	}
	return XDrawResizer{Scaler: scaler}
}

func (resizer XDrawResizer) String() string {
	switch resizer.Scaler {
	case draw.NearestNeighbor:
		return "xdraw/NearestNeighbor"
	case draw.ApproxBiLinear:
		return "xdraw/ApproxBiLinear"
	case draw.BiLinear:
		return "xdraw/BiLinear"
	case draw.CatmullRom:
		return "xdraw/CatmullRom"
	default:
		return fmt.Sprintf("xdraw/%T", resizer.Scaler)
	}
}

// Resize scales img into a new RGBA image.
func (resizer XDrawResizer) Resize(width, height uint, img image.Image) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	resizer.Scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// ImagingResizer uses the resampling filters of disintegration/imaging.
type ImagingResizer struct {
	Filter imaging.ResampleFilter
}

// NewImagingResizer returns a resizer for the given quality, higher values
// select better (and slower) filters.
func NewImagingResizer(quality uint) ImagingResizer {
	var filter imaging.ResampleFilter
	switch quality {
	case 0:
		filter = imaging.NearestNeighbor
	case 1:
		filter = imaging.Linear
	case 2:
		filter = imaging.CatmullRom
	case 3:
		filter = imaging.MitchellNetravali
	default:
		filter = imaging.Lanczos
	}
	return ImagingResizer{Filter: filter}
}

func (resizer ImagingResizer) String() string {
	return fmt.Sprintf("imaging/support=%.1f", resizer.Filter.Support)
}

// Resize calls imaging.Resize.
func (resizer ImagingResizer) Resize(width, height uint, img image.Image) image.Image {
	return imaging.Resize(img, int(width), int(height), resizer.Filter)
}

// ResizerNames are the names accepted by ResizerByName.
var ResizerNames = []string{"nfnt", "xdraw", "imaging"}

// ResizerByName returns the resizer engine with the given name (see
// ResizerNames), quality is passed to the engine specific constructor.
// The empty string selects nfnt.
func ResizerByName(name string, quality uint) (ImageResizer, error) {
	switch strings.ToLower(name) {
	case "", "nfnt":
		return NewNfntResizer(GetInterP(quality)), nil
	case "xdraw":
		return NewXDrawResizer(quality), nil
	case "imaging":
		return NewImagingResizer(quality), nil
	default:
		return nil, fmt.Errorf("Unknown resizer %s, expected one of %s",
			name, strings.Join(ResizerNames, ", "))
	}
}

var (
	// DefaultResizer is the resizer that is used by default, if you're
	// looking for a resizer default argument this seems useful.
	DefaultResizer = NewNfntResizer(resize.Lanczos3)
)
