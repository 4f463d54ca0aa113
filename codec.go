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
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultJPGQuality is the quality used for jpg files if no valid quality is
// given.
const DefaultJPGQuality = 100

// LoadImageFile opens and decodes the image file at path. Errors wrap
// ErrImageDecode.
func LoadImageFile(path string) (image.Image, error) {
	r, openErr := os.Open(path)
	if openErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, openErr)
	}
	defer r.Close()
	img, _, decodeErr := image.Decode(r)
	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, path, decodeErr)
	}
	return img, nil
}

// SaveImage writes img to path, the file extension decides about the format
// (.jpg, .jpeg or .png). jpgQuality is only used for jpg files and must be
// between 1 and 100.
//
// The image is first written to a temporary file in the same directory which
// is then renamed to path, so path is never left with a partially written
// image. Errors wrap ErrImageEncode.
func SaveImage(path string, img image.Image, jpgQuality int) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !JPGAndPNG(ext) {
		return fmt.Errorf("%w: unsupported file type %q, expected .jpg or .png",
			ErrImageEncode, ext)
	}
	if jpgQuality < 1 || jpgQuality > 100 {
		jpgQuality = DefaultJPGQuality
	}
	tmpPath := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	outFile, outErr := os.Create(tmpPath)
	if outErr != nil {
		return fmt.Errorf("%w: %v", ErrImageEncode, outErr)
	}
	var encErr error
	switch ext {
	case ".png":
		encErr = png.Encode(outFile, img)
	default:
		encErr = jpeg.Encode(outFile, img, &jpeg.Options{Quality: jpgQuality})
	}
	closeErr := outFile.Close()
	if encErr == nil {
		encErr = closeErr
	}
	if encErr == nil {
		encErr = os.Rename(tmpPath, path)
	}
	if encErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %s: %v", ErrImageEncode, path, encErr)
	}
	return nil
}
