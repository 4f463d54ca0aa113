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
	"image"
	"image/color"
	"testing"
)

func TestFitRegion(t *testing.T) {
	tests := []struct {
		name           string
		iw, ih, tw, th int
		want           image.Rectangle
	}{
		{"same ratio", 200, 100, 100, 50, image.Rect(0, 0, 200, 100)},
		{"same size", 50, 50, 50, 50, image.Rect(0, 0, 50, 50)},
		{"wider image", 400, 100, 100, 50, image.Rect(100, 0, 300, 100)},
		{"taller image", 100, 400, 100, 50, image.Rect(0, 175, 100, 225)},
		{"square into wide cell", 50, 50, 100, 50, image.Rect(0, 12, 50, 37)},
		{"odd remainder", 101, 50, 50, 50, image.Rect(25, 0, 75, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FitRegion(tt.iw, tt.ih, tt.tw, tt.th)
			if err != nil {
				t.Fatalf("FitRegion() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("FitRegion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitRegionKeepsRatio(t *testing.T) {
	sizes := []int{7, 50, 99, 100, 333, 640, 1024}
	for _, iw := range sizes {
		for _, ih := range sizes {
			for _, tw := range sizes {
				for _, th := range sizes {
					r, err := FitRegion(iw, ih, tw, th)
					if err != nil {
						t.Fatal(err)
					}
					if !r.In(image.Rect(0, 0, iw, ih)) {
						t.Fatalf("FitRegion(%d, %d, %d, %d) = %v not inside image", iw, ih, tw, th, r)
					}
					// one dimension is kept, the other one is the exact value
					// rounded down
					wantW, wantH := iw, ih
					if iw*th >= ih*tw {
						wantW = ih * tw / th
					} else {
						wantH = iw * th / tw
					}
					if r.Dx() != wantW || r.Dy() != wantH {
						t.Errorf("FitRegion(%d, %d, %d, %d) = %v, want size %dx%d",
							iw, ih, tw, th, r, wantW, wantH)
					}
				}
			}
		}
	}
}

func TestFitRegionSameRatioKeepsImage(t *testing.T) {
	for tw := 1; tw <= 60; tw++ {
		for th := 1; th <= 60; th++ {
			for k := 1; k <= 20; k++ {
				iw, ih := tw*k, th*k
				r, err := FitRegion(iw, ih, tw, th)
				if err != nil {
					t.Fatal(err)
				}
				if want := image.Rect(0, 0, iw, ih); r != want {
					t.Fatalf("FitRegion(%d, %d, %d, %d) = %v, want %v", iw, ih, tw, th, r, want)
				}
			}
		}
	}
}

func TestFitRegionInvalid(t *testing.T) {
	if _, err := FitRegion(0, 10, 10, 10); !errors.Is(err, ErrInvalidSourceImage) {
		t.Errorf("FitRegion() error = %v, want ErrInvalidSourceImage", err)
	}
	if _, err := FitRegion(10, -1, 10, 10); !errors.Is(err, ErrInvalidSourceImage) {
		t.Errorf("FitRegion() error = %v, want ErrInvalidSourceImage", err)
	}
	if _, err := FitRegion(10, 10, 10, 0); !errors.Is(err, ErrInvalidCell) {
		t.Errorf("FitRegion() error = %v, want ErrInvalidCell", err)
	}
}

func testResizers() map[string]ImageResizer {
	return map[string]ImageResizer{
		"nfnt":    NewNfntResizer(GetInterP(1)),
		"xdraw":   NewXDrawResizer(3),
		"imaging": NewImagingResizer(4),
	}
}

func TestCropResizeSize(t *testing.T) {
	src := NewCanvas(200, 100, color.RGBA{10, 20, 30, 255})
	for name, resizer := range testResizers() {
		t.Run(name, func(t *testing.T) {
			for _, size := range [][2]int{{100, 50}, {50, 50}, {30, 90}, {1, 1}, {400, 100}} {
				img, err := CropResize(resizer, size[0], size[1], src)
				if err != nil {
					t.Fatalf("CropResize(%v) error = %v", size, err)
				}
				if b := img.Bounds(); b.Dx() != size[0] || b.Dy() != size[1] {
					t.Errorf("CropResize(%v) bounds = %v", size, b)
				}
			}
		})
	}
}

func TestCropResizeCentered(t *testing.T) {
	// left and right third are red, the middle is blue. Cropping the image to a
	// square must only keep blue.
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	src := NewCanvas(300, 100, red)
	for y := 0; y < 100; y++ {
		for x := 100; x < 200; x++ {
			src.SetRGBA(x, y, blue)
		}
	}
	img, err := CropResize(NewXDrawResizer(0), 10, 10, src)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := color.RGBAModel.Convert(img.At(x, y)); c != blue {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, c, blue)
			}
		}
	}
}

func TestCropResizeSubImageOrigin(t *testing.T) {
	canvas := NewCanvas(400, 100, White)
	src := canvas.SubImage(image.Rect(100, 0, 300, 100))
	img, err := CropResize(DefaultResizer, 20, 10, src)
	if err != nil {
		t.Fatalf("CropResize() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("CropResize() bounds = %v", b)
	}
}

func TestCropResizeEmpty(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := CropResize(DefaultResizer, 10, 10, src); !errors.Is(err, ErrInvalidSourceImage) {
		t.Errorf("CropResize() error = %v, want ErrInvalidSourceImage", err)
	}
	if _, err := ForceResize(DefaultResizer, 10, 10, src); !errors.Is(err, ErrInvalidSourceImage) {
		t.Errorf("ForceResize() error = %v, want ErrInvalidSourceImage", err)
	}
}

func TestForceResize(t *testing.T) {
	src := NewCanvas(200, 100, White)
	img, err := ForceResize(DefaultResizer, 33, 77, src)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 33 || b.Dy() != 77 {
		t.Errorf("ForceResize() bounds = %v", b)
	}
}

type identityResizer struct{}

func (identityResizer) Resize(width, height uint, img image.Image) image.Image {
	return img
}

func TestStrategyChecksResizer(t *testing.T) {
	src := NewCanvas(200, 100, White)
	if _, err := CropResize(identityResizer{}, 100, 50, src); !errors.Is(err, ErrBufferBounds) {
		t.Errorf("CropResize() error = %v, want ErrBufferBounds", err)
	}
	if _, err := ForceResize(identityResizer{}, 100, 50, src); !errors.Is(err, ErrBufferBounds) {
		t.Errorf("ForceResize() error = %v, want ErrBufferBounds", err)
	}
}
