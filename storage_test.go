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
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestJPGAndPNG(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{".png", true},
		{".PNG", true},
		{".jpg", true},
		{".JPG", true},
		{".jpeg", true},
		{".JPEG", true},
		{".gif", false},
		{".txt", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := JPGAndPNG(tt.ext); got != tt.want {
			t.Errorf("JPGAndPNG(%q) = %v, want %v", tt.ext, got, tt.want)
		}
	}
}

// writeTestImages creates a directory with some images and other files.
func writeTestImages(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	images := map[string]color.RGBA{
		"b.png":      red,
		"a.JPG":      green,
		"c.jpeg":     blue,
		"sub/d.png":  red,
		"sub/e.Jpeg": blue,
	}
	for name, c := range images {
		if err := SaveImage(filepath.Join(dir, name), NewCanvas(8, 4, c), 90); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("no image"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestGenFSDatabase(t *testing.T) {
	dir := writeTestImages(t)

	db, err := GenFSDatabase(dir, false, nil)
	if err != nil {
		t.Fatalf("GenFSDatabase() error = %v", err)
	}
	want := []string{"a.JPG", "b.png", "c.jpeg"}
	if !reflect.DeepEqual(db.Paths, want) {
		t.Errorf("Paths = %v, want %v", db.Paths, want)
	}
	if db.NumImages() != 3 {
		t.Errorf("NumImages() = %d, want 3", db.NumImages())
	}

	db, err = GenFSDatabase(dir, true, nil)
	if err != nil {
		t.Fatalf("GenFSDatabase() error = %v", err)
	}
	want = []string{"a.JPG", "b.png", "c.jpeg", filepath.Join("sub", "d.png"), filepath.Join("sub", "e.Jpeg")}
	if !reflect.DeepEqual(db.Paths, want) {
		t.Errorf("Paths = %v, want %v", db.Paths, want)
	}

	img, err := db.LoadImage(1)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("LoadImage() bounds = %v, want 8x4", b)
	}
	if _, err := db.LoadImage(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("LoadImage(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestGenFSDatabaseMissingDir(t *testing.T) {
	if _, err := GenFSDatabase(filepath.Join(t.TempDir(), "missing"), false, nil); err == nil {
		t.Error("GenFSDatabase() expected error for missing directory")
	}
}

func TestFSImageDBDecodeError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	db, err := GenFSDatabase(dir, false, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.LoadImage(0); !errors.Is(err, ErrImageDecode) {
		t.Errorf("LoadImage() error = %v, want ErrImageDecode", err)
	}
}

func TestMemImageDB(t *testing.T) {
	db := NewMemImageDB(NewCanvas(1, 1, red), NewCanvas(2, 2, blue))
	if got := IDList(db); !reflect.DeepEqual(got, []ImageID{0, 1}) {
		t.Errorf("IDList() = %v", got)
	}
	img, err := db.LoadImage(1)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("LoadImage(1) returned the wrong image")
	}
	for _, id := range []ImageID{-1, 2} {
		if _, err := db.LoadImage(id); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("LoadImage(%d) error = %v, want ErrIndexOutOfRange", id, err)
		}
	}
}
