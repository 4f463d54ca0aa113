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
	"os"
	"path/filepath"
	"sort"
)

// ImageID is used to unambiguously identify an image.
type ImageID int

// ImageStorage is used to administrate a collection of source images.
// Images are not required to be stored in memory but are identified by an id
// and are loaded into memory when required.
// All ids < NumImages are considered valid and can be retrieved via LoadImage.
type ImageStorage interface {
	// NumImages returns the number of images in the storage as an ImageID.
	NumImages() ImageID

	// LoadImage loads an image into memory.
	LoadImage(id ImageID) (image.Image, error)
}

// IDList returns the list [0, 1, ..., storage.NumImages - 1].
func IDList(storage ImageStorage) []ImageID {
	numImages := storage.NumImages()
	res := make([]ImageID, numImages)
	var i ImageID
	for ; i < numImages; i++ {
		res[i] = i
	}
	return res
}

func checkID(storage ImageStorage, id ImageID) error {
	if id < 0 || id >= storage.NumImages() {
		return fmt.Errorf("%w: image id %d not associated with an image", ErrIndexOutOfRange, id)
	}
	return nil
}

// FSImageDB implements ImageStorage. It uses images stored on the filesystem
// and opens them on demand.
// The paths are stored relative to the Root directory, GetPath returns the
// full path for an id.
type FSImageDB struct {
	Root  string
	Paths []string
}

// NewFSImageDB returns an empty database rooted at root.
func NewFSImageDB(root string) *FSImageDB {
	return &FSImageDB{Root: root, Paths: nil}
}

// GetPath returns the path of the image with the given id.
func (db *FSImageDB) GetPath(id ImageID) string {
	return filepath.Join(db.Root, db.Paths[id])
}

// NumImages returns the number of paths in the database.
func (db *FSImageDB) NumImages() ImageID {
	return ImageID(len(db.Paths))
}

// LoadImage decodes the image file associated with id.
func (db *FSImageDB) LoadImage(id ImageID) (image.Image, error) {
	if err := checkID(db, id); err != nil {
		return nil, err
	}
	return LoadImageFile(db.GetPath(id))
}

// GenFSDatabase creates a database containing all images in root accepted by
// filter. If filter is nil JPGAndPNG is used. If recursive is true images in
// subdirectories are included as well.
//
// The paths are sorted (by their path relative to root), this order is the
// order in which images are used in a mosaic.
func GenFSDatabase(root string, recursive bool, filter SupportedImageFunc) (*FSImageDB, error) {
	root, absErr := filepath.Abs(root)
	if absErr != nil {
		return nil, absErr
	}
	if filter == nil {
		filter = JPGAndPNG
	}
	var db *FSImageDB
	var err error
	if recursive {
		db, err = genFSDBRecursive(root, filter)
	} else {
		db, err = genFSDBNonRecursive(root, filter)
	}
	if err != nil {
		return nil, err
	}
	sort.Strings(db.Paths)
	return db, nil
}

func genFSDBRecursive(root string, filter SupportedImageFunc) (*FSImageDB, error) {
	result := NewFSImageDB(root)
	walkFunc := func(path string, info os.FileInfo, err error) error {
		switch {
		case err != nil:
			return err
		case !info.IsDir() && filter(filepath.Ext(path)):
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			result.Paths = append(result.Paths, rel)
			return nil
		default:
			return nil
		}
	}
	if err := filepath.Walk(root, walkFunc); err != nil {
		return nil, err
	}
	return result, nil
}

func genFSDBNonRecursive(root string, filter SupportedImageFunc) (*FSImageDB, error) {
	result := NewFSImageDB(root)
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && filter(filepath.Ext(entry.Name())) {
			result.Paths = append(result.Paths, entry.Name())
		}
	}
	return result, nil
}

// MemImageDB implements ImageStorage with images that are already in memory.
type MemImageDB struct {
	Images []image.Image
}

// NewMemImageDB returns a storage containing the given images, the id of an
// image is its position.
func NewMemImageDB(images ...image.Image) *MemImageDB {
	return &MemImageDB{Images: images}
}

// NumImages returns the number of images.
func (db *MemImageDB) NumImages() ImageID {
	return ImageID(len(db.Images))
}

// LoadImage returns the image with the given id.
func (db *MemImageDB) LoadImage(id ImageID) (image.Image, error) {
	if err := checkID(db, id); err != nil {
		return nil, err
	}
	return db.Images[id], nil
}
