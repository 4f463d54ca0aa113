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
	"image"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultImageCacheSize is the size of image caches if no valid size is given.
// The composition of mosaics is much faster if fitted images are cached,
// especially if the same source image is used for many cells of the same
// size.
const DefaultImageCacheSize = 15

type cacheKey struct {
	id            ImageID
	width, height int
}

// ImageCache is used to cache resized versions of images during mosaic
// generation. Least recently used images are removed first once the cache
// is full.
//
// Caches are safe for concurrent use.
type ImageCache struct {
	cache *lru.Cache[cacheKey, image.Image]
}

// NewImageCache returns an empty image cache. size is the number of images
// that will be cached, if size ≤ 0 DefaultImageCacheSize is used.
func NewImageCache(size int) *ImageCache {
	if size <= 0 {
		size = DefaultImageCacheSize
	}
	// error only for size ≤ 0
	cache, _ := lru.New[cacheKey, image.Image](size)
	return &ImageCache{cache: cache}
}

// Put adds an image to the cache. Usually Put is called after Get: If the
// image was not found in the cache it is scaled and then added to the cache
// via Put.
func (c *ImageCache) Put(id ImageID, width, height int, img image.Image) {
	c.cache.Add(cacheKey{id, width, height}, img)
}

// Get returns the image from the cache. If the return value is nil the image
// was not found in the cache and should be added to the cache by Put.
func (c *ImageCache) Get(id ImageID, width, height int) image.Image {
	if img, ok := c.cache.Get(cacheKey{id, width, height}); ok {
		return img
	}
	return nil
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	return c.cache.Len()
}
