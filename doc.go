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

// Package gridmosaic assembles a collection of photographs into a single large
// mosaic image. Each source image is cropped (keeping the aspect ratio of its
// target cell) and resized into one cell of a layout.
//
// Two layouts are supported: a regular grid where all cells have the same size
// and are separated by a fixed offset, and a randomized layout built from
// "levels", where each level describes a number of square cells of a certain
// size that are placed at random positions. Cells in the randomized layout may
// overlap, later cells are painted over earlier ones.
//
// It ships with an executable program (cmd/mosaic) to create mosaics from a
// directory of jpg and png files.
package gridmosaic
