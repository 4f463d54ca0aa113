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

// This file contains some predefined configurations. This way users have an
// easy way to create mosaics without requiring them to know any details,
// "mosaic example" prints them.

var (
	// ExampleRegularConfig creates a regular grid with 4 columns and 3 rows
	// of 300x200 cells with 10 pixels between them. Each image from ~/Pictures
	// is used at most once, so the folder must contain at least 12 images.
	// The mosaic is 1250x640 pixels.
	ExampleRegularConfig = `mode = "regular"
folder = "~/Pictures"
output = "mosaic.jpg"

[regular]
cols = 4
rows = 3
cell_width = 300
cell_height = 200
offset = 10
`

	// ExampleRandomConfig places three levels of square cells at random
	// positions in a 1920x1080 area: first some large cells and then smaller
	// ones on top of them. Images are reused if there are less images than
	// cells.
	ExampleRandomConfig = `mode = "random-levels"
folder = "~/Pictures"
output = "mosaic.png"
background = "#000000"

[random]
width = 1920
height = 1080
seed = 42

[[random.levels]]
quantity = 10
max_size = 400

[[random.levels]]
quantity = 40
max_size = 200

[[random.levels]]
quantity = 100
max_size = 80
`
)
