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
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Run creates a mosaic as described by cfg and writes it to cfg.Output.
// Relative paths are resolved against the current working directory.
// The returned string is the absolute path of the written mosaic.
//
// The config and the layout are validated before any image is read, if any
// step fails the run is aborted and no output file is written.
func Run(cfg Config, entry *log.Entry) (string, error) {
	if entry == nil {
		entry = log.NewEntry(log.StandardLogger())
	}
	entry = entry.WithField("run", uuid.NewString())
	totalStart := time.Now()

	if err := cfg.Validate(); err != nil {
		return "", err
	}
	base, baseErr := filepath.Abs(".")
	if baseErr != nil {
		return "", baseErr
	}
	folder, folderErr := ResolvePath(base, cfg.Folder)
	if folderErr != nil {
		return "", folderErr
	}
	outPath, outErr := ResolvePath(base, cfg.Output)
	if outErr != nil {
		return "", outErr
	}

	grid, gridErr := cfg.BuildGrid(NewRand(cfg.Random.Seed))
	if gridErr != nil {
		return "", gridErr
	}
	width, height := grid.CanvasSize()
	entry.WithFields(log.Fields{
		"mode":   cfg.Mode,
		"cells":  grid.Size(),
		"width":  width,
		"height": height,
	}).Debug("Created layout")

	entry.WithField("folder", folder).Info("Reading image list")
	db, dbErr := GenFSDatabase(folder, cfg.Recursive, JPGAndPNG)
	if dbErr != nil {
		return "", fmt.Errorf("Can't read image list: %w", dbErr)
	}
	entry.Infof("Found %d images", db.NumImages())

	compositor, compErr := cfg.NewCompositor(db)
	if compErr != nil {
		return "", compErr
	}
	compositor.Log = entry
	compositor.Progress = LoggerProgressFunc(entry, "Composing", grid.Size(),
		IntMax(1, IntMin(100, grid.Size()/10)))

	start := time.Now()
	mosaic, mosaicErr := compositor.Compose(grid, IDList(db))
	if mosaicErr != nil {
		return "", mosaicErr
	}
	entry.WithField("took", time.Since(start)).Info("Composed mosaic")

	if saveErr := SaveImage(outPath, mosaic, cfg.JPGQuality); saveErr != nil {
		return "", saveErr
	}
	entry.WithFields(log.Fields{
		"output": outPath,
		"took":   time.Since(totalStart),
	}).Info("Mosaic saved")
	return outPath, nil
}
