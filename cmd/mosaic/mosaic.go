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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/FabianWe/gridmosaic"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.WithError(err).Error("Mosaic creation failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "mosaic",
		Short:         "Creates mosaic images from a folder of photographs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRegularCmd())
	root.AddCommand(newRandomCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newExampleCmd())
	return root
}

// addCommonFlags adds the flags shared by regular and random to cmd, the
// values are written to cfg.
func addCommonFlags(cmd *cobra.Command, cfg *gridmosaic.Config) {
	flags := cmd.Flags()
	flags.StringVarP(&cfg.Folder, "folder", "f", "", "folder containing source images")
	flags.StringVarP(&cfg.Output, "output", "o", "", "file path of the mosaic image (.jpg or .png)")
	flags.BoolVar(&cfg.Recursive, "recursive", false, "include images in subdirectories")
	flags.StringVar(&cfg.Policy, "policy", "", "image selection: cyclic or strict (default depends on the layout)")
	flags.StringVar(&cfg.Fit, "fit", cfg.Fit, "crop (keep aspect ratio) or force (stretch)")
	flags.StringVar(&cfg.Resizer, "resizer", cfg.Resizer, "resize engine: nfnt, xdraw or imaging")
	flags.UintVar(&cfg.Quality, "quality", cfg.Quality, "interpolation quality from 0 (fast) to 5 (best)")
	flags.IntVar(&cfg.JPGQuality, "jpeg-quality", cfg.JPGQuality, "quality of jpg output between 1 and 100")
	flags.StringVar(&cfg.Background, "background", cfg.Background, "background color as hex value")
	flags.IntVar(&cfg.CacheSize, "cache", cfg.CacheSize, "number of resized images to cache")
	flags.BoolVar(&cfg.SkipInvalid, "skip-invalid", false, "skip empty source images instead of failing")
	cmd.MarkFlagRequired("folder")
	cmd.MarkFlagRequired("output")
}

func runConfig(cmd *cobra.Command, cfg gridmosaic.Config) error {
	out, err := gridmosaic.Run(cfg, nil)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Mosaic saved to", out)
	return nil
}

func newRegularCmd() *cobra.Command {
	cfg := gridmosaic.DefaultConfig()
	cfg.Mode = gridmosaic.ModeRegular
	var gridSize, cellSize string
	cmd := &cobra.Command{
		Use:   "regular",
		Short: "Creates a mosaic with a regular grid of equally sized cells",
		Long: "Creates a mosaic with a regular grid of equally sized cells." +
			" The grid is given by the number of columns and rows, for example" +
			" \"4x3\" and the cell size in pixels, for example \"300x200\"." +
			" offset is the space between the cells and the border in pixels." +
			" By default each source image is used once, so the folder must" +
			" contain at least columns*rows images.",
		Example: "mosaic regular -f ~/Pictures -o mosaic.jpg -g 4x3 -c 300x200 --offset 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cols, rows, gridErr := gridmosaic.ParseDimensions(gridSize)
			if gridErr != nil {
				return gridErr
			}
			cellWidth, cellHeight, cellErr := gridmosaic.ParseDimensions(cellSize)
			if cellErr != nil {
				return cellErr
			}
			cfg.Regular.Cols, cfg.Regular.Rows = cols, rows
			cfg.Regular.CellWidth, cfg.Regular.CellHeight = cellWidth, cellHeight
			return runConfig(cmd, cfg)
		},
	}
	addCommonFlags(cmd, &cfg)
	cmd.Flags().StringVarP(&gridSize, "grid", "g", "", "grid size (columns x rows), e.g. 4x3")
	cmd.Flags().StringVarP(&cellSize, "cell", "c", "", "cell size (width x height), e.g. 300x200")
	cmd.Flags().IntVar(&cfg.Regular.Offset, "offset", 0, "distance between cells and the image border")
	cmd.MarkFlagRequired("grid")
	cmd.MarkFlagRequired("cell")
	return cmd
}

func newRandomCmd() *cobra.Command {
	cfg := gridmosaic.DefaultConfig()
	cfg.Mode = gridmosaic.ModeRandomLevels
	var size string
	var levels []string
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Creates a mosaic with square cells at random positions",
		Long: "Creates a mosaic with square cells at random positions." +
			" Cells are described by levels of the form QUANTITY:SIZE, for" +
			" example \"10:200\" places 10 cells of 200x200 pixels. Levels are" +
			" placed in the given order and cells may overlap, later cells are" +
			" drawn on top. Source images are reused if there are more cells" +
			" than images.",
		Example: "mosaic random -f ~/Pictures -o mosaic.png -s 1920x1080 --level 10:400 --level 100:80",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			width, height, sizeErr := gridmosaic.ParseDimensions(size)
			if sizeErr != nil {
				return sizeErr
			}
			parsed, levelsErr := gridmosaic.ParseLevels(levels)
			if levelsErr != nil {
				return levelsErr
			}
			if len(parsed) == 0 {
				return errors.New("At least one level is required")
			}
			cfg.Random.Width, cfg.Random.Height = width, height
			cfg.Random.Levels = parsed
			return runConfig(cmd, cfg)
		},
	}
	addCommonFlags(cmd, &cfg)
	cmd.Flags().StringVarP(&size, "size", "s", "", "mosaic size (width x height), e.g. 1920x1080")
	cmd.Flags().StringArrayVar(&levels, "level", nil, "QUANTITY:SIZE of a level, can be repeated")
	cmd.Flags().Int64Var(&cfg.Random.Seed, "seed", 0, "seed for the random layout (0 uses the current time)")
	cmd.Flags().BoolVar(&cfg.Random.FillBounds, "fill", false, "always create a mosaic of the full size")
	cmd.MarkFlagRequired("size")
	return cmd
}

func newRunCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Creates a mosaic described by a toml config file",
		Example: "mosaic example random > random.toml && mosaic run --config random.toml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cfgErr := gridmosaic.LoadConfig(path)
			if cfgErr != nil {
				return cfgErr
			}
			return runConfig(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&path, "config", "", "path of the config file")
	cmd.MarkFlagRequired("config")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "example [regular|random]",
		Short:     "Prints an example config file",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"regular", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := "regular"
			if len(args) == 1 {
				kind = args[0]
			}
			switch kind {
			case "regular":
				fmt.Fprint(cmd.OutOrStdout(), gridmosaic.ExampleRegularConfig)
			case "random":
				fmt.Fprint(cmd.OutOrStdout(), gridmosaic.ExampleRandomConfig)
			default:
				return fmt.Errorf("Unknown example %q, expected regular or random", kind)
			}
			return nil
		},
	}
}
