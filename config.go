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
	"image/color"
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	homedir "github.com/mitchellh/go-homedir"
)

// Layout modes supported by Config.
const (
	ModeRegular      = "regular"
	ModeRandomLevels = "random-levels"
)

// Fit modes supported by Config.
const (
	FitCrop  = "crop"
	FitForce = "force"
)

// RegularConfig contains the parameters of RegularLayout.
type RegularConfig struct {
	Cols       int `toml:"cols"`
	Rows       int `toml:"rows"`
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
	Offset     int `toml:"offset"`
}

// RandomConfig contains the parameters of RandomLevelsLayout.
type RandomConfig struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Levels []Level `toml:"levels"`

	// Seed is used to initialize the random generator, 0 means a seed based on
	// the current time.
	Seed int64 `toml:"seed"`

	// FillBounds creates a canvas of size Width x Height even if the cells
	// don't cover the full area. By default the canvas is only as large as
	// required by the cells.
	FillBounds bool `toml:"fill_bounds"`
}

// Config describes a complete mosaic run, see Run. It can be read from a toml
// file with LoadConfig, ExampleRegularConfig and ExampleRandomConfig show the
// format.
type Config struct {
	// Mode is either ModeRegular or ModeRandomLevels.
	Mode string `toml:"mode"`

	// Folder is the directory containing the source images, Output the file the
	// mosaic is written to (.jpg or .png).
	Folder    string `toml:"folder"`
	Output    string `toml:"output"`
	Recursive bool   `toml:"recursive"`

	Regular RegularConfig `toml:"regular"`
	Random  RandomConfig  `toml:"random"`

	// Policy is "cyclic" or "strict". If empty the default of the mode is used:
	// strict for the regular layout and cyclic for the random layout.
	Policy string `toml:"policy"`

	// Fit is FitCrop or FitForce.
	Fit string `toml:"fit"`

	// Resizer is the name of the resize engine (see ResizerNames), Quality is
	// passed to the engine.
	Resizer string `toml:"resizer"`
	Quality uint   `toml:"quality"`

	JPGQuality int `toml:"jpeg_quality"`

	// Background is a hex color like "#ffffff".
	Background string `toml:"background"`

	CacheSize   int  `toml:"cache_size"`
	SkipInvalid bool `toml:"skip_invalid"`
}

// DefaultConfig returns a config with all options set to their defaults, mode
// and layout parameters must still be set.
func DefaultConfig() Config {
	return Config{
		Fit:        FitCrop,
		Resizer:    "nfnt",
		Quality:    5,
		JPGQuality: DefaultJPGQuality,
		Background: "#ffffff",
		CacheSize:  DefaultImageCacheSize,
	}
}

// LoadConfig reads a toml file. All options not present in the file have
// the values from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("Can't read config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig works as LoadConfig, but parses the config from a string.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("Can't parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks all options that don't depend on the layout, the layout
// itself is validated by BuildGrid.
func (cfg Config) Validate() error {
	switch cfg.Mode {
	case ModeRegular, ModeRandomLevels:
	default:
		return fmt.Errorf("Unknown mode %q, expected %s or %s", cfg.Mode, ModeRegular, ModeRandomLevels)
	}
	if cfg.Folder == "" {
		return fmt.Errorf("No source folder given")
	}
	if cfg.Output == "" {
		return fmt.Errorf("No output file given")
	}
	if cfg.Mode == ModeRandomLevels && !cfg.Random.FillBounds {
		cells := 0
		for _, level := range cfg.Random.Levels {
			cells += IntMax(0, level.Quantity)
		}
		if cells == 0 {
			return fmt.Errorf("Random layout has no cells, add a level with a positive quantity or set fill_bounds")
		}
	}
	if !JPGAndPNG(filepath.Ext(cfg.Output)) {
		return fmt.Errorf("Supported files are .jpg and .png, got file %s", cfg.Output)
	}
	if _, err := cfg.SelectionPolicy(); err != nil {
		return err
	}
	if _, err := cfg.Strategy(); err != nil {
		return err
	}
	if _, err := ResizerByName(cfg.Resizer, cfg.Quality); err != nil {
		return err
	}
	if cfg.JPGQuality < 1 || cfg.JPGQuality > 100 {
		return fmt.Errorf("JPG quality must be between 1 and 100, got %d", cfg.JPGQuality)
	}
	if _, err := cfg.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// SelectionPolicy returns the parsed policy, or the default of the mode.
func (cfg Config) SelectionPolicy() (SelectionPolicy, error) {
	if cfg.Policy == "" {
		if cfg.Mode == ModeRegular {
			return SelectStrict, nil
		}
		return SelectCyclic, nil
	}
	return ParseSelectionPolicy(cfg.Policy)
}

// Strategy returns the resize strategy for Fit.
func (cfg Config) Strategy() (ResizeStrategy, error) {
	switch strings.ToLower(cfg.Fit) {
	case "", FitCrop:
		return CropResize, nil
	case FitForce:
		return ForceResize, nil
	default:
		return nil, fmt.Errorf("Unknown fit %q, expected %s or %s", cfg.Fit, FitCrop, FitForce)
	}
}

// BackgroundColor parses Background, the empty string is white.
func (cfg Config) BackgroundColor() (color.Color, error) {
	if cfg.Background == "" {
		return White, nil
	}
	c, err := colorful.Hex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("Invalid background color %q: %w", cfg.Background, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// BuildGrid creates the layout described by the config, rnd is only used in
// the random mode (and may be nil).
func (cfg Config) BuildGrid(rnd *rand.Rand) (*Grid, error) {
	switch cfg.Mode {
	case ModeRegular:
		r := cfg.Regular
		return RegularLayout(r.Cols, r.Rows, r.CellWidth, r.CellHeight, r.Offset)
	case ModeRandomLevels:
		r := cfg.Random
		return RandomLevelsLayout(r.Levels, r.Width, r.Height, rnd)
	default:
		return nil, fmt.Errorf("Unknown mode %q", cfg.Mode)
	}
}

// NewCompositor returns a compositor configured by cfg.
func (cfg Config) NewCompositor(storage ImageStorage) (*Compositor, error) {
	policy, policyErr := cfg.SelectionPolicy()
	if policyErr != nil {
		return nil, policyErr
	}
	strategy, strategyErr := cfg.Strategy()
	if strategyErr != nil {
		return nil, strategyErr
	}
	resizer, resizerErr := ResizerByName(cfg.Resizer, cfg.Quality)
	if resizerErr != nil {
		return nil, resizerErr
	}
	bg, bgErr := cfg.BackgroundColor()
	if bgErr != nil {
		return nil, bgErr
	}
	c := NewCompositor(storage)
	c.Policy = policy
	c.Strategy = strategy
	c.Resizer = resizer
	c.Background = bg
	c.Cache = NewImageCache(cfg.CacheSize)
	c.SkipInvalid = cfg.SkipInvalid
	if cfg.Mode == ModeRandomLevels && cfg.Random.FillBounds {
		c.MinWidth, c.MinHeight = cfg.Random.Width, cfg.Random.Height
	}
	return c, nil
}

// ResolvePath returns the absolute path given some other path.
// The idea is the following: If the user inputs a path we have two cases:
// The user used an absolute path, in this case we use this absolute path.
// If it is a relative path we join base with this path.
//
// The home directory can be used like on Unix: ~/Pictures is the Pictures
// directory in the home directory of the user.
func ResolvePath(base, path string) (string, error) {
	res, pathErr := homedir.Expand(path)
	if pathErr != nil {
		return "", pathErr
	}
	if !filepath.IsAbs(res) {
		res = filepath.Join(base, res)
	}
	return filepath.Abs(res)
}
