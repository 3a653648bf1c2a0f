package gconf

import (
	"bytes"
	"dragchess/src/base"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "dragchess.yaml"

type Window struct {
	CellSize int    `yaml:"cell_size"`
	Title    string `yaml:"title"`
}

type Theme struct {
	Light     string `yaml:"light"`     // #rrggbb
	Dark      string `yaml:"dark"`      // #rrggbb
	Highlight string `yaml:"highlight"` // #rrggbb
}

type Assets struct {
	Dir string `yaml:"dir"` // empty: built-in pieces
}

type Log struct {
	Level   string `yaml:"level"`
	File    string `yaml:"file"`
	Console bool   `yaml:"console"`
	Debug   bool   `yaml:"debug"`
}

type Config struct {
	Notation    string `yaml:"notation"`
	Strict      bool   `yaml:"strict"`
	Coordinates bool   `yaml:"coordinates"`
	Window      Window `yaml:"window"`
	Theme       Theme  `yaml:"theme"`
	Assets      Assets `yaml:"assets"`
	Log         Log    `yaml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Notation: base.StartNotation,
		Window: Window{
			CellSize: gbase.DefaultCellSize,
			Title:    gbase.WindowTitle,
		},
		Theme: Theme{
			Light:     gbase.HexColor(gbase.DefaultPalette.Light),
			Dark:      gbase.HexColor(gbase.DefaultPalette.Dark),
			Highlight: gbase.HexColor(gbase.DefaultPalette.Highlight),
		},
		Log: Log{
			Level: "info",
			File:  "dragchess.log",
		},
	}
}

// Load reads the YAML file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		def := DefaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML document over the defaults and corrects invalid values.
func Decode(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	return &c, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Palette converts the theme colors; they are already corrected by Load.
func (c *Config) Palette() gbase.Palette {
	p := gbase.DefaultPalette
	if v, err := gbase.ParseHexColor(c.Theme.Light); err == nil {
		p.Light = v
	}
	if v, err := gbase.ParseHexColor(c.Theme.Dark); err == nil {
		p.Dark = v
	}
	if v, err := gbase.ParseHexColor(c.Theme.Highlight); err == nil {
		p.Highlight = v
	}
	return p
}


// Overrides holds command line values. Empty strings, zero ints and nil
// switches keep the file setting.
type Overrides struct {
	Notation string
	Strict   *bool
	Coords   *bool
	Assets   string
	CellSize int
	Level    string
	Debug    *bool
	Console  *bool
}

func (c *Config) Apply(o Overrides) {
	if o.Notation != "" {
		c.Notation = o.Notation
	}
	if o.Strict != nil {
		c.Strict = *o.Strict
	}
	if o.Coords != nil {
		c.Coordinates = *o.Coords
	}
	if o.Assets != "" {
		c.Assets.Dir = o.Assets
	}
	if o.CellSize != 0 {
		c.Window.CellSize = o.CellSize
	}
	if o.Level != "" {
		c.Log.Level = o.Level
	}
	if o.Debug != nil {
		c.Log.Debug = *o.Debug
	}
	if o.Console != nil {
		c.Log.Console = *o.Console
	}
	correctableConfig(c)
}

func correctableConfig(c *Config) {
	def := DefaultConfig()
	if c.Notation == "" {
		c.Notation = def.Notation
	}
	if c.Window.CellSize < gbase.MinCellSize || c.Window.CellSize > gbase.MaxCellSize {
		c.Window.CellSize = def.Window.CellSize
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if _, err := gbase.ParseHexColor(c.Theme.Light); err != nil {
		c.Theme.Light = def.Theme.Light
	}
	if _, err := gbase.ParseHexColor(c.Theme.Dark); err != nil {
		c.Theme.Dark = def.Theme.Dark
	}
	if _, err := gbase.ParseHexColor(c.Theme.Highlight); err != nil {
		c.Theme.Highlight = def.Theme.Highlight
	}
	if !logx.IsKnownLevel(c.Log.Level) {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
}
