package gconf

import (
	"dragchess/src/base"
	"dragchess/ui/gui/gbase"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Notation != base.StartNotation || c.Window.CellSize != gbase.DefaultCellSize {
		t.Fatalf("defaults not applied: %+v", c)
	}
	if c.Palette() != gbase.DefaultPalette {
		t.Fatalf("palette = %+v", c.Palette())
	}
}

func TestDecode(t *testing.T) {
	doc := `
notation: "4k3/8/8/8/8/8/8/4K3"
strict: true
coordinates: true
window:
  cell_size: 64
theme:
  light: "#ffffff"
assets:
  dir: /tmp/pieces
log:
  level: debug
`
	c, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if c.Notation != "4k3/8/8/8/8/8/8/4K3" || !c.Strict || !c.Coordinates {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Window.CellSize != 64 {
		t.Fatalf("cell size = %d", c.Window.CellSize)
	}
	if c.Window.Title != gbase.WindowTitle {
		t.Fatalf("title = %q", c.Window.Title)
	}
	if c.Palette().Light != (color.RGBA{255, 255, 255, 255}) || c.Palette().Dark != gbase.DefaultPalette.Dark {
		t.Fatalf("palette = %+v", c.Palette())
	}
	if c.Assets.Dir != "/tmp/pieces" || c.Log.Level != "debug" || c.Log.File != "dragchess.log" {
		t.Fatalf("assets/log = %+v %+v", c.Assets, c.Log)
	}
}

func TestDecodeCorrects(t *testing.T) {
	doc := `
window:
  cell_size: 5000
theme:
  dark: "green"
log:
  level: loud
`
	c, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if c.Window.CellSize != gbase.DefaultCellSize {
		t.Fatalf("cell size not corrected: %d", c.Window.CellSize)
	}
	if c.Theme.Dark != gbase.HexColor(gbase.DefaultPalette.Dark) {
		t.Fatalf("dark not corrected: %q", c.Theme.Dark)
	}
	if c.Log.Level != "info" {
		t.Fatalf("level not corrected: %q", c.Log.Level)
	}
}

func TestDecodeUnknownField(t *testing.T) {
	if _, err := Decode(strings.NewReader("fen: 8/8\n")); err == nil {
		t.Fatal("unknown field accepted")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	c := DefaultConfig()
	c.Coordinates = true
	c.Window.CellSize = 80
	if err := c.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != c {
		t.Fatalf("got %+v, want %+v", *got, c)
	}
}

func TestApply(t *testing.T) {
	on := true
	c := DefaultConfig()
	c.Apply(Overrides{Notation: "8/8/8/8/8/8/8/8", CellSize: 48, Level: "warn", Console: &on, Assets: "pieces"})
	if c.Notation != "8/8/8/8/8/8/8/8" || c.Window.CellSize != 48 || c.Log.Level != "warn" || !c.Log.Console || c.Assets.Dir != "pieces" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	c.Apply(Overrides{CellSize: 1})
	if c.Window.CellSize != gbase.DefaultCellSize {
		t.Fatalf("invalid override kept: %d", c.Window.CellSize)
	}
	c.Apply(Overrides{})
	if c.Notation != "8/8/8/8/8/8/8/8" {
		t.Fatal("empty override changed the notation")
	}
}

func TestApplySwitchesOff(t *testing.T) {
	c, err := Decode(strings.NewReader("strict: true\ncoordinates: true\nlog:\n  debug: true\n  console: true\n"))
	if err != nil {
		t.Fatal(err)
	}
	off := false
	c.Apply(Overrides{Strict: &off, Coords: &off, Debug: &off, Console: &off})
	if c.Strict || c.Coordinates || c.Log.Debug || c.Log.Console {
		t.Fatalf("false overrides ignored: %+v", c)
	}

	c, _ = Decode(strings.NewReader("strict: true\n"))
	c.Apply(Overrides{})
	if !c.Strict {
		t.Fatal("unset override cleared the file value")
	}
}
