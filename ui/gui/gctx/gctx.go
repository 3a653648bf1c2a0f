package gctx

import (
	"dragchess/src"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/ghelper/gimages"
)

// ---- GUI Context ----

type GUIGameContext struct {
	Builder *src.GameBuilder
	Sprites *gimages.Library
	Config  *gconf.Config
	Theme   gbase.Palette
	Logx    logx.Logger
}

func NewGUIGameContext(b *src.GameBuilder, s *gimages.Library, c *gconf.Config, l logx.Logger) *GUIGameContext {
	return &GUIGameContext{
		Builder: b,
		Sprites: s,
		Config:  c,
		Theme:   c.Palette(),
		Logx:    l,
	}
}
