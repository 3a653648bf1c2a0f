package gui

import (
	"dragchess/src"
	"dragchess/src/base"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase"
	"dragchess/ui/gui/gbase/gconf"
	"dragchess/ui/gui/gctx"
	"dragchess/ui/gui/gdraw"
	"dragchess/ui/gui/ghelper/gclipboard"
	"dragchess/ui/gui/ghelper/gfont"
	"dragchess/ui/gui/ghelper/gimages"
	"dragchess/ui/gui/ginput"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type GUIProcessing struct {
	ctx      *gctx.GUIGameContext
	loop     *ginput.Loop
	renderer *gdraw.Renderer
	surface  *screenSurface

	dirty bool
	err   error
}

func NewGUI(b *src.GameBuilder, cfg *gconf.Config, logx logx.Logger) (*GUIProcessing, error) {
	cell := cfg.Window.CellSize
	sprites := gimages.NewLibrary(cfg.Assets.Dir, cell)
	if err := sprites.Preload(base.AssetKeys()); err != nil {
		return nil, fmt.Errorf("error load sprites: %w", err)
	}

	ctx := gctx.NewGUIGameContext(b, sprites, cfg, logx)
	surface := newScreenSurface()
	if cfg.Coordinates {
		face, err := gfont.Label(gfont.LabelSize(cell))
		if err != nil {
			return nil, err
		}
		surface.face = face
	}

	return &GUIProcessing{
		ctx:      ctx,
		loop:     ginput.NewLoop(b, cell, logx),
		renderer: gdraw.NewRenderer(ctx.Theme, cell, ctx.Sprites, cfg.Coordinates),
		surface:  surface,
		dirty:    true,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	size := gp.renderer.BoardPixels()
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(gp.ctx.Config.Window.Title)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowClosingHandled(true)

	gp.ctx.Logx.Infof("open window %dx%d", size, size)
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		gp.ctx.Logx.Info("window closed")
		return nil
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	if gp.err != nil {
		return gp.err
	}
	for _, ev := range gp.events() {
		res, err := gp.loop.Handle(ev)
		if err != nil {
			return err
		}
		if res.Quit {
			return gbase.ErrExit
		}
		if res.Redraw {
			gp.dirty = true
		}
	}
	return gp.keys()
}

// events translates this tick's input edges for the input loop.
func (gp *GUIProcessing) events() []ginput.Event {
	var evs []ginput.Event
	if ebiten.IsWindowBeingClosed() {
		return append(evs, ginput.Event{Kind: ginput.Closed})
	}
	x, y := ebiten.CursorPosition()
	buttons := []struct {
		eb ebiten.MouseButton
		b  ginput.Button
	}{
		{ebiten.MouseButtonLeft, ginput.Left},
		{ebiten.MouseButtonRight, ginput.Right},
		{ebiten.MouseButtonMiddle, ginput.Middle},
	}
	for _, btn := range buttons {
		if inpututil.IsMouseButtonJustPressed(btn.eb) {
			evs = append(evs, ginput.Event{Kind: ginput.ButtonPressed, Button: btn.b, X: x, Y: y})
		}
		if inpututil.IsMouseButtonJustReleased(btn.eb) {
			evs = append(evs, ginput.Event{Kind: ginput.ButtonReleased, Button: btn.b, X: x, Y: y})
		}
	}
	return evs
}

func (gp *GUIProcessing) keys() error {
	b := gp.ctx.Builder
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return gbase.ErrExit
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := b.Reset(); err != nil {
			return err
		}
		gp.loop.Reset()
		gp.dirty = true
		gp.ctx.Logx.Info("board reset")
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		notation := b.Notation()
		if err := gclipboard.WriteAll(notation); err != nil {
			gp.ctx.Logx.Warnf("error copy to clipboard: %v", err)
			return nil
		}
		gp.ctx.Logx.Infof("copied %s", notation)
	case inpututil.IsKeyJustPressed(ebiten.KeyV):
		notation, err := gclipboard.ReadAll()
		if err != nil {
			gp.ctx.Logx.Warnf("error read clipboard: %v", err)
			return nil
		}
		if err := b.Load(notation); err != nil {
			gp.ctx.Logx.Warnf("clipboard rejected: %v", err)
			return nil
		}
		gp.loop.Reset()
		gp.dirty = true
	}
	return nil
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	if !gp.dirty {
		return
	}
	gp.surface.dst = screen
	if err := gp.renderer.Render(gp.ctx.Builder.Grid(), gp.surface); err != nil {
		gp.err = err
		return
	}
	gp.dirty = false
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	size := gp.renderer.BoardPixels()
	return size, size
}
