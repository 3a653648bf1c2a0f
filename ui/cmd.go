package ui

import (
	"context"
	"dragchess/ui/app"
	clic "dragchess/ui/cli"
	"dragchess/ui/gui"
	"dragchess/ui/gui/gdraw"
	"dragchess/ui/gui/ghelper/gdialog"
	"dragchess/ui/gui/ghelper/gfont"
	"dragchess/ui/gui/ghelper/gimages"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

func RunGUI(ctx context.Context, c *cli.Command) error {
	s, err := app.Open(c, os.Stdout)
	if err != nil {
		gdialog.ShowError("dragchess", err)
		return err
	}
	defer s.Close()

	g, err := gui.NewGUI(s.Builder, s.Config, s.Logger)
	if err != nil {
		s.Logger.Errorf("error start GUI: %v", err)
		gdialog.ShowError("dragchess", err)
		return err
	}
	return g.Run()
}

// RunPrint keeps stdout for the board; console logging goes to stderr.
func RunPrint(ctx context.Context, c *cli.Command) error {
	s, err := app.Open(c, os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	color := term.IsTerminal(int(os.Stdout.Fd()))
	if color {
		clic.EnableANSI()
	}
	return clic.PrintGrid(os.Stdout, s.Builder.Grid(), color)
}

func RunSnapshot(ctx context.Context, c *cli.Command) error {
	s, err := app.Open(c, os.Stdout)
	if err != nil {
		return err
	}
	defer s.Close()

	cell := s.Config.Window.CellSize
	r := gdraw.NewRenderer(s.Config.Palette(), cell, gimages.NewLibrary(s.Config.Assets.Dir, cell), s.Config.Coordinates)
	surface, err := gdraw.NewImageSurface(r.BoardPixels(), gfont.LabelSize(cell))
	if err != nil {
		return err
	}
	if err := r.Render(s.Builder.Grid(), surface); err != nil {
		return err
	}

	out, err := os.Create(c.String("out"))
	if err != nil {
		return err
	}
	if err := surface.EncodePNG(out); err != nil {
		out.Close()
		return err
	}
	s.Logger.Infof("snapshot saved to %s", out.Name())
	return out.Close()
}

func RunDragChess() error {
	return app.NewCommand(app.Actions{
		GUI:      RunGUI,
		Print:    RunPrint,
		Snapshot: RunSnapshot,
	}).Run(context.Background(), os.Args)
}
