package app

import (
	"context"
	"dragchess/src"
	"dragchess/src/logx"
	"dragchess/ui/gui/gbase/gconf"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// Actions are the command bodies; the window host lives outside this package.
type Actions struct {
	GUI      cli.ActionFunc
	Print    cli.ActionFunc
	Snapshot cli.ActionFunc
}

// Flags are declared once on the root command and inherited by every subcommand.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: gconf.DefaultFile,
			Usage: "path to YAML config",
		},
		&cli.StringFlag{
			Name:    "notation",
			Aliases: []string{"fen"},
			Usage:   "board placement, e.g. rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "require 8 ranks of 8 files with legal piece letters",
		},
		&cli.BoolFlag{
			Name:  "coords",
			Usage: "draw file and rank labels",
		},
		&cli.StringFlag{
			Name:  "assets",
			Usage: "directory with <color>-<kind>.png or .svg sprites",
		},
		&cli.IntFlag{
			Name:  "cell",
			Usage: "square size in pixels",
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "logger level (debug, info, warn, error)",
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug mod",
		},
		&cli.BoolFlag{
			Name:    "console",
			Aliases: []string{"c"},
			Usage:   "console logger encoding",
		},
	}
}

func NewCommand(a Actions) *cli.Command {
	return &cli.Command{
		Name:  "dragchess",
		Usage: "chess board with free drag-and-drop",
		Flags: Flags(),
		Commands: []*cli.Command{
			{
				Name:   "gui",
				Usage:  "open the board window",
				Action: a.GUI,
			},
			{
				Name:   "print",
				Usage:  "print the board to the terminal",
				Action: a.Print,
			},
			{
				Name:  "snapshot",
				Usage: "render the board to a PNG file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "board.png",
						Usage: "output file",
					},
				},
				Action: a.Snapshot,
			},
			{
				Name:  "config",
				Usage: "write the effective config to a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: gconf.DefaultFile,
						Usage: "output file",
					},
				},
				Action: WriteConfig,
			},
		},
		Action: a.GUI,
	}
}

// boolOverride is nil unless the flag was given, so an explicit false still wins over the file.
func boolOverride(c *cli.Command, name string) *bool {
	if !c.IsSet(name) {
		return nil
	}
	v := c.Bool(name)
	return &v
}

// LoadConfig reads the config file and applies the command line on top.
func LoadConfig(c *cli.Command) (*gconf.Config, error) {
	cfg, err := gconf.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	cfg.Apply(gconf.Overrides{
		Notation: c.String("notation"),
		Strict:   boolOverride(c, "strict"),
		Coords:   boolOverride(c, "coords"),
		Assets:   c.String("assets"),
		CellSize: c.Int("cell"),
		Level:    c.String("level"),
		Debug:    boolOverride(c, "debug"),
		Console:  boolOverride(c, "console"),
	})
	return cfg, nil
}

func WriteConfig(ctx context.Context, c *cli.Command) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}
	if err := cfg.Save(c.String("out")); err != nil {
		return fmt.Errorf("error save config: %w", err)
	}
	fmt.Fprintf(c.Root().Writer, "config saved to %s\n", c.String("out"))
	return nil
}

func GetLogger(file, console io.Writer, cfg *gconf.Config) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(cfg.Log.Level),
		cfg.Log.Debug,
		cfg.Log.Console,
	)
	l.SetConsoleWriter(console)
	l.InitLogger(file)
	return l
}

// Session holds what every command needs: config, logger and the loaded board.
type Session struct {
	Config  *gconf.Config
	Logger  *logx.Logx
	Builder *src.GameBuilder
	file    io.WriteCloser
	errOut  io.Writer
}

// Open loads the config, starts logging and builds the board. In console mode
// log lines go to console instead of the log file.
func Open(c *cli.Command, console io.Writer) (*Session, error) {
	cfg, err := LoadConfig(c)
	if err != nil {
		return nil, err
	}
	s := &Session{Config: cfg, errOut: os.Stderr}
	var w io.Writer = io.Discard
	if !cfg.Log.Console {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("error open logfile: %w", err)
		}
		s.file = f
		w = f
	}
	s.Logger = GetLogger(w, console, cfg)
	s.Logger.Debugf("config %+v", *cfg)

	s.Builder = src.NewBuilderBoard(s.Logger)
	s.Builder.SetStrict(cfg.Strict)
	if err := s.Builder.CreateFromNotation(cfg.Notation); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close flushes the logger and closes the log file. Failures go to stderr.
func (s *Session) Close() {
	syncErr := s.Logger.Sync()
	if s.file == nil {
		return
	}
	if syncErr != nil {
		fmt.Fprintf(s.errOut, "error sync log: %v\n", syncErr)
	}
	if err := s.file.Close(); err != nil {
		fmt.Fprintf(s.errOut, "error close logfile: %v\n", err)
	}
}
