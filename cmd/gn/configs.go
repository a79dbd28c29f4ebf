package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/geonode/encode"
	"github.com/signadot/geonode/ir"
	"github.com/signadot/geonode/libdiff"
	"github.com/signadot/geonode/parse"
)

type MainConfig struct {
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='force color output'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseDoc(d []byte) (*ir.Node, error) {
	if cfg.Y {
		return parse.ParseYAML(d)
	}
	return parse.Parse(d)
}

func (cfg *MainConfig) encodeDoc(y *ir.Node, w io.Writer) error {
	if cfg.Y {
		return encode.EncodeYAML(y, w)
	}
	opts := []encode.EncodeOption{}
	if cfg.colorOut(w) {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	return encode.Encode(y, w, opts...)
}

func (cfg *MainConfig) colorOut(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) printColors(w io.Writer) *libdiff.PrintColors {
	if cfg.colorOut(w) {
		return libdiff.NewPrintColors()
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Moves  bool   `cli:"name=moves desc='content-addressed array diffing'"`
	Filter string `cli:"name=filter desc='expr predicate over kind/path/from/to'"`
	Quiet  bool   `cli:"name=q desc='drop unchanged records'"`

	Diff *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}
