package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/geonode/ir"
	"github.com/signadot/geonode/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	from, err := diffArg(cfg, args[0])
	if err != nil {
		return err
	}
	to, err := diffArg(cfg, args[1])
	if err != nil {
		return err
	}
	opts := []libdiff.Option{}
	if cfg.Moves {
		opts = append(opts, libdiff.ArrayMoves())
	}
	changes := libdiff.Diff(from, to, opts...)
	if cfg.Quiet {
		kept := changes[:0]
		for i := range changes {
			if changes[i].Kind != libdiff.Unchanged {
				kept = append(kept, changes[i])
			}
		}
		changes = kept
	}
	if cfg.Filter != "" {
		changes, err = libdiff.Filter(changes, cfg.Filter)
		if err != nil {
			return err
		}
	}
	if err := libdiff.Fprint(cc.Out, changes, cfg.printColors(cc.Out)); err != nil {
		return err
	}
	for i := range changes {
		if changes[i].Kind != libdiff.Unchanged {
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}

func diffArg(cfg *DiffConfig, file string) (*ir.Node, error) {
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	y, err := cfg.parseDoc(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return y, nil
}
