package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phonolab/go-textgrid/parse"
	"github.com/phonolab/go-textgrid/tier"

	"github.com/scott-cotton/cli"
)

func tgMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// loadTiers parses one argument, "-" meaning stdin.
func loadTiers(cfg *MainConfig, arg string, opts ...parse.ParseOption) ([]*tier.Tier, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tiers, err := parse.Parse(d, append(cfg.parseOpts(), opts...)...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return tiers, nil
}

// argsOrStdin substitutes "-" when no file arguments were given.
func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
