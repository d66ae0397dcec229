package main

import (
	"fmt"
	"io"
	"os"

	"github.com/phonolab/go-textgrid/encode"
	"github.com/phonolab/go-textgrid/format"
	"github.com/phonolab/go-textgrid/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	M       bool `cli:"name=m aliases=minimal desc='parse the minimal dialect'"`
	NoCheck bool `cli:"name=nocheck desc='skip consistency checking'"`
	Color   bool `cli:"name=color desc='colorize table output'"`

	Dialect *format.Dialect

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) dialectFunc(dp **format.Dialect) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		d, err := format.ParseDialect(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*dp = &d
		return d, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	d := format.FullDialect
	if cfg.M {
		d = format.MinimalDialect
	}
	if cfg.Dialect != nil {
		d = *cfg.Dialect
	}
	res := []parse.ParseOption{
		parse.ParseDialect(d),
	}
	if cfg.NoCheck {
		res = append(res, parse.CheckConsistency(false))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	J bool `cli:"name=j aliases=json desc='dump as json'"`
	Y bool `cli:"name=y aliases=yaml desc='dump as yaml'"`

	Dump *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Q bool `cli:"name=q desc='report by exit status only'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig

	E string `cli:"name=e desc='filter expression over items'"`

	Query *cli.Command
}
