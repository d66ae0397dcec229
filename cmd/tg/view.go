package main

import (
	"github.com/phonolab/go-textgrid/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		tiers, err := loadTiers(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := encode.Table(cc.Out, tiers, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
