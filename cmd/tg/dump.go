package main

import (
	"fmt"

	"github.com/phonolab/go-textgrid/encode"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	for _, arg := range argsOrStdin(args) {
		tiers, err := loadTiers(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if cfg.Y {
			if err := encode.YAML(cc.Out, tiers); err != nil {
				return err
			}
			continue
		}
		if err := encode.JSON(cc.Out, tiers); err != nil {
			return err
		}
	}
	return nil
}
