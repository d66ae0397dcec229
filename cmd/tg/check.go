package main

import (
	"errors"
	"fmt"

	"github.com/phonolab/go-textgrid/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := false
	for _, arg := range argsOrStdin(args) {
		// checking is the point here, -nocheck notwithstanding
		_, err := loadTiers(cfg.MainConfig, arg, parse.CheckConsistency(true))
		if err == nil {
			if !cfg.Q {
				fmt.Fprintf(cc.Out, "%s: ok\n", arg)
			}
			continue
		}
		failed = true
		if cfg.Q {
			continue
		}
		ce := &parse.ConsistencyError{}
		if errors.As(err, &ce) {
			fmt.Fprintf(cc.Out, "%s: %s\n", arg, ce.Msg)
			continue
		}
		fmt.Fprintf(cc.Out, "%s: %v\n", arg, err)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
