package main

import (
	"fmt"

	"github.com/phonolab/go-textgrid/tier"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

// query evaluates the -e expression once per item. The environment
// exposes tier ("tier", "class", "index") and item fields ("start",
// "end", "text" for intervals; "number", "mark" for points).
func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.E == "" {
		return fmt.Errorf("%w: query requires -e expression", cli.ErrUsage)
	}
	prg, err := expr.Compile(cfg.E)
	if err != nil {
		return fmt.Errorf("%w: bad expression %q: %w", cli.ErrUsage, cfg.E, err)
	}
	for _, arg := range argsOrStdin(args) {
		tiers, err := loadTiers(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := queryTiers(cfg, cc, prg, tiers); err != nil {
			return err
		}
	}
	return nil
}

func queryTiers(cfg *QueryConfig, cc *cli.Context, prg *vm.Program, tiers []*tier.Tier) error {
	for _, t := range tiers {
		env := map[string]any{
			"tier":  t.Name,
			"class": t.Type.String(),
		}
		switch t.Type {
		case tier.IntervalType:
			for i, iv := range t.Intervals {
				env["index"] = i
				env["start"] = iv.Start
				env["end"] = iv.End
				env["text"] = iv.Text
				ok, err := matches(prg, env)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintf(cc.Out, "%s\t%v\t%v\t%q\n", t.Name, iv.Start, iv.End, iv.Text)
				}
			}
		case tier.TextType:
			for i, p := range t.Points {
				env["index"] = i
				env["number"] = p.Number
				env["mark"] = p.Mark
				ok, err := matches(prg, env)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintf(cc.Out, "%s\t%v\t%q\n", t.Name, p.Number, p.Mark)
				}
			}
		}
	}
	return nil
}

func matches(prg *vm.Program, env map[string]any) (bool, error) {
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("expression must yield a bool, got %T", res)
	}
	return b, nil
}
