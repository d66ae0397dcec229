package main

import (
	"fmt"
	"strings"

	"github.com/phonolab/go-textgrid/encode"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := loadTiers(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := loadTiers(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(encode.MustString(from), encode.MustString(to), true)
	same := true
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			same = false
			break
		}
	}
	if same {
		return nil
	}
	if len(cfg.encOpts(cc.Out)) > 0 {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
		return cli.ExitCodeErr(1)
	}
	for i := range diffs {
		d := &diffs[i]
		var prefix string
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			fmt.Fprintf(cc.Out, "%s%s\n", prefix, line)
		}
	}
	return cli.ExitCodeErr(1)
}
