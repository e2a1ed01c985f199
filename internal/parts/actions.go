package parts

import (
	"context"

	"github.com/djachenko/justin-utils/cli"
)

var (
	rootParameter  = cli.Parameter{Name: "root", NArgs: cli.Optional, Default: ".", Help: "pattern of the folders holding the parts"}
	widthParameter = cli.Parameter{Flags: []string{"-w", "--width"}, Kind: cli.Int, Help: "minimum number of index digits"}
)

// rootAction runs perRoot on every folder matched by the root argument.
type rootAction struct {
	tool    *Tool
	params  []cli.Parameter
	perRoot func(root string, args *cli.Args) error
}

func (a *rootAction) Parameters() []cli.Parameter {
	return append([]cli.Parameter{rootParameter}, a.params...)
}

func (a *rootAction) Perform(ctx context.Context, args *cli.Args) error {
	pattern := args.String("root")
	roots, err := a.tool.Roots(pattern)
	if err != nil {
		return err
	}
	matched := 0
	for root := range roots.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		matched++
		if err := a.perRoot(root, args); err != nil {
			return err
		}
	}
	if matched == 0 {
		a.tool.logger().Warn("no folders matched", "pattern", pattern)
	}
	return nil
}

// NewApp returns the parts command set bound to tool.
func NewApp(tool *Tool) (*cli.App, error) {
	makeAction := &rootAction{
		tool:   tool,
		params: []cli.Parameter{{Name: "count", Kind: cli.Int, Help: "number of parts"}},
		perRoot: func(root string, args *cli.Args) error {
			_, err := tool.Make(root, args.Int("count"))
			return err
		},
	}
	renumberAction := &rootAction{
		tool:   tool,
		params: []cli.Parameter{widthParameter},
		perRoot: func(root string, args *cli.Args) error {
			return tool.Renumber(root, args.Int("width"))
		},
	}
	offsetAction := &rootAction{
		tool:   tool,
		params: []cli.Parameter{{Name: "offset", Kind: cli.Int, Help: "amount to add to every index"}, widthParameter},
		perRoot: func(root string, args *cli.Args) error {
			return tool.Offset(root, args.Int("offset"), args.Int("width"))
		},
	}

	return cli.NewApp("parts",
		cli.MustCommand("make", makeAction),
		cli.MustCommand("renumber", renumberAction),
		cli.MustCommand("offset", offsetAction),
	)
}
