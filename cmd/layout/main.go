package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/VorpalBlade/layout-of/dwarfres"
	"github.com/VorpalBlade/layout-of/render"
)

func main() {
	app := &cli.App{
		Name:  "layout",
		Usage: "inspect struct layouts recorded in a binary's debug info",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "elf",
				Usage:    "ELF binary with DWARF debug info",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable output coloring",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:            "offsets-of",
				Usage:           "list member byte offsets of a type",
				ArgsUsage:       "<type-or-symbol>",
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					return withCommands(c, func(cmds *commands) error {
						return cmds.offsetsOf(c.Args().Slice())
					})
				},
			},
			{
				Name:            "layout-of",
				Usage:           "print the memory layout of a type, with holes and padding",
				ArgsUsage:       "[-r] <type-or-symbol>",
				SkipFlagParsing: true,
				Action: func(c *cli.Context) error {
					return withCommands(c, func(cmds *commands) error {
						return cmds.layoutOf(c.Args().Slice())
					})
				},
			},
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "browse type layouts in a TUI",
				Action: func(c *cli.Context) error {
					res, cleanup, err := openResolver(c)
					if err != nil {
						return err
					}
					defer cleanup()
					return runInteractive(res, c.String("elf"))
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openResolver(c *cli.Context) (*dwarfres.Resolver, func(), error) {
	if c.Bool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, err
		}
		dwarfres.SetLogger(logger)
	}

	res, err := dwarfres.Open(c.String("elf"))
	if err != nil {
		return nil, nil, err
	}
	return res, func() { res.Close() }, nil
}

func withCommands(c *cli.Context, fn func(*commands) error) error {
	res, cleanup, err := openResolver(c)
	if err != nil {
		return err
	}
	defer cleanup()

	styles := render.Auto(os.Stdout)
	if c.Bool("no-color") {
		styles = render.Plain()
	}

	return fn(&commands{resolver: res, out: os.Stdout, styles: styles})
}
