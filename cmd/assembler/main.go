// Command assembler translates a DCPU-16 assembly source file into
// machine words, printing one lowercase hex word per line to stdout.
package main

import (
	"fmt"
	"os"

	cli "github.com/urfave/cli/v2"

	"github.com/jpmunz/0x10c/asm"
	"github.com/jpmunz/0x10c/cliutil"
)

func main() {
	app := &cli.App{
		Name:      "assembler",
		Usage:     "assemble DCPU-16 source into machine words",
		ArgsUsage: "program",
		Version:   "DCPU v1.1",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("a program file is required", 1)
	}

	lines, err := cliutil.ReadLines(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not read %s: %v", path, err), 1)
	}

	words, err := asm.Assemble(lines)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, w := range words {
		fmt.Fprintf(c.App.Writer, "0x%x\n", w)
	}
	return nil
}
