// Command simulator loads a DCPU-16 machine-code file and runs it to
// completion (or to a detected infinite loop), then prints the
// resulting register file and memory dump in the same layout the
// original Python simulator's DCPU.__str__ used.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/jpmunz/0x10c/cliutil"
	"github.com/jpmunz/0x10c/cpu"
)

var registerNames = []string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

func main() {
	app := &cli.App{
		Name:      "simulator",
		Usage:     "run a DCPU-16 machine-code file",
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

	var program []interface{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		program = append(program, line)
	}

	vm := cpu.New()
	if err := vm.Load(program); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := c.App.Writer
	if err := vm.Run(); err != nil {
		if !errors.Is(err, cpu.ErrInfiniteLoopDetected) {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Fprintln(w, "*****Infinite loop detected, stopping execution*****")
	}

	printState(w, vm)
	return nil
}

// printState mirrors the original simulator's DCPU.__str__: PC/SP/O,
// then a "Register values" section, then a "Memory dump" section,
// each header underlined with dashes matching its own width.
func printState(w io.Writer, vm *cpu.CPU) {
	fmt.Fprintf(w, "PC: %#06x\n", vm.PC())
	fmt.Fprintf(w, "SP: %#06x\n", vm.SP())
	fmt.Fprintf(w, "O:  %#06x\n", vm.O())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Register values")
	fmt.Fprintln(w, "---------------")
	regs := vm.Registers()
	for i, name := range registerNames {
		fmt.Fprintf(w, "%s: %#06x\n", name, regs[i])
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Memory dump")
	fmt.Fprintln(w, "-----------")
	for _, row := range vm.Dump() {
		fmt.Fprintln(w, row)
	}
}
