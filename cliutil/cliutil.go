// Package cliutil holds the small pieces of behavior shared by
// cmd/assembler and cmd/simulator: reading a program file into lines
// exactly the way both of the original Python scripts' read_program
// helper did.
package cliutil

import (
	"os"
	"strings"
)

// ReadLines reads path and splits it into lines, stripping any trailing
// carriage return left by a CRLF-terminated file. Blank lines are kept;
// callers that tolerate them (the simulator's hex-word loader) rely on
// that.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}
	return strings.Split(text, "\n"), nil
}
