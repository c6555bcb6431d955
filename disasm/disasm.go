// Package disasm renders a stream of DCPU-16 machine words back into
// assembly mnemonics, the inverse of package asm. It is adapted from the
// teacher's standalone word-reader-based disassembler: the addressing
// mode table is unchanged in shape, but operand formatting and the
// opcode name tables now come from package isa instead of a private copy,
// and decoding goes through isa.Decode instead of hand-rolled bit
// shifting.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpmunz/0x10c/isa"
)

// WordReader yields the program's words in address order, returning
// io.EOF once exhausted.
type WordReader interface {
	ReadWord() (uint16, error)
}

type sliceReader struct {
	words []uint16
	pos   int
}

// NewWordReader returns a WordReader over an in-memory slice of words,
// the shape a loaded program or a RAM dump naturally takes.
func NewWordReader(words []uint16) WordReader {
	return &sliceReader{words: words}
}

func (r *sliceReader) ReadWord() (uint16, error) {
	if r.pos >= len(r.words) {
		return 0, io.EOF
	}
	w := r.words[r.pos]
	r.pos++
	return w, nil
}

// Disassemble reads words from r until it is exhausted, writing one
// "address:\tmnemonic\toperands" line per instruction to w. Any word that
// doesn't decode to a known basic or non-basic opcode is emitted as a
// raw hex word instead of failing the whole stream, matching the
// teacher's tolerant behavior when disassembling data mixed with code.
func Disassemble(r WordReader, w io.Writer) error {
	var addr uint16
	for {
		start := addr
		v, err := r.ReadWord()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		addr++

		ins := isa.Decode(v)
		if !ins.HasB {
			if ins.Op == 0 {
				fmt.Fprintf(w, "0x%04x:\t%04x\n", start, v)
				continue
			}
			name, ok := isa.NonBasicNames[ins.Op]
			if !ok {
				fmt.Fprintf(w, "0x%04x:\t%04x\n", start, v)
				continue
			}
			a, next, err := addrMode(ins.A, addr, r)
			if err != nil && err != io.EOF {
				return err
			}
			addr = next
			fmt.Fprintf(w, "0x%04x:\t\t%s\t%s\n", start, name, a)
			continue
		}

		name, ok := isa.BasicNames[ins.Op]
		if !ok {
			fmt.Fprintf(w, "0x%04x:\t%04x\n", start, v)
			continue
		}
		a, next, err := addrMode(ins.A, addr, r)
		if err != nil && err != io.EOF {
			return err
		}
		addr = next
		b, next, err := addrMode(ins.B, addr, r)
		if err != nil && err != io.EOF {
			return err
		}
		addr = next
		fmt.Fprintf(w, "0x%04x:\t\t%s\t%s, %s\n", start, name, a, b)
	}
}

func addrMode(code uint16, addr uint16, r WordReader) (string, uint16, error) {
	switch {
	case code <= 0x07:
		return isa.GeneralRegisterNames[code], addr, nil

	case code <= 0x0f:
		return fmt.Sprintf("[%s]", isa.GeneralRegisterNames[code-0x08]), addr, nil

	case code <= 0x17:
		v, err := r.ReadWord()
		if err != nil {
			return "", addr, err
		}
		return fmt.Sprintf("[0x%x+%s]", v, isa.GeneralRegisterNames[code-0x10]), addr + 1, nil

	case code == isa.OperandNextWordIndirect:
		v, err := r.ReadWord()
		if err != nil {
			return "", addr, err
		}
		return fmt.Sprintf("[0x%x]", v), addr + 1, nil

	case code == isa.OperandNextWordLiteral:
		v, err := r.ReadWord()
		if err != nil {
			return "", addr, err
		}
		return fmt.Sprintf("0x%x", v), addr + 1, nil

	case code >= isa.OperandShortLiteralBase && code <= 0x3f:
		return fmt.Sprintf("0x%02x", code-isa.OperandShortLiteralBase), addr, nil

	default:
		if name, ok := isa.SpecialOperandNames[code]; ok {
			return name, addr, nil
		}
		return "?", addr, nil
	}
}

// String renders words as assembly text, a convenience wrapper around
// Disassemble for callers that want the result in memory rather than
// streamed to an io.Writer.
func String(words []uint16) (string, error) {
	var b strings.Builder
	if err := Disassemble(NewWordReader(words), &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
