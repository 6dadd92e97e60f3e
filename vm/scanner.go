package vm

import (
	"fmt"
	"strings"

	"github.com/josharian/intern"
	"github.com/rami3l/monty/utils"
)

// Instruction is one scanned source line.
type Instruction struct {
	Line uint
	Op   string
	// Operand, if any. Extra tokens after it are ignored.
	Arg *string
}

func (inst Instruction) String() string {
	res := fmt.Sprintf("%04d %-8s", inst.Line, inst.Op)
	if inst.Arg != nil {
		res += " " + *inst.Arg
	}
	return res
}

// ScanInstruction splits a source line into an Instruction.
// ok is false for blank lines and comments.
func ScanInstruction(line uint, src string) (inst Instruction, ok bool) {
	fields := strings.Fields(src)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return
	}
	// The same few mnemonics repeat on every line.
	inst = Instruction{Line: line, Op: intern.String(fields[0])}
	if len(fields) > 1 {
		inst.Arg = utils.Ref(fields[1])
	}
	return inst, true
}
