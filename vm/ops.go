package vm

import (
	"fmt"
	"strconv"
	"strings"

	e "github.com/rami3l/monty/errors"
	"github.com/rami3l/monty/utils"
	"github.com/sirupsen/logrus"
)

type OpFn = func(*VM, Instruction) error

var opTable map[string]OpFn

func init() {
	opTable = map[string]OpFn{
		"push":  (*VM).push,
		"pall":  (*VM).pall,
		"pint":  (*VM).pint,
		"pop":   (*VM).pop,
		"swap":  (*VM).swap,
		"add":   (*VM).add,
		"sub":   (*VM).sub,
		"mul":   (*VM).mul,
		"div":   (*VM).div,
		"mod":   (*VM).mod,
		"nop":   func(*VM, Instruction) error { return nil },
		"pchar": (*VM).pchar,
		"pstr":  (*VM).pstr,
		"rotl":  (*VM).rotl,
		"rotr":  (*VM).rotr,
		"stack": setMode(ModeStack),
		"queue": setMode(ModeQueue),
	}
}

/* Stack manipulation */

func (vm *VM) push(inst Instruction) error {
	if inst.Arg == nil {
		return e.BadPushOperand{Line: inst.Line}
	}
	n, err := strconv.Atoi(*inst.Arg)
	if err != nil {
		return e.BadPushOperand{Line: inst.Line}
	}
	if err := vm.stack.Push(n); err != nil {
		return e.MallocFailure{}
	}
	return nil
}

func (vm *VM) pop(inst Instruction) error {
	if _, ok := vm.stack.Pop(); !ok {
		return e.PopEmptyStack{Line: inst.Line}
	}
	return nil
}

func (vm *VM) swap(inst Instruction) error {
	if !vm.stack.Swap() {
		return e.StackTooShort{Line: inst.Line, Op: inst.Op}
	}
	return nil
}

func (vm *VM) rotl(Instruction) error { vm.stack.RotL(); return nil }
func (vm *VM) rotr(Instruction) error { vm.stack.RotR(); return nil }

func setMode(mode Mode) OpFn {
	return func(vm *VM, _ Instruction) error {
		vm.stack.Mode = mode
		logrus.Debugln("mode:", mode)
		return nil
	}
}

/* Arithmetic */

// binary pops the top value a and replaces the next one b with f(b, a).
// f reports false on division by zero.
func (vm *VM) binary(inst Instruction, f func(b, a int) (int, bool)) error {
	if vm.stack.Len() < 2 {
		return e.StackTooShort{Line: inst.Line, Op: inst.Op}
	}
	a, _ := vm.stack.Pop()
	b, _ := vm.stack.Top()
	res, ok := f(b, a)
	if !ok {
		return e.DivisionByZero{Line: inst.Line}
	}
	vm.stack.SetTop(res)
	return nil
}

func (vm *VM) add(inst Instruction) error {
	return vm.binary(inst, func(b, a int) (int, bool) { return b + a, true })
}

func (vm *VM) sub(inst Instruction) error {
	return vm.binary(inst, func(b, a int) (int, bool) { return b - a, true })
}

func (vm *VM) mul(inst Instruction) error {
	return vm.binary(inst, func(b, a int) (int, bool) { return b * a, true })
}

func (vm *VM) div(inst Instruction) error {
	return vm.binary(inst, func(b, a int) (int, bool) {
		if a == 0 {
			return 0, false
		}
		return b / a, true
	})
}

func (vm *VM) mod(inst Instruction) error {
	return vm.binary(inst, func(b, a int) (int, bool) {
		if a == 0 {
			return 0, false
		}
		return b % a, true
	})
}

/* Printing */

func (vm *VM) pall(Instruction) error {
	vm.stack.Each(func(n int) bool {
		fmt.Fprintln(vm.Out, n)
		return true
	})
	return nil
}

func (vm *VM) pint(inst Instruction) error {
	n, ok := vm.stack.Top()
	if !ok {
		return e.PintEmptyStack{Line: inst.Line}
	}
	fmt.Fprintln(vm.Out, n)
	return nil
}

func isASCII(n int) bool { return utils.InRange(n, 0, 127) }

func (vm *VM) pchar(inst Instruction) error {
	n, ok := vm.stack.Top()
	switch {
	case !ok:
		return e.PcharEmptyStack{Line: inst.Line}
	case !isASCII(n):
		return e.CharOutOfRange{Line: inst.Line}
	}
	fmt.Fprintf(vm.Out, "%c\n", rune(n))
	return nil
}

// pstr prints the string starting at the top, stopping at 0 or a non-ASCII value.
func (vm *VM) pstr(Instruction) error {
	var res strings.Builder
	vm.stack.Each(func(n int) bool {
		if n == 0 || !isASCII(n) {
			return false
		}
		res.WriteByte(byte(n))
		return true
	})
	fmt.Fprintln(vm.Out, res.String())
	return nil
}
