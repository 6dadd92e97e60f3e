package vm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	e "github.com/rami3l/monty/errors"
	"github.com/sirupsen/logrus"
)

type VM struct {
	stack *Stack
	Out   io.Writer

	// The source file being run, closed on Release.
	src      io.Closer
	released bool
}

func NewVM(out io.Writer) *VM { return &VM{stack: NewStack(), Out: out} }

func (vm *VM) SetMaxNodes(n int) { vm.stack.SetLimit(n) }

// RunFile runs the Monty file at path. The file stays open until Release.
func (vm *VM) RunFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		logrus.Debugln(err)
		return e.CantOpenFile{Name: path}
	}
	vm.src = f

	err = vm.Interpret(f)
	if _, ok := err.(e.Fatal); err != nil && !ok {
		logrus.Debugln(err)
		return e.CantOpenFile{Name: path}
	}
	return err
}

// Interpret runs src line by line, stopping at the first error.
func (vm *VM) Interpret(src io.Reader) error {
	reader := bufio.NewReader(src)
	for line := uint(1); ; line++ {
		text, err := reader.ReadString('\n')
		if text != "" {
			if err := vm.Exec(line, text); err != nil {
				return err
			}
		}
		switch err {
		case nil:
		case io.EOF:
			return nil
		default:
			return err
		}
	}
}

// Exec runs a single source line.
func (vm *VM) Exec(line uint, text string) error {
	inst, ok := ScanInstruction(line, text)
	if !ok {
		return nil
	}
	op, ok := opTable[inst.Op]
	if !ok {
		return e.UnknownInstruction{Line: line, Token: inst.Op}
	}
	logrus.Debugln(inst)
	if err := op(vm, inst); err != nil {
		return err
	}
	logrus.Debugln(vm.stackTrace())
	return nil
}

// Release frees every stack node and closes the source file.
// Only the first call has any effect.
func (vm *VM) Release() {
	if vm.released {
		return
	}
	vm.released = true
	vm.stack.Free()

	if vm.src == nil {
		return
	}
	if err := vm.src.Close(); err != nil {
		logrus.Debugln("teardown:", err)
	}
	vm.src = nil
}

func (vm *VM) stackTrace() string {
	var res strings.Builder
	res.WriteString("          ")
	vm.stack.Each(func(n int) bool {
		fmt.Fprintf(&res, "[ %d ]", n)
		return true
	})
	return res.String()
}
