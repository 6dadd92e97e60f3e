package vm_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	e "github.com/rami3l/monty/errors"
	"github.com/rami3l/monty/vm"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { logrus.SetLevel(logrus.DebugLevel) }

type TestCase struct {
	src, output string
	// Expected error, nil means a clean run.
	err error
}

func assertRun(t *testing.T, cases ...TestCase) {
	t.Helper()
	for _, c := range cases {
		var out bytes.Buffer
		vm_ := vm.NewVM(&out)
		err := vm_.Interpret(strings.NewReader(c.src))
		vm_.Release()
		assert.Equal(t, c.err, err, "%s", c.src)
		assert.Equal(t, c.output, out.String(), "%s", c.src)
	}
}

func TestPushPall(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{
			heredoc.Doc(`
                push 1
                push 2
                push 3
                pall
            `),
			"3\n2\n1\n", nil,
		},
		{"push -7\npush +8\npall\n", "8\n-7\n", nil},
		{"push 1\n\n   \n# comment\npall", "1\n", nil},
		{"pall\n", "", nil},
		{"push 1 2 3\npall\n", "1\n", nil},
	}...)
}

func TestPushOperand(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{"push\n", "", e.BadPushOperand{Line: 1}},
		{"push 1\npush one\n", "", e.BadPushOperand{Line: 2}},
		{"push 1.5\n", "", e.BadPushOperand{Line: 1}},
		{"push 9999999999999999999999\n", "", e.BadPushOperand{Line: 1}},
		{"push 0x10\n", "", e.BadPushOperand{Line: 1}},
	}...)
}

func TestPintPop(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{"push 1\npush 2\npint\npop\npint\n", "2\n1\n", nil},
		{"pint\n", "", e.PintEmptyStack{Line: 1}},
		{"push 1\npop\npop\n", "", e.PopEmptyStack{Line: 3}},
	}...)
}

func TestArith(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{"push 1\npush 2\nadd\npall\n", "3\n", nil},
		{"push 1\npush 2\nsub\npall\n", "-1\n", nil},
		{"push 3\npush 4\nmul\npall\n", "12\n", nil},
		{"push 7\npush 2\ndiv\npall\n", "3\n", nil},
		{"push -7\npush 2\ndiv\npall\n", "-3\n", nil},
		{"push 7\npush 3\nmod\npall\n", "1\n", nil},
		{"push 7\npush 0\ndiv\n", "", e.DivisionByZero{Line: 3}},
		{"push 7\npush 0\nmod\n", "", e.DivisionByZero{Line: 3}},
		{"push 1\nswap\n", "", e.StackTooShort{Line: 2, Op: "swap"}},
		{"push 1\nnop\nadd\n", "", e.StackTooShort{Line: 3, Op: "add"}},
		{"sub\n", "", e.StackTooShort{Line: 1, Op: "sub"}},
		{"mul\n", "", e.StackTooShort{Line: 1, Op: "mul"}},
		{"div\n", "", e.StackTooShort{Line: 1, Op: "div"}},
		{"mod\n", "", e.StackTooShort{Line: 1, Op: "mod"}},
		{"push 1\npush 2\nswap\npall\n", "1\n2\n", nil},
	}...)
}

func TestChars(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{"push 72\npchar\n", "H\n", nil},
		{
			heredoc.Doc(`
                push 1
                push 0
                push 111
                push 108
                push 108
                push 101
                push 72
                pstr
            `),
			"Hello\n", nil,
		},
		{"push 200\npush 72\npstr\n", "H\n", nil},
		{"pstr\n", "\n", nil},
		{"pchar\n", "", e.PcharEmptyStack{Line: 1}},
		{"push 128\npchar\n", "", e.CharOutOfRange{Line: 2}},
		{"push -1\npchar\n", "", e.CharOutOfRange{Line: 2}},
	}...)
}

func TestRotModes(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{"push 1\npush 2\npush 3\nrotl\npall\n", "2\n1\n3\n", nil},
		{"push 1\npush 2\npush 3\nrotr\npall\n", "1\n3\n2\n", nil},
		{"rotl\nrotr\npall\n", "", nil},
		{"queue\npush 1\npush 2\npush 3\npall\n", "1\n2\n3\n", nil},
		{"queue\npush 1\npush 2\nstack\npush 3\npall\n", "3\n1\n2\n", nil},
		{"queue\npush 1\npush 2\nadd\npall\n", "3\n", nil},
	}...)
}

func TestUnknownInstruction(t *testing.T) {
	t.Parallel()
	assertRun(t, []TestCase{
		{"push 1\npall\npunk\n", "1\n", e.UnknownInstruction{Line: 3, Token: "punk"}},
		{"Push 1\n", "", e.UnknownInstruction{Line: 1, Token: "Push"}},
	}...)
}

func TestMaxNodes(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	vm_ := vm.NewVM(&out)
	vm_.SetMaxNodes(2)
	err := vm_.Interpret(strings.NewReader("push 1\npush 2\npush 3\n"))
	assert.Equal(t, e.MallocFailure{}, err)
}

func TestRunFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "prog.m")
	require.NoError(t, os.WriteFile(path, []byte("push 2\npush 5\nmul\npint\n"), 0o644))

	var out bytes.Buffer
	vm_ := vm.NewVM(&out)
	assert.NoError(t, vm_.RunFile(path))
	assert.Equal(t, "10\n", out.String())
	vm_.Release()
	vm_.Release()
}

func TestRunFileMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nope.m")
	vm_ := vm.NewVM(&bytes.Buffer{})
	assert.Equal(t, e.CantOpenFile{Name: path}, vm_.RunFile(path))
	vm_.Release()
}

func TestRunFileDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	vm_ := vm.NewVM(&bytes.Buffer{})
	// Opening a directory succeeds but reading it fails.
	assert.Equal(t, e.CantOpenFile{Name: dir}, vm_.RunFile(dir))
	vm_.Release()
}
