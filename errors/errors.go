package errors

import "fmt"

// Fatal is any condition that ends a Monty run.
// The set of implementations is closed: only this package can add one.
type Fatal interface {
	error
	Family() Family
	isFatal()
}

//go:generate stringer -type=Family -linecomment
type Family int

const (
	FamilyUsage   Family = iota // usage
	FamilyRuntime               // runtime
	FamilyChar                  // char
)

/* Usage and parse errors */

type BadInvocation struct{}

func (BadInvocation) isFatal()       {}
func (BadInvocation) Family() Family { return FamilyUsage }
func (BadInvocation) Error() string  { return "USAGE: monty file" }

type CantOpenFile struct{ Name string }

func (CantOpenFile) isFatal()        {}
func (CantOpenFile) Family() Family  { return FamilyUsage }
func (e CantOpenFile) Error() string { return fmt.Sprintf("Error: Can't open file %s", e.Name) }

type UnknownInstruction struct {
	Line  uint
	Token string
}

func (UnknownInstruction) isFatal()       {}
func (UnknownInstruction) Family() Family { return FamilyUsage }
func (e UnknownInstruction) Error() string {
	return fmt.Sprintf("L%d: unknown instruction %s", e.Line, e.Token)
}

type MallocFailure struct{}

func (MallocFailure) isFatal()       {}
func (MallocFailure) Family() Family { return FamilyUsage }
func (MallocFailure) Error() string  { return "Error: malloc failed" }

type BadPushOperand struct{ Line uint }

func (BadPushOperand) isFatal()        {}
func (BadPushOperand) Family() Family  { return FamilyUsage }
func (e BadPushOperand) Error() string { return fmt.Sprintf("L%d: usage: push integer", e.Line) }

/* Runtime errors */

type PintEmptyStack struct{ Line uint }

func (PintEmptyStack) isFatal()        {}
func (PintEmptyStack) Family() Family  { return FamilyRuntime }
func (e PintEmptyStack) Error() string { return fmt.Sprintf("L%d: can't pint, stack empty", e.Line) }

type PopEmptyStack struct{ Line uint }

func (PopEmptyStack) isFatal()        {}
func (PopEmptyStack) Family() Family  { return FamilyRuntime }
func (e PopEmptyStack) Error() string { return fmt.Sprintf("L%d: can't pop an empty stack", e.Line) }

// StackTooShort is raised when Op needs more operands than the stack holds.
type StackTooShort struct {
	Line uint
	Op   string
}

func (StackTooShort) isFatal()       {}
func (StackTooShort) Family() Family { return FamilyRuntime }
func (e StackTooShort) Error() string {
	return fmt.Sprintf("L%d: can't %s, stack too short", e.Line, e.Op)
}

type DivisionByZero struct{ Line uint }

func (DivisionByZero) isFatal()        {}
func (DivisionByZero) Family() Family  { return FamilyRuntime }
func (e DivisionByZero) Error() string { return fmt.Sprintf("L%d: division by zero", e.Line) }

/* Character errors */

type CharOutOfRange struct{ Line uint }

func (CharOutOfRange) isFatal()       {}
func (CharOutOfRange) Family() Family { return FamilyChar }
func (e CharOutOfRange) Error() string {
	return fmt.Sprintf("L%d: can't pchar, value out of range", e.Line)
}

type PcharEmptyStack struct{ Line uint }

func (PcharEmptyStack) isFatal()        {}
func (PcharEmptyStack) Family() Family  { return FamilyChar }
func (e PcharEmptyStack) Error() string { return fmt.Sprintf("L%d: can't pchar, stack empty", e.Line) }

const Unreachable = "internal error: entered unreachable code"
