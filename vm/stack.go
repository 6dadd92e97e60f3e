package vm

import (
	"errors"

	"github.com/rami3l/monty/debug"
	e "github.com/rami3l/monty/errors"
)

// ErrNoMem is returned by Push once the node limit is reached.
var ErrNoMem = errors.New("stack node limit reached")

// Mode is named by the opcode that selects it.
//
//go:generate stringer -type=Mode -linecomment
type Mode int

const (
	ModeStack Mode = iota // stack
	ModeQueue             // queue
)

type Node struct {
	N          int
	prev, next *Node
}

// Stack is a doubly linked list of Nodes. Reads and pops always act on the
// head; the Mode only decides which end Push grows.
type Stack struct {
	head, tail *Node
	len_       int
	// Max number of live nodes, 0 means unlimited.
	limit int
	Mode  Mode
}

func NewStack() *Stack { return &Stack{} }

func (s *Stack) SetLimit(limit int) { s.limit = limit }
func (s *Stack) Len() int           { return s.len_ }

func (s *Stack) Push(n int) error {
	if s.limit > 0 && s.len_ >= s.limit {
		return ErrNoMem
	}
	node := &Node{N: n}
	switch {
	case s.head == nil:
		s.head, s.tail = node, node
	case s.Mode == ModeQueue:
		node.prev, s.tail.next = s.tail, node
		s.tail = node
	default:
		node.next, s.head.prev = s.head, node
		s.head = node
	}
	s.len_++
	s.check()
	return nil
}

func (s *Stack) Pop() (n int, ok bool) {
	node := s.head
	if node == nil {
		return
	}
	s.head, node.next = node.next, nil
	if s.head == nil {
		s.tail = nil
	} else {
		s.head.prev = nil
	}
	s.len_--
	s.check()
	return node.N, true
}

func (s *Stack) Top() (n int, ok bool) {
	if s.head == nil {
		return
	}
	return s.head.N, true
}

// SetTop overwrites the value of the head node, which must exist.
func (s *Stack) SetTop(n int) {
	if s.head == nil {
		panic(e.Unreachable)
	}
	s.head.N = n
}

func (s *Stack) Swap() bool {
	if s.len_ < 2 {
		return false
	}
	fst, snd := s.head, s.head.next
	fst.N, snd.N = snd.N, fst.N
	return true
}

// RotL moves the head to the tail.
func (s *Stack) RotL() {
	if s.len_ < 2 {
		return
	}
	node := s.head
	s.head = node.next
	s.head.prev = nil
	node.next, node.prev = nil, s.tail
	s.tail.next = node
	s.tail = node
	s.check()
}

// RotR moves the tail to the head.
func (s *Stack) RotR() {
	if s.len_ < 2 {
		return
	}
	node := s.tail
	s.tail = node.prev
	s.tail.next = nil
	node.prev, node.next = nil, s.head
	s.head.prev = node
	s.head = node
	s.check()
}

// Each calls f on every value from head to tail until f returns false.
func (s *Stack) Each(f func(n int) bool) {
	for node := s.head; node != nil; node = node.next {
		if !f(node.N) {
			return
		}
	}
}

// Free unlinks every node. It is safe to call more than once.
func (s *Stack) Free() {
	for node := s.head; node != nil; {
		next := node.next
		node.prev, node.next = nil, nil
		node = next
	}
	s.head, s.tail, s.len_ = nil, nil, 0
}

func (s *Stack) check() {
	if !debug.DEBUG {
		return
	}
	count := 0
	var last *Node
	for node := s.head; node != nil; node = node.next {
		debug.Assertf(node.prev == last, "broken back link at node %d", count)
		last = node
		count++
	}
	debug.AssertEq(s.len_, count)
	debug.AssertEq(s.tail, last)
}
