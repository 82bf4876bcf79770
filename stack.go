// Copyright 2026 Mark Dickinson. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

// A Stack holds the active Context for one logical thread of execution,
// together with the contexts saved by nested activations. The zero Stack
// is ready to use and behaves as if DefaultContext were active.
//
// A Stack is deliberately not safe for concurrent use: it is the Go
// rendering of thread-local state, so each goroutine owns its own Stack
// and activations on one are invisible to the others.
type Stack struct {
	cur   Context
	saved []Context
}

// NewStack returns a stack with DefaultContext active.
func NewStack() *Stack { return &Stack{cur: DefaultContext} }

// Current returns the active, fully resolved context.
func (s *Stack) Current() Context {
	if !s.cur.resolved() {
		return DefaultContext.Combine(s.cur)
	}
	return s.cur
}

// Enter activates c layered over the current context and returns the
// function that restores the previous context. The returned function must
// be called exactly once, in LIFO order with respect to other Enter
// calls; the usual form is
//
//	defer s.Enter(ctx)()
//
// which restores the context on every exit path, panics included.
func (s *Stack) Enter(c Context) func() {
	s.saved = append(s.saved, s.cur)
	s.cur = s.cur.Combine(c)
	return s.exit
}

func (s *Stack) exit() {
	n := len(s.saved)
	if n == 0 {
		panic("bigfloat: context exit without matching enter")
	}
	s.cur = s.saved[n-1]
	s.saved = s.saved[:n-1]
}

// With runs body with c activated over the current context and restores
// the previous context afterward, whether body returns normally, returns
// an error, or panics.
func (s *Stack) With(c Context, body func() error) error {
	defer s.Enter(c)()
	return body()
}
