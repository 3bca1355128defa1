// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

// A Pass transforms a whole program.
type Pass interface {
	Run(p *Program)
}

// A FuncPass transforms one function at a time; RunFuncPass adapts it
// to a whole program.
type FuncPass interface {
	RunFunc(f *Function)
}

// RunFuncPass applies a function-level pass to every function of p.
func RunFuncPass(fp FuncPass, p *Program) {
	for _, f := range p.Funcs {
		fp.RunFunc(f)
	}
}

// DeadCodeElim is the dead-code elimination pass.
type DeadCodeElim struct{}

func (DeadCodeElim) Run(p *Program)      { RunFuncPass(DeadCodeElim{}, p) }
func (DeadCodeElim) RunFunc(f *Function) { f.ElimDeadCode() }

// CopyProp is the copy propagation pass.
type CopyProp struct{}

func (CopyProp) Run(p *Program)      { RunFuncPass(CopyProp{}, p) }
func (CopyProp) RunFunc(f *Function) { f.PropagateCopies() }
