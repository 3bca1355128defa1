// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// irdump: a tool for displaying the IR form of programs.
//
// Each argument names a source file.  The file is parsed, built and
// optionally converted to SSA form and optimized, then printed to
// standard output.  Files are processed concurrently; programs from
// distinct files share nothing.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	"golang.org/x/irtools/ir"
	"golang.org/x/irtools/irbuild"
)

var (
	ssaFlag = flag.Bool("ssa", false, "convert each function to SSA form")
	optFlag = flag.Bool("opt", false, "run dead-code elimination and copy propagation (implies -ssa)")
)

const usage = `irdump: display the IR form of programs.
Usage: irdump [-ssa] [-opt] file.ir...
`

func main() {
	log.SetPrefix("irdump: ")
	log.SetFlags(0)
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	out := make([]bytes.Buffer, flag.NArg())
	var g errgroup.Group
	for i, name := range flag.Args() {
		i, name := i, name
		g.Go(func() error {
			return dump(name, &out[i])
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	for i := range out {
		os.Stdout.Write(out[i].Bytes())
	}
}

func dump(name string, buf *bytes.Buffer) error {
	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}
	prog, err := irbuild.BuildSource(src)
	if err != nil {
		return xerrors.Errorf("%s: %w", name, err)
	}
	if *ssaFlag || *optFlag {
		for _, f := range prog.Funcs {
			f.ToSSA()
		}
	}
	if *optFlag {
		ir.DeadCodeElim{}.Run(prog)
		ir.CopyProp{}.Run(prog)
	}
	ir.WriteProgram(buf, prog)
	return nil
}
