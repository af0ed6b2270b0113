package main

// tzdiff

import (
	"context"
	"fmt"
	"os"
	_ "time/tzdata"
)

// Created: Sat Oct 10 14:02:37 2026

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse()

	if prog.listTZNames {
		prog.listTimezoneNames(os.Stdout)

		return
	}

	prog.locations = ps.Remainder()

	if err := prog.setup(); err != nil {
		fmt.Fprintln(os.Stderr, "tzdiff:", err)
		os.Exit(1)
	}

	if err := prog.run(context.Background(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "tzdiff:", err)
		os.Exit(1)
	}
}
