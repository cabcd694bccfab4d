/*
File    : mql-go/cmd/mqldemo/main.go
*/

// Command mqldemo is a small embedding example for the mql-go module:
// it shows both evaluation paths (interp for an interactive REPL,
// compiler for a one-shot batch run over a scriptset directory) bound
// to the same demoEntity host type.
//
// Usage:
//
//	mqldemo                 start the interactive REPL
//	mqldemo <scripts-dir>   compile and run every *.mql file in the
//	                        directory against a fresh demoEntity
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/hollow-cube/mql-go/compiler"
	"github.com/hollow-cube/mql-go/hostapi"
	"github.com/hollow-cube/mql-go/scriptset"
)

func main() {
	if len(os.Args) > 1 {
		if err := runScriptSet(os.Args[1]); err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := NewRepl().Start(os.Stdout); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// runScriptSet compiles and runs every script in dir against a fresh
// demoEntity bound to "q", reporting each result or error.
func runScriptSet(dir string) error {
	set, err := scriptset.Load(dir)
	if err != nil {
		return err
	}

	sig := hostapi.NewSignature(hostapi.NewParam(demoEntityClassInfo(), "q", "entity"))
	c, err := compiler.NewCompiler(sig)
	if err != nil {
		return fmt.Errorf("building compiler: %w", err)
	}

	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	for _, name := range set.Names() {
		sc, _ := set.Get(name)
		entity := &demoEntity{health: 50, maxHealth: 100}

		compiled, err := c.Compile(sc.Source)
		if err != nil {
			red.Printf("%s: compile error: %v\n", name, err)
			continue
		}
		result, err := compiled.Invoke(entity)
		if err != nil {
			red.Printf("%s: runtime error: %v\n", name, err)
			continue
		}
		yellow.Printf("%s => %g\n", name, result)
	}
	return nil
}
