/*
File    : mql-go/cmd/mqldemo/repl.go
*/
package main

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/hollow-cube/mql-go/env"
	"github.com/hollow-cube/mql-go/errs"
	"github.com/hollow-cube/mql-go/interp"
)

// Color definitions for REPL output, matching the teacher's repl
// package: blue for chrome, yellow for results, red for errors, cyan
// for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = "mqldemo — interactive MQL evaluator"
	line   = "----------------------------------------------------------------"
	prompt = "mql >>> "
)

// Repl is an interactive line-at-a-time MQL evaluator bound to one
// demoEntity as "q" (math is always available as "math"/"m").
type Repl struct {
	it     *interp.Interpreter
	env    *env.Env
	entity *demoEntity
}

// NewRepl builds a Repl against a fresh demoEntity.
func NewRepl() *Repl {
	entity := &demoEntity{health: 50, maxHealth: 100}
	e := env.New().Bind("q", demoEntityRoot(entity))
	return &Repl{it: interp.New(), env: e, entity: entity}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Bound root: q (demoEntity) — try `q.health`, `q.heal(10)`, `math.sqrt(16)`")
	cyanColor.Fprintln(w, "Type '.exit' to quit, '.reset' to reset q's health")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the read-eval-print loop until the user exits or EOF.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.New(prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			io.WriteString(w, "Good bye!\n")
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good bye!\n")
			return nil
		}
		if line == ".reset" {
			r.entity.health = 50
			cyanColor.Fprintln(w, "q.health reset to 50")
			continue
		}
		rl.SaveHistory(line)
		r.evalLine(w, line)
	}
}

func (r *Repl) evalLine(w io.Writer, line string) {
	v, err := r.it.Evaluate(line, r.env)
	if err != nil {
		redColor.Fprintf(w, "[ERROR] %s\n", errs.Explain(err))
		return
	}
	yellowColor.Fprintf(w, "=> %s\n", v.String())
}
