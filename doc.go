/*
Package moorgen turns Moore finite state machine models into
synthesizable VHDL: an entity/architecture description of the machine
and a companion testbench that instantiates it.

A machine is a set of single-bit input and output signals, states
carrying per-state output values, and transitions guarded by boolean
conditions over the inputs. Models come from the pkg/fsm builders or
from a YAML/JSON definition file.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/moorgen/moorgen"
	)

	func main() {
		machine, err := moorgen.Load("fsm.yaml")
		if err != nil {
			log.Fatal(err)
		}

		gen := moorgen.New()
		vhdl, err := gen.Generate(machine)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(vhdl)
	}

Generation is deterministic: output depends only on the model's content
(names are iterated lexicographically), never on declaration order, so
generated files are stable under re-export and diffable in review.
*/
package moorgen
