package moorgen_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/moorgen/moorgen"
	"github.com/moorgen/moorgen/pkg/fsm"
)

// ExampleGenerator demonstrates building a machine in memory and turning
// it into VHDL. This is useful for embedding the generator in other
// tools, without a definition file on disk.
func ExampleGenerator() {
	// 1. Describe the machine through the model's mutators; every
	// structural rule is enforced as you go.
	m := fsm.New("blinker")
	if err := m.AddOutput("led"); err != nil {
		log.Fatal(err)
	}
	if err := m.AddState(fsm.State{
		Name:    "off_state",
		Outputs: map[string]fsm.Bit{"led": fsm.Low},
		Default: true,
	}); err != nil {
		log.Fatal(err)
	}
	if err := m.AddState(fsm.State{
		Name:    "on_state",
		Outputs: map[string]fsm.Bit{"led": fsm.High},
	}); err != nil {
		log.Fatal(err)
	}
	if err := m.AddTransition(fsm.Transition{Source: "off_state", Destination: "on_state"}); err != nil {
		log.Fatal(err)
	}
	if err := m.AddTransition(fsm.Transition{Source: "on_state", Destination: "off_state"}); err != nil {
		log.Fatal(err)
	}

	// 2. Generate. The default configuration keeps lint findings
	// advisory; pass WithStrictLint to reject them instead.
	gen := moorgen.New()
	text, err := gen.Generate(m)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.SplitN(text, "\n", 5)[3])
	// Output: entity blinker is
}
