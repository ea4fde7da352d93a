package vhdl

import (
	"fmt"
	"strings"

	"github.com/moorgen/moorgen/pkg/fsm"
)

// Fixed names surfaced in generated text.
const (
	portClock       = "clk"
	portClockEnable = "clk_enable"
)

// Check validates a machine for generation: the model's structural
// invariants first, then the VHDL identifier rules for every name the
// generators splice into the output.
func Check(m *fsm.Machine) error {
	if err := fsm.Validate(m); err != nil {
		return err
	}
	return checkIdentifiers(m)
}

// Generate renders the machine as a single self-contained VHDL unit:
// entity declaration plus a behavioral architecture with a clocked
// state register and a combinational next-state process. Generation is
// a pure read of the model; it fails only when Check fails, and calling
// it twice on an unmodified machine yields byte-identical text.
func Generate(m *fsm.Machine) (string, error) {
	if err := Check(m); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("library IEEE;\n")
	b.WriteString("use IEEE.std_logic_1164.all;\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "entity %s is\n", m.Name)
	b.WriteString("    port (\n")
	for _, line := range portLines(m, "        ") {
		b.WriteString(line + "\n")
	}
	b.WriteString("    );\n")
	fmt.Fprintf(&b, "end entity %s;\n", m.Name)
	b.WriteString("\n")

	fmt.Fprintf(&b, "architecture behavioral of %s is\n", m.Name)
	b.WriteString("\n")
	fmt.Fprintf(&b, "    type state_type is (%s);\n", strings.Join(m.StateNames(), ", "))
	b.WriteString("\n")
	for _, line := range stateSignalLines(m) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString("begin\n")
	b.WriteString("\n")

	writeStateRegister(&b)
	b.WriteString("\n")
	writeNextStateLogic(&b, m)
	b.WriteString("\n")

	fmt.Fprintf(&b, "end architecture behavioral;\n")
	return b.String(), nil
}

// portLines builds the entity's port declarations: the two control
// ports first, then inputs and outputs in lexicographic order, with the
// colons column-aligned. The same list backs the testbench's component
// declaration, which keeps the two port lists identical by construction.
func portLines(m *fsm.Machine, indent string) []string {
	type port struct {
		name string
		dir  string
	}
	ports := []port{
		{portClock, "in"},
		{portClockEnable, "in"},
	}
	for _, name := range m.Signals().Inputs() {
		ports = append(ports, port{name, "in"})
	}
	for _, name := range m.Signals().Outputs() {
		ports = append(ports, port{name, "out"})
	}

	lines := make([]string, len(ports))
	for i, p := range ports {
		terminator := ";"
		if i == len(ports)-1 {
			terminator = ""
		}
		lines[i] = fmt.Sprintf("%s%s : %s std_logic%s", indent, p.name, p.dir, terminator)
	}
	return alignColumns(lines, " : ")
}

// stateSignalLines declares the current/next state registers. The
// current-state register initializes to the default state when one is
// set; otherwise no initializer is emitted.
func stateSignalLines(m *fsm.Machine) []string {
	current := "    signal current_state : state_type;"
	if def, ok := m.DefaultState(); ok {
		current = fmt.Sprintf("    signal current_state : state_type := %s;", def.Name)
	}
	lines := []string{
		current,
		"    signal next_state : state_type;",
	}
	return alignColumns(lines, " : ")
}

// writeStateRegister emits the sole clocked process: current state
// advances to next state on a rising edge while clk_enable is asserted.
// There is no asynchronous reset path.
func writeStateRegister(b *strings.Builder) {
	fmt.Fprintf(b, "    state_register : process (%s) is\n", portClock)
	b.WriteString("    begin\n")
	fmt.Fprintf(b, "        if rising_edge(%s) then\n", portClock)
	fmt.Fprintf(b, "            if %s = '1' then\n", portClockEnable)
	b.WriteString("                current_state <= next_state;\n")
	b.WriteString("            end if;\n")
	b.WriteString("        end if;\n")
	b.WriteString("    end process state_register;\n")
}

// writeNextStateLogic emits the combinational process: a case over the
// current state where each arm drives the state's listed outputs and
// selects the next state through an if/elsif chain in evaluation order.
func writeNextStateLogic(b *strings.Builder, m *fsm.Machine) {
	sensitivity := append([]string{"current_state"}, m.Signals().Inputs()...)
	fmt.Fprintf(b, "    next_state_logic : process (%s) is\n", strings.Join(sensitivity, ", "))
	b.WriteString("    begin\n")
	b.WriteString("        case current_state is\n")

	for _, state := range m.States() {
		fmt.Fprintf(b, "            when %s =>\n", state.Name)
		for _, name := range state.OutputNames() {
			fmt.Fprintf(b, "                %s <= '%s';\n", name, state.Outputs[name])
		}
		writeTransitionChain(b, m.TransitionsFrom(state.Name))
	}

	b.WriteString("        end case;\n")
	b.WriteString("    end process next_state_logic;\n")
}

// writeTransitionChain emits the if/elsif chain for one state's arm.
// Transitions arrive in evaluation order with the else branch last. A
// state with only an else branch gets a bare assignment; a state with no
// transitions gets nothing (next_state keeps its prior value).
func writeTransitionChain(b *strings.Builder, transitions []fsm.Transition) {
	if len(transitions) == 0 {
		return
	}
	if len(transitions) == 1 && transitions[0].Unconditional() {
		fmt.Fprintf(b, "                next_state <= %s;\n", transitions[0].Destination)
		return
	}

	for i, t := range transitions {
		switch {
		case i == 0:
			fmt.Fprintf(b, "                if (%s) then\n", RenderCondition(t.Condition))
		case t.Unconditional():
			b.WriteString("                else\n")
		default:
			fmt.Fprintf(b, "                elsif (%s) then\n", RenderCondition(t.Condition))
		}
		fmt.Fprintf(b, "                    next_state <= %s;\n", t.Destination)
	}
	b.WriteString("                end if;\n")
}
