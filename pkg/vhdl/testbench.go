package vhdl

import (
	"fmt"
	"strings"

	"github.com/moorgen/moorgen/pkg/fsm"
)

// GenerateTestbench renders a simulation harness around the machine's
// entity: a component declaration mirroring the port list exactly, one
// internal signal per port, a free-running clock, and a stimulus process
// that lists every input as an inert placeholder. The harness depends
// only on the machine's name and signal set, never on its behavior.
func GenerateTestbench(m *fsm.Machine) (string, error) {
	if err := Check(m); err != nil {
		return "", err
	}

	inputs := m.Signals().Inputs()
	outputs := m.Signals().Outputs()

	var b strings.Builder
	b.WriteString("library IEEE;\n")
	b.WriteString("use IEEE.std_logic_1164.all;\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "entity testbed_%s is\n", m.Name)
	fmt.Fprintf(&b, "end entity testbed_%s;\n", m.Name)
	b.WriteString("\n")

	fmt.Fprintf(&b, "architecture behavioral of testbed_%s is\n", m.Name)
	b.WriteString("\n")
	fmt.Fprintf(&b, "    component %s is\n", m.Name)
	b.WriteString("        port (\n")
	for _, line := range portLines(m, "            ") {
		b.WriteString(line + "\n")
	}
	b.WriteString("        );\n")
	b.WriteString("    end component;\n")
	b.WriteString("\n")
	b.WriteString("    constant clk_period : time := 10 ns;\n")
	b.WriteString("\n")
	for _, line := range harnessSignalLines(m) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	b.WriteString("begin\n")
	b.WriteString("\n")

	fmt.Fprintf(&b, "    dut : %s\n", m.Name)
	b.WriteString("        port map (\n")
	names := append([]string{portClock, portClockEnable}, inputs...)
	names = append(names, outputs...)
	maps := make([]string, len(names))
	for i, name := range names {
		terminator := ","
		if i == len(names)-1 {
			terminator = ""
		}
		maps[i] = fmt.Sprintf("            %s => %s%s", name, name, terminator)
	}
	for _, line := range alignColumns(maps, " => ") {
		b.WriteString(line + "\n")
	}
	b.WriteString("        );\n")
	b.WriteString("\n")

	b.WriteString("    clk_process : process is\n")
	b.WriteString("    begin\n")
	fmt.Fprintf(&b, "        %s <= '0';\n", portClock)
	b.WriteString("        wait for clk_period / 2;\n")
	fmt.Fprintf(&b, "        %s <= '1';\n", portClock)
	b.WriteString("        wait for clk_period / 2;\n")
	b.WriteString("    end process clk_process;\n")
	b.WriteString("\n")

	b.WriteString("    stimulus : process is\n")
	b.WriteString("    begin\n")
	b.WriteString("        wait for clk_period * 2;\n")
	for _, name := range inputs {
		fmt.Fprintf(&b, "        -- %s <= '0';\n", name)
	}
	b.WriteString("        wait;\n")
	b.WriteString("    end process stimulus;\n")
	b.WriteString("\n")

	b.WriteString("end architecture behavioral;\n")
	return b.String(), nil
}

// harnessSignalLines declares one internal signal per port: clock low,
// clock-enable asserted, every data signal zero.
func harnessSignalLines(m *fsm.Machine) []string {
	lines := []string{
		fmt.Sprintf("    signal %s : std_logic := '0';", portClock),
		fmt.Sprintf("    signal %s : std_logic := '1';", portClockEnable),
	}
	for _, name := range m.Signals().Inputs() {
		lines = append(lines, fmt.Sprintf("    signal %s : std_logic := '0';", name))
	}
	for _, name := range m.Signals().Outputs() {
		lines = append(lines, fmt.Sprintf("    signal %s : std_logic := '0';", name))
	}
	return alignColumns(lines, " : ")
}
