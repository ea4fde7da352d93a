/*
Package vhdl renders fsm machines as VHDL text: the entity/architecture
description (Generate), a companion simulation harness
(GenerateTestbench), and the boolean guard renderer they share
(RenderCondition).

Both generators are deterministic pure functions of the model: the same
machine always renders to byte-identical text, which is what makes the
output diffable and golden-testable. Identifier checking against VHDL
lexical rules and reserved words happens in Check before any text is
produced; no partial output is ever returned.
*/
package vhdl
