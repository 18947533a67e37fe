// Package cpu implements the processor and assembler for the VC8000 system.
//
// The VC8000 is a decimal accumulator machine with 1,000,000 words of
// memory and ten registers (0-9). Every word holds a signed value of at
// most nine decimal digits. An instruction word is a two digit opcode,
// a one digit register, and either a six digit address or a second one
// digit register followed by five zeros.
//
// The assembler is a two pass assembler. Pass I assigns locations to
// labels, and Pass II translates each source line into a Statement,
// collecting the diagnostics for that line alongside it.
package cpu
