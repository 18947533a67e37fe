// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
	"log"

	vcio "github.com/ezrec/vc8000/io"
)

// Channel is the word I/O channel used by READ and WRITE.
type Channel vcio.Channel

// Cpu is the simulation context for the VC8000 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ip       int                   // Current instruction pointer.
	Register [REGISTER_COUNT]int64 // Register bank.
	Memory   []int64               // Word addressed memory.

	Ticks int // Executed instruction counter.

	channel Channel // READ and WRITE channel.
}

// NewCpu creates a new CPU with a specifically sized memory.
func NewCpu(size int) (cpu *Cpu) {
	cpu = &Cpu{
		Ip:     PROGRAM_START,
		Memory: make([]int64, size),
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %06d\n", "ip", cpu.Ip)
	if cpu.Ip >= 0 && cpu.Ip < len(cpu.Memory) {
		text += fmt.Sprintf("% 5s: %v\n", "code", Code(cpu.Memory[cpu.Ip]))
	}
	for n, val := range cpu.Register {
		text += fmt.Sprintf("% 5s: %d\n", fmt.Sprintf("r%d", n), val)
	}

	return
}

// Reset the CPU state.
// - Clears the registers and memory.
// - Zeros statistics counters.
// - Rewinds the IO channel.
// - Sets the IP to PROGRAM_START.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	clear(cpu.Memory)
	cpu.Ticks = 0
	cpu.Ip = PROGRAM_START

	if cpu.channel != nil {
		cpu.channel.Rewind()
	}
}

// SetChannel sets the channel used by READ and WRITE.
func (cpu *Cpu) SetChannel(channel Channel) {
	cpu.channel = channel
}

// Store writes a word into memory.
func (cpu *Cpu) Store(loc int, code Code) (err error) {
	if loc < 0 || loc >= len(cpu.Memory) {
		err = ErrLocationOutOfBounds
		return
	}

	cpu.Memory[loc] = int64(code)

	return
}

// FetchCode fetches the instruction at the IP.
func (cpu *Cpu) FetchCode() (code Code, err error) {
	if cpu.Ip < 0 || cpu.Ip >= len(cpu.Memory) {
		err = ErrLocationOutOfBounds
		return
	}

	code = Code(cpu.Memory[cpu.Ip])
	switch {
	case code == 0:
		err = ErrMissingHalt
	case code < 0:
		err = ErrBadInstruction
	case code.Opcode() < OC_ADD || code.Opcode() > OC_HALT:
		err = ErrOpcode(code)
	}

	return
}

// Tick executes a single CPU instruction cycle. ErrHalted is returned
// once HALT is reached.
func (cpu *Cpu) Tick() (err error) {
	code, err := cpu.FetchCode()
	if err != nil {
		return
	}

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks += 1

	return
}

// wrap reduces an overflowed result back into the word range.
func wrap(value int64) int64 {
	if value > WORD_MAX || value < -WORD_MAX {
		value %= WORD_MODULUS
	}
	return value
}

// Execute executes a single decoded instruction.
func (cpu *Cpu) Execute(code Code) (err error) {
	if cpu.Verbose {
		log.Printf("%06d: %v", cpu.Ip, code)
	}

	op := code.Opcode()
	next_ip := cpu.Ip + 1

	switch op.Format() {
	case FMT_REG_ADDR:
		reg, addr := code.RegAddrDecode()
		if addr >= len(cpu.Memory) {
			err = ErrLocationOutOfBounds
			return
		}
		mem := &cpu.Memory[addr]
		acc := &cpu.Register[reg]

		switch op {
		case OC_ADD:
			*acc = wrap(*acc + *mem)
		case OC_SUB:
			*acc = wrap(*acc - *mem)
		case OC_MULT:
			*acc = wrap(*acc * *mem)
		case OC_DIV:
			if *mem == 0 {
				err = ErrDivisionByZero
				return
			}
			*acc = *acc / *mem
		case OC_LOAD:
			*acc = *mem
		case OC_STORE:
			*mem = *acc
		case OC_READ:
			var value int64
			value, err = cpu.read()
			if err != nil {
				return
			}
			*mem = value
		case OC_WRITE:
			err = cpu.write(*mem)
			if err != nil {
				return
			}
		case OC_B:
			next_ip = addr
		case OC_BM:
			if *acc < 0 {
				next_ip = addr
			}
		case OC_BZ:
			if *acc == 0 {
				next_ip = addr
			}
		case OC_BP:
			if *acc > 0 {
				next_ip = addr
			}
		default:
			err = ErrOpcode(code)
			return
		}
	case FMT_REG_REG:
		reg1, reg2 := code.RegRegDecode()
		acc := &cpu.Register[reg1]
		val := cpu.Register[reg2]

		switch op {
		case OC_ADDR:
			*acc = wrap(*acc + val)
		case OC_SUBR:
			*acc = wrap(*acc - val)
		case OC_MULTR:
			*acc = wrap(*acc * val)
		case OC_DIVR:
			if val == 0 {
				err = ErrDivisionByZero
				return
			}
			*acc = *acc / val
		default:
			err = ErrOpcode(code)
			return
		}
	default:
		if op == OC_HALT {
			err = ErrHalted
			return
		}
		err = ErrOpcode(code)
		return
	}

	cpu.Ip = next_ip

	return
}

// read gets a word from the channel for READ.
func (cpu *Cpu) read() (value int64, err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	value, err = cpu.channel.Read()
	if err != nil {
		err = errors.Join(ErrInputInvalid, err)
		return
	}

	if value < -WORD_MAX || value > WORD_MAX {
		err = ErrInputInvalid
		return
	}

	return
}

// write sends a word to the channel for WRITE.
func (cpu *Cpu) write(value int64) (err error) {
	if cpu.channel == nil {
		err = ErrChannelInvalid
		return
	}

	return cpu.channel.Write(value)
}
