package vm

import (
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/font"
	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/log"
)

// Step fetches, decodes and executes a single instruction. It returns a
// *Fault if the instruction can not be executed, the VM then stays halted
// and every following call returns the same fault.
func (m *VM) Step() error {
	if m.fault != nil {
		return m.fault
	}

	pc := m.pc
	if pc < ProgramStart || pc >= MaxAddress {
		return m.halt(&Fault{PC: pc, Err: ErrPCOutOfBounds})
	}
	if pc%instruction.Size != 0 {
		return m.halt(&Fault{PC: pc, Err: ErrPCMisaligned})
	}

	word := instruction.FromBytes(m.memory[pc], m.memory[pc+1])
	m.pc += instruction.Size
	ins := instruction.Decode(word)

	if m.cfg.Trace {
		m.logger.Debug("Executing instruction",
			log.Hex("pc", pc),
			log.Hex("opcode", word),
			log.String("mnemonic", instruction.Mnemonic(word)),
			log.String("kind", ins.Kind.String()))
	}

	if err := m.execute(ins); err != nil {
		return m.halt(&Fault{PC: pc, Word: word, Kind: ins.Kind, Err: err})
	}
	if m.cfg.Trace && instruction.IsSkip(word) && m.pc == pc+2*instruction.Size {
		m.logger.Debug("Skipping instruction", log.Hex("address", pc+instruction.Size))
	}
	m.cycles++
	return nil
}

func (m *VM) halt(fault *Fault) error {
	m.fault = fault
	return fault
}

//nolint:funlen,cyclop // one case per opcode kind
func (m *VM) execute(ins instruction.Instruction) error {
	vx := m.v[ins.X]
	vy := m.v[ins.Y]

	switch ins.Kind {
	case instruction.ClearScreen:
		m.display.Clear()

	case instruction.Return:
		if m.sp == 0 {
			return ErrStackUnderflow
		}
		m.sp--
		m.pc = m.stack[m.sp]

	case instruction.Jump:
		m.pc = ins.NNN

	case instruction.Call:
		if m.sp == StackSize {
			return ErrStackOverflow
		}
		m.stack[m.sp] = m.pc
		m.sp++
		m.pc = ins.NNN

	case instruction.SkipIfEqualNN:
		m.skipIf(vx == ins.NN)

	case instruction.SkipIfNotEqNN:
		m.skipIf(vx != ins.NN)

	case instruction.SkipIfEqualY:
		m.skipIf(vx == vy)

	case instruction.SkipIfNotEqY:
		m.skipIf(vx != vy)

	case instruction.SetRegister:
		m.v[ins.X] = ins.NN

	case instruction.AddToRegister:
		m.v[ins.X] = vx + ins.NN

	case instruction.Set:
		m.v[ins.X] = vy

	case instruction.Or:
		m.v[ins.X] = vx | vy

	case instruction.And:
		m.v[ins.X] = vx & vy

	case instruction.Xor:
		m.v[ins.X] = vx ^ vy

	case instruction.Add:
		sum := uint16(vx) + uint16(vy)
		m.v[ins.X] = uint8(sum)
		m.v[flag] = boolToByte(sum > 0xFF)

	case instruction.SubtractXY:
		m.v[ins.X] = vx - vy
		m.v[flag] = boolToByte(vx > vy)

	case instruction.SubtractYX:
		m.v[ins.X] = vy - vx
		m.v[flag] = boolToByte(vy > vx)

	case instruction.ShiftRight:
		m.v[ins.X] = vx >> 1
		m.v[flag] = vx & 0x01

	case instruction.ShiftLeft:
		m.v[ins.X] = vx << 1
		m.v[flag] = vx >> 7

	case instruction.SetIndex:
		m.i = ins.NNN

	case instruction.JumpWithOffset:
		m.pc = ins.NNN + uint16(m.v[0])

	case instruction.Random:
		m.v[ins.X] = uint8(m.rng.Uint32N(256)) & ins.NN

	case instruction.Draw:
		m.draw(vx, vy, ins.N)

	case instruction.SkipIfKey:
		m.skipIf(m.keys.Snapshot().Pressed(vx))

	case instruction.SkipIfNotKey:
		m.skipIf(!m.keys.Snapshot().Pressed(vx))

	case instruction.ReadDelayTimer:
		m.v[ins.X] = m.timers.Delay()

	case instruction.WaitForKey:
		key, ok := m.keys.Snapshot().First()
		if !ok {
			m.pc -= instruction.Size
			return nil
		}
		m.v[ins.X] = key

	case instruction.SetDelayTimer:
		m.timers.SetDelay(vx)

	case instruction.SetSoundTimer:
		m.timers.SetSound(vx)

	case instruction.AddToIndex:
		m.i += uint16(vx)

	case instruction.FontCharacter:
		if m.cfg.ScaledFont {
			m.i = font.Address(vx)
		} else {
			m.i = uint16(vx)
		}

	case instruction.BCD:
		m.write(m.i, vx/100)
		m.write(m.i+1, vx/10%10)
		m.write(m.i+2, vx%10)

	case instruction.Store:
		for r := range uint16(ins.X) + 1 {
			m.write(m.i+r, m.v[r])
		}

	case instruction.Load:
		for r := range uint16(ins.X) + 1 {
			m.v[r] = m.read(m.i + r)
		}

	default: // instruction.Unknown
		return ErrUnknownOpcode
	}

	return nil
}

// draw XORs an 8 pixel wide sprite of the given height read from I onto
// the framebuffer. The start position wraps, the sprite itself is clipped
// at the right and bottom edges. VF is set if any pixel was turned off.
func (m *VM) draw(vx, vy, height uint8) {
	x0 := int(vx % display.Width)
	y0 := int(vy % display.Height)
	collision := false

	for row := range int(height) {
		y := y0 + row
		if y >= display.Height {
			break
		}

		sprite := m.read(m.i + uint16(row))
		for bit := range 8 {
			x := x0 + bit
			if x >= display.Width {
				break
			}
			if sprite&(0x80>>bit) == 0 {
				continue
			}
			if m.display.Toggle(x, y) {
				collision = true
			}
		}
	}

	m.v[flag] = boolToByte(collision)
}

func (m *VM) skipIf(condition bool) {
	if condition {
		m.pc += instruction.Size
	}
}

func (m *VM) read(address uint16) byte {
	return m.memory[address&addressMask]
}

func (m *VM) write(address uint16, value byte) {
	m.memory[address&addressMask] = value
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
